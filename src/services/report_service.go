package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/metrics"
	"github.com/username/autaxy/src/model"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/parsers"
	"github.com/username/autaxy/src/parsers/apple"
	"github.com/username/autaxy/src/processors"
	"github.com/username/autaxy/src/utils"
)

const (
	ckParsedReport = "parsed_report_%s"

	DefaultImportListLimit = 20
	MaxImportListLimit     = 100
)

type reportServiceImpl struct {
	parser     parsers.Parser
	statements processors.StatementProcessor
	imports    ImportStore
	settings   SettingsStore
	recorder   metrics.Recorder
	// reportCache may be nil; parsed reports are then never reused.
	reportCache *cache.Cache
	now         func() time.Time
}

func NewReportService(
	parser parsers.Parser,
	statements processors.StatementProcessor,
	imports ImportStore,
	settings SettingsStore,
	recorder metrics.Recorder,
	reportCache *cache.Cache,
) ReportService {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &reportServiceImpl{
		parser:      parser,
		statements:  statements,
		imports:     imports,
		settings:    settings,
		recorder:    recorder,
		reportCache: reportCache,
		now:         time.Now,
	}
}

// ParseReport parses text, records the import and returns the normalized report.
// The returned report may be shared with other callers and must not be modified.
func (s *reportServiceImpl) ParseReport(ctx context.Context, text string) (*models.ReportData, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReport
	}

	hash := utils.HashBytes([]byte(text))
	cacheKey := fmt.Sprintf(ckParsedReport, hash)
	if s.reportCache != nil {
		if cached, found := s.reportCache.Get(cacheKey); found {
			if report, ok := cached.(*models.ReportData); ok {
				log.Debug("Parsed report served from cache", "hash", hash, "reportID", report.ReportID)
				return report, nil
			}
		}
	}

	startTime := time.Now()
	report, err := s.parser.Parse(text)
	if err != nil {
		s.recorder.ReportParseFailed(failureReason(err))
		log.Warn("Report parsing failed", "hash", hash, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrParsingFailed, err)
	}
	s.recorder.ReportParsed(report.Dialect, len(report.Transactions))
	log.Info("Report parsed", "dialect", report.Dialect, "reportID", report.ReportID,
		"rows", len(report.Transactions), "duration", time.Since(startTime))

	if s.reportCache != nil {
		s.reportCache.Set(cacheKey, report, cache.DefaultExpiration)
	}
	s.recordImport(ctx, report, hash)
	return report, nil
}

// recordImport never fails the parse; history is best effort.
func (s *reportServiceImpl) recordImport(ctx context.Context, report *models.ReportData, hash string) {
	if s.imports == nil {
		return
	}
	log := logger.FromContext(ctx)
	imp := models.ReportImport{
		ID:                uuid.NewString(),
		ReportID:          report.ReportID,
		Dialect:           report.Dialect,
		VendorName:        report.VendorName,
		StartDate:         report.StartDate,
		EndDate:           report.EndDate,
		RowCount:          len(report.Transactions),
		TotalPartnerShare: report.Summary.TotalPartnerShare,
		Subtotal:          report.Summary.Subtotal,
		ContentHash:       hash,
		CreatedAt:         s.now(),
	}
	if err := s.imports.CreateImport(ctx, imp); err != nil {
		if errors.Is(err, model.ErrDuplicateImport) {
			log.Debug("Report already recorded", "hash", hash)
			return
		}
		log.Error("Failed to record report import", "reportID", report.ReportID, "error", err)
	}
}

func (s *reportServiceImpl) BuildStatement(ctx context.Context, text string) (*models.Statement, error) {
	report, err := s.ParseReport(ctx, text)
	if err != nil {
		return nil, err
	}

	settings := models.DefaultBusinessSettings()
	if s.settings != nil {
		loaded, err := s.settings.LoadSettings(ctx)
		switch {
		case err == nil:
			settings = loaded
		case errors.Is(err, ErrSettingsNotFound):
			logger.FromContext(ctx).Debug("No business settings saved, using defaults")
		default:
			return nil, fmt.Errorf("error loading business settings: %w", err)
		}
	}

	statement := s.statements.Build(report, settings, s.now())
	statement.Number = uuid.NewString()
	s.recorder.StatementGenerated(report.Dialect, statement.Booking, statement.GrandTotal)
	return &statement, nil
}

func (s *reportServiceImpl) ListImports(ctx context.Context, limit int) ([]models.ReportImport, error) {
	if s.imports == nil {
		return []models.ReportImport{}, nil
	}
	if limit <= 0 {
		limit = DefaultImportListLimit
	}
	if limit > MaxImportListLimit {
		limit = MaxImportListLimit
	}
	imports, err := s.imports.ListImports(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing report imports: %w", err)
	}
	return imports, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, apple.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, apple.ErrNoTransactionData):
		return "no_transaction_data"
	default:
		return "other"
	}
}
