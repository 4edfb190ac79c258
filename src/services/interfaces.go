package services

import (
	"context"

	"github.com/username/autaxy/src/models"
)

// ReportService parses Apple reports and turns them into statements.
type ReportService interface {
	ParseReport(ctx context.Context, text string) (*models.ReportData, error)
	BuildStatement(ctx context.Context, text string) (*models.Statement, error)
	ListImports(ctx context.Context, limit int) ([]models.ReportImport, error)
}

// SettingsService reads and stores the business settings used as statement recipient.
type SettingsService interface {
	Get(ctx context.Context) (models.BusinessSettings, error)
	Save(ctx context.Context, settings models.BusinessSettings) (models.BusinessSettings, error)
}

// ImportStore persists the history of parsed reports.
type ImportStore interface {
	CreateImport(ctx context.Context, imp models.ReportImport) error
	ListImports(ctx context.Context, limit int) ([]models.ReportImport, error)
}

// SettingsStore persists the singleton business settings.
// LoadSettings returns ErrSettingsNotFound when nothing has been saved yet.
type SettingsStore interface {
	LoadSettings(ctx context.Context) (models.BusinessSettings, error)
	SaveSettings(ctx context.Context, settings models.BusinessSettings) error
}
