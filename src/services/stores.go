package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/username/autaxy/src/model"
	"github.com/username/autaxy/src/models"
)

// SQLiteStore implements ImportStore and SettingsStore on the application database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) CreateImport(ctx context.Context, imp models.ReportImport) error {
	return model.CreateReportImport(ctx, s.db, imp)
}

func (s *SQLiteStore) ListImports(ctx context.Context, limit int) ([]models.ReportImport, error) {
	return model.ListReportImports(ctx, s.db, limit)
}

func (s *SQLiteStore) LoadSettings(ctx context.Context) (models.BusinessSettings, error) {
	settings, found, err := model.GetBusinessSettings(ctx, s.db)
	if err != nil {
		return models.BusinessSettings{}, err
	}
	if !found {
		return models.BusinessSettings{}, ErrSettingsNotFound
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.BusinessSettings) error {
	return model.SaveBusinessSettings(ctx, s.db, settings)
}

// MemoryStore is an in-process ImportStore and SettingsStore, used by the CLI
// when no database is configured.
type MemoryStore struct {
	mu       sync.Mutex
	imports  []models.ReportImport
	hashes   map[string]bool
	settings *models.BusinessSettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{hashes: make(map[string]bool)}
}

func (m *MemoryStore) CreateImport(_ context.Context, imp models.ReportImport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hashes[imp.ContentHash] {
		return model.ErrDuplicateImport
	}
	m.hashes[imp.ContentHash] = true
	m.imports = append(m.imports, imp)
	return nil
}

func (m *MemoryStore) ListImports(_ context.Context, limit int) ([]models.ReportImport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ReportImport, len(m.imports))
	copy(out, m.imports)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) LoadSettings(context.Context) (models.BusinessSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return models.BusinessSettings{}, ErrSettingsNotFound
	}
	return *m.settings, nil
}

func (m *MemoryStore) SaveSettings(_ context.Context, settings models.BusinessSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}
