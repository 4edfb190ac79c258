package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/metrics"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/security/validation"
)

type settingsServiceImpl struct {
	store    SettingsStore
	recorder metrics.Recorder
	now      func() time.Time
}

func NewSettingsService(store SettingsStore, recorder metrics.Recorder) SettingsService {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &settingsServiceImpl{store: store, recorder: recorder, now: time.Now}
}

// Get returns the saved settings, or the defaults when none have been saved.
func (s *settingsServiceImpl) Get(ctx context.Context) (models.BusinessSettings, error) {
	settings, err := s.store.LoadSettings(ctx)
	if errors.Is(err, ErrSettingsNotFound) {
		return models.DefaultBusinessSettings(), nil
	}
	if err != nil {
		return models.BusinessSettings{}, fmt.Errorf("error loading business settings: %w", err)
	}
	return settings, nil
}

func (s *settingsServiceImpl) Save(ctx context.Context, settings models.BusinessSettings) (models.BusinessSettings, error) {
	cleaned, err := validation.ValidateBusinessSettings(settings)
	if err != nil {
		return models.BusinessSettings{}, err
	}
	cleaned.UpdatedAt = s.now().UTC()

	if err := s.store.SaveSettings(ctx, cleaned); err != nil {
		return models.BusinessSettings{}, fmt.Errorf("error saving business settings: %w", err)
	}
	s.recorder.SettingsSaved(cleaned.VATID != "")
	logger.FromContext(ctx).Info("Business settings saved", "hasVATID", cleaned.VATID != "", "complete", cleaned.HasRequiredFields())
	return cleaned, nil
}
