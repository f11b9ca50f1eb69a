package service

import (
	"context"

	"focusdeck/internal/modules/settings/domain"
	settingsout "focusdeck/internal/modules/settings/port/out"
	"focusdeck/internal/platform/clock"
)

type SettingsService struct {
	clock clock.Clock
	store settingsout.SettingsStore
}

func NewSettingsService(clk clock.Clock, store settingsout.SettingsStore) *SettingsService {
	return &SettingsService{clock: clk, store: store}
}

// Get returns stored settings, materializing (and persisting) defaults
// on first access.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, found, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		settings = domain.Defaults()
		if err := s.store.Save(ctx, settings); err != nil {
			return domain.Settings{}, err
		}
	}
	return settings, nil
}

func (s *SettingsService) Save(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.store.Save(ctx, settings)
}

func (s *SettingsService) Profile(ctx context.Context) (domain.Profile, error) {
	profile, found, err := s.store.LoadProfile(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		profile = domain.Profile{Name: "Student", CreatedAt: s.clock.Now()}
		if err := s.store.SaveProfile(ctx, profile); err != nil {
			return domain.Profile{}, err
		}
	}
	return profile, nil
}

func (s *SettingsService) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return s.store.SaveProfile(ctx, profile)
}
