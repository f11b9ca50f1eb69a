package usecase

import (
	"context"
	"strings"
	"time"

	"focusdeck/internal/modules/settings/domain"
	settingsdto "focusdeck/internal/modules/settings/dto"
	settingsin "focusdeck/internal/modules/settings/port/in"
	"focusdeck/internal/modules/settings/service"
	apperrors "focusdeck/internal/platform/errors"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return output(settings), nil
}

func (i *Interactor) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	if input.ThemeMode != nil {
		settings.ThemeMode = domain.ThemeMode(*input.ThemeMode)
	}
	if input.DefaultDurationMin != nil {
		settings.DefaultDurationMin = *input.DefaultDurationMin
	}
	if input.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.ReminderTime != nil {
		settings.ReminderTime = *input.ReminderTime
	}
	if input.QuietHoursStart != nil {
		settings.QuietHoursStart = *input.QuietHoursStart
	}
	if input.QuietHoursEnd != nil {
		settings.QuietHoursEnd = *input.QuietHoursEnd
	}
	if err := i.svc.Save(ctx, settings); err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return output(settings), nil
}

func (i *Interactor) InQuietHours(ctx context.Context, t time.Time) (bool, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.InQuietHours(t), nil
}

func (i *Interactor) Profile(ctx context.Context) (settingsdto.ProfileOutput, error) {
	profile, err := i.svc.Profile(ctx)
	if err != nil {
		return settingsdto.ProfileOutput{}, err
	}
	return settingsdto.ProfileOutput{Name: profile.Name, CreatedAt: profile.CreatedAt}, nil
}

func (i *Interactor) SetProfileName(ctx context.Context, name string) (settingsdto.ProfileOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return settingsdto.ProfileOutput{}, apperrors.ErrInvalidInput
	}
	profile, err := i.svc.Profile(ctx)
	if err != nil {
		return settingsdto.ProfileOutput{}, err
	}
	profile.Name = name
	if err := i.svc.SaveProfile(ctx, profile); err != nil {
		return settingsdto.ProfileOutput{}, err
	}
	return settingsdto.ProfileOutput{Name: profile.Name, CreatedAt: profile.CreatedAt}, nil
}

func output(settings domain.Settings) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		ThemeMode:            string(settings.ThemeMode),
		DefaultDurationMin:   settings.DefaultDurationMin,
		NotificationsEnabled: settings.NotificationsEnabled,
		ReminderTime:         settings.ReminderTime,
		QuietHoursStart:      settings.QuietHoursStart,
		QuietHoursEnd:        settings.QuietHoursEnd,
	}
}
