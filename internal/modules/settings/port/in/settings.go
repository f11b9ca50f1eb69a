package in

import (
	"context"
	"time"

	"focusdeck/internal/modules/settings/dto"
)

type Usecase interface {
	// Get materializes defaults on first load.
	Get(ctx context.Context) (dto.SettingsOutput, error)
	// Update overwrites the whole settings record; nil fields keep
	// their current values.
	Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error)
	// InQuietHours reports whether t falls inside the configured quiet
	// window; the window may wrap midnight.
	InQuietHours(ctx context.Context, t time.Time) (bool, error)
	Profile(ctx context.Context) (dto.ProfileOutput, error)
	SetProfileName(ctx context.Context, name string) (dto.ProfileOutput, error)
}
