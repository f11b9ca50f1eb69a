package out

import (
	"context"

	"focusdeck/internal/modules/settings/domain"
)

type SettingsStore interface {
	// Load returns (settings, false, nil) when nothing is stored yet.
	Load(ctx context.Context) (domain.Settings, bool, error)
	Save(ctx context.Context, settings domain.Settings) error
	LoadProfile(ctx context.Context) (domain.Profile, bool, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
}
