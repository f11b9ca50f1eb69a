package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	settingsadapter "focusdeck/internal/modules/settings/adapter/out"
	settingsdto "focusdeck/internal/modules/settings/dto"
	settingsin "focusdeck/internal/modules/settings/port/in"
	"focusdeck/internal/modules/settings/service"
	"focusdeck/internal/modules/settings/usecase"
	apperrors "focusdeck/internal/platform/errors"
	"focusdeck/internal/platform/kvstore"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newSettingsFixture(t *testing.T) (settingsin.Usecase, *kvstore.Store) {
	t.Helper()
	store := kvstore.New(t.TempDir())
	clk := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewSettingsService(clk, settingsadapter.NewKVSettingsStore(store)))
	return uc, store
}

func TestFirstGetMaterializesAndPersistsDefaults(t *testing.T) {
	t.Parallel()
	uc, store := newSettingsFixture(t)
	ctx := context.Background()

	settings, err := uc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.ThemeMode != "dark" || settings.DefaultDurationMin != 25 || !settings.NotificationsEnabled {
		t.Fatalf("unexpected defaults: %+v", settings)
	}

	blob, err := store.ReadCollection(kvstore.KeySettings)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if blob == nil {
		t.Fatalf("defaults must be persisted on first access")
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	uc, _ := newSettingsFixture(t)
	ctx := context.Background()

	theme := "light"
	updated, err := uc.Update(ctx, settingsdto.UpdateInput{ThemeMode: &theme})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ThemeMode != "light" {
		t.Fatalf("theme not applied: %+v", updated)
	}
	if updated.DefaultDurationMin != 25 || !updated.NotificationsEnabled {
		t.Fatalf("untouched fields must keep their values: %+v", updated)
	}

	minutes := 50
	quietStart, quietEnd := "22:00", "07:00"
	updated, err = uc.Update(ctx, settingsdto.UpdateInput{
		DefaultDurationMin: &minutes,
		QuietHoursStart:    &quietStart,
		QuietHoursEnd:      &quietEnd,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ThemeMode != "light" || updated.DefaultDurationMin != 50 {
		t.Fatalf("updates must accumulate: %+v", updated)
	}

	quiet, err := uc.InQuietHours(ctx, time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC))
	if err != nil || !quiet {
		t.Fatalf("expected quiet at 23:30, got %v err=%v", quiet, err)
	}
}

func TestInvalidUpdateIsRejectedAndNotPersisted(t *testing.T) {
	t.Parallel()
	uc, _ := newSettingsFixture(t)
	ctx := context.Background()

	minutes := 0
	if _, err := uc.Update(ctx, settingsdto.UpdateInput{DefaultDurationMin: &minutes}); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("zero duration must be rejected, got %v", err)
	}
	theme := "sepia"
	if _, err := uc.Update(ctx, settingsdto.UpdateInput{ThemeMode: &theme}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown theme must be rejected, got %v", err)
	}

	settings, err := uc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.DefaultDurationMin != 25 || settings.ThemeMode != "dark" {
		t.Fatalf("rejected updates must leave settings untouched: %+v", settings)
	}
}

func TestProfileDefaultsAndRename(t *testing.T) {
	t.Parallel()
	uc, _ := newSettingsFixture(t)
	ctx := context.Background()

	profile, err := uc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Name != "Student" || profile.CreatedAt.IsZero() {
		t.Fatalf("unexpected default profile: %+v", profile)
	}

	if _, err := uc.SetProfileName(ctx, "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank name must be rejected, got %v", err)
	}
	renamed, err := uc.SetProfileName(ctx, "  Dana  ")
	if err != nil {
		t.Fatalf("set name: %v", err)
	}
	if renamed.Name != "Dana" || renamed.CreatedAt != profile.CreatedAt {
		t.Fatalf("rename must trim and keep created-at: %+v", renamed)
	}
}
