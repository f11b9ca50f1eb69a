package domain_test

import (
	"errors"
	"testing"
	"time"

	"focusdeck/internal/modules/settings/domain"
	apperrors "focusdeck/internal/platform/errors"
)

func clockAt(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestDefaultsAreDarkTwentyFiveMinutesNotifying(t *testing.T) {
	t.Parallel()
	defaults := domain.Defaults()
	if defaults.ThemeMode != domain.ThemeDark {
		t.Fatalf("expected dark default, got %s", defaults.ThemeMode)
	}
	if defaults.DefaultDurationMin != 25 {
		t.Fatalf("expected 25 minute default, got %d", defaults.DefaultDurationMin)
	}
	if !defaults.NotificationsEnabled {
		t.Fatalf("notifications must default on")
	}
	if err := defaults.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRejectsBadThemeAndDurationBounds(t *testing.T) {
	t.Parallel()
	settings := domain.Defaults()
	settings.ThemeMode = "sepia"
	if err := settings.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown theme must fail, got %v", err)
	}

	for _, minutes := range []int{0, -5, 481} {
		settings = domain.Defaults()
		settings.DefaultDurationMin = minutes
		if err := settings.Validate(); !errors.Is(err, apperrors.ErrInvalidDuration) {
			t.Fatalf("duration %d must fail, got %v", minutes, err)
		}
	}
	for _, minutes := range []int{1, 25, 480} {
		settings = domain.Defaults()
		settings.DefaultDurationMin = minutes
		if err := settings.Validate(); err != nil {
			t.Fatalf("duration %d must pass, got %v", minutes, err)
		}
	}
}

func TestQuietHoursWindowMatching(t *testing.T) {
	t.Parallel()
	settings := domain.Defaults()

	// Unset window never matches.
	if settings.InQuietHours(clockAt(23, 0)) {
		t.Fatalf("empty window must not match")
	}

	settings.QuietHoursStart = "22:00"
	settings.QuietHoursEnd = "07:00"
	cases := []struct {
		at   time.Time
		want bool
	}{
		{clockAt(23, 30), true},
		{clockAt(3, 0), true},
		{clockAt(6, 59), true},
		{clockAt(7, 0), false},
		{clockAt(12, 0), false},
		{clockAt(22, 0), true},
		{clockAt(21, 59), false},
	}
	for _, tc := range cases {
		if got := settings.InQuietHours(tc.at); got != tc.want {
			t.Fatalf("midnight-wrapping window at %s: got %v want %v", tc.at.Format("15:04"), got, tc.want)
		}
	}

	settings.QuietHoursStart = "13:00"
	settings.QuietHoursEnd = "14:00"
	if !settings.InQuietHours(clockAt(13, 30)) || settings.InQuietHours(clockAt(14, 0)) {
		t.Fatalf("same-day window boundaries wrong")
	}

	settings.QuietHoursStart = "not-a-time"
	if settings.InQuietHours(clockAt(13, 30)) {
		t.Fatalf("malformed window must never match")
	}
}
