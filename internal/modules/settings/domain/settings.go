package domain

import (
	"time"

	apperrors "focusdeck/internal/platform/errors"
)

type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// Settings is a singleton record: created with defaults on first load,
// overwritten in place, never deleted.
type Settings struct {
	ThemeMode            ThemeMode `json:"theme_mode"`
	DefaultDurationMin   int       `json:"default_duration_min"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	ReminderTime         string    `json:"reminder_time,omitempty"`
	QuietHoursStart      string    `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd        string    `json:"quiet_hours_end,omitempty"`
}

func Defaults() Settings {
	return Settings{
		ThemeMode:            ThemeDark,
		DefaultDurationMin:   25,
		NotificationsEnabled: true,
	}
}

func (s Settings) Validate() error {
	if s.ThemeMode != ThemeDark && s.ThemeMode != ThemeLight {
		return apperrors.ErrInvalidInput
	}
	if s.DefaultDurationMin < 1 || s.DefaultDurationMin > 480 {
		return apperrors.ErrInvalidDuration
	}
	return nil
}

// InQuietHours reports whether t falls inside the configured quiet
// window. The window may wrap midnight; an unset window never matches.
func (s Settings) InQuietHours(t time.Time) bool {
	if s.QuietHoursStart == "" || s.QuietHoursEnd == "" {
		return false
	}
	start, err := time.Parse("15:04", s.QuietHoursStart)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", s.QuietHoursEnd)
	if err != nil {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if startMin <= endMin {
		return minutes >= startMin && minutes < endMin
	}
	return minutes >= startMin || minutes < endMin
}

// Profile is the cosmetic local user record. There is no verification;
// it only personalizes the UI.
type Profile struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
