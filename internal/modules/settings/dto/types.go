package dto

import "time"

type SettingsOutput struct {
	ThemeMode            string
	DefaultDurationMin   int
	NotificationsEnabled bool
	ReminderTime         string
	QuietHoursStart      string
	QuietHoursEnd        string
}

type UpdateInput struct {
	ThemeMode            *string
	DefaultDurationMin   *int
	NotificationsEnabled *bool
	ReminderTime         *string
	QuietHoursStart      *string
	QuietHoursEnd        *string
}

type ProfileOutput struct {
	Name      string
	CreatedAt time.Time
}
