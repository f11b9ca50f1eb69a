package domain

import (
	"fmt"
	"time"
)

type Session struct {
	ID              string
	CourseID        string
	CourseName      string
	StartAt         time.Time
	DurationSeconds int
	TargetSeconds   int
	IsPartial       bool
}

type CourseShare struct {
	CourseName      string
	DurationSeconds int
	Sessions        int
	Percent         float64
}

type Summary struct {
	TotalSeconds    int
	FullSessions    int
	PartialSessions int
	AverageSeconds  int
	StreakDays      int
	Breakdown       []CourseShare
}

// Report is a point-in-time snapshot of everything the study report
// renders. It carries no references back to live stores.
type Report struct {
	GeneratedAt time.Time
	ProfileName string
	Summary     Summary
	Sessions    []Session
}

// FormatDuration renders whole seconds as "1h 05m" / "25m" for report
// tables. Sub-minute durations round down to "0m".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
