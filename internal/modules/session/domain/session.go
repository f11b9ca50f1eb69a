package domain

import "time"

const SchemaVersion = 1

// Session is the immutable record of one finished timer run. StartAt
// is the persistence time (completion or termination), matching the
// recorded history users see in stats.
type Session struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"course_id"`
	StartAt         time.Time `json:"start_at"`
	DurationSeconds int       `json:"duration_seconds"`
	TargetSeconds   int       `json:"target_seconds"`
	IsPartial       bool      `json:"is_partial"`
}
