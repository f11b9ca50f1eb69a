package dto

import "time"

type StartInput struct {
	CourseID      string
	TargetSeconds int
}

type StartOutput struct {
	RunID         string
	CourseID      string
	CourseName    string
	TargetSeconds int
	StartedAt     time.Time
}

type StatusOutput struct {
	RunID            string
	CourseID         string
	CourseName       string
	Phase            string
	ElapsedSeconds   int
	RemainingSeconds int
	TargetSeconds    int
	Recorded         bool
	SessionID        string
}

type StopOutput struct {
	Recorded        bool
	SessionID       string
	CourseID        string
	DurationSeconds int
	TargetSeconds   int
	IsPartial       bool
}

type SessionOutput struct {
	ID              string
	CourseID        string
	StartAt         time.Time
	DurationSeconds int
	TargetSeconds   int
	IsPartial       bool
}
