package dto

import "time"

type CourseBreakdownOutput struct {
	CourseID        string
	CourseName      string
	DurationSeconds int
	Sessions        int
	Percent         float64
}

type OverviewOutput struct {
	TotalSeconds    int
	FullSessions    int
	PartialSessions int
	AverageSeconds  int
	StreakDays      int
	Breakdown       []CourseBreakdownOutput
	MostStudied     *CourseBreakdownOutput
}

type SessionOutput struct {
	ID              string
	CourseID        string
	CourseName      string
	StartAt         time.Time
	DurationSeconds int
	TargetSeconds   int
	IsPartial       bool
}

type ReindexOutput struct {
	Indexed int
}
