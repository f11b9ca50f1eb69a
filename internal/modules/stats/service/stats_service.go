package service

import (
	"time"

	"focusdeck/internal/modules/stats/domain"
	"focusdeck/internal/platform/clock"
)

type StatsService struct {
	clock clock.Clock
}

func NewStatsService(clk clock.Clock) *StatsService {
	return &StatsService{clock: clk}
}

type Overview struct {
	TotalSeconds   int
	Counts         domain.Counts
	AverageSeconds int
	StreakDays     int
	Breakdown      []domain.CourseBreakdown
	MostStudied    domain.CourseBreakdown
	HasMostStudied bool
}

func (s *StatsService) Overview(courses []domain.Course, sessions []domain.Session) Overview {
	most, found := domain.MostStudiedCourse(courses, sessions)
	return Overview{
		TotalSeconds:   domain.TotalStudyTime(sessions),
		Counts:         domain.SessionCounts(sessions),
		AverageSeconds: domain.AverageSessionDuration(sessions),
		StreakDays:     domain.Streak(sessions, s.clock.Now()),
		Breakdown:      domain.PerCourseBreakdown(courses, sessions),
		MostStudied:    most,
		HasMostStudied: found,
	}
}

func (s *StatsService) Recent(sessions []domain.Session, windowDays int) []domain.Session {
	return domain.RecentSessions(sessions, s.clock.Now(), windowDays)
}

func (s *StatsService) Cutoff(windowDays int) time.Time {
	return s.clock.Now().AddDate(0, 0, -windowDays)
}
