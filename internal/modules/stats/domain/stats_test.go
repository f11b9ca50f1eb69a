package domain_test

import (
	"testing"
	"time"

	"focusdeck/internal/modules/stats/domain"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregatesOverEmptyHistoryAreZero(t *testing.T) {
	t.Parallel()
	if got := domain.TotalStudyTime(nil); got != 0 {
		t.Fatalf("total: %d", got)
	}
	if got := domain.AverageSessionDuration(nil); got != 0 {
		t.Fatalf("average must not divide by zero, got %d", got)
	}
	if counts := domain.SessionCounts(nil); counts.Full != 0 || counts.Partial != 0 {
		t.Fatalf("counts: %+v", counts)
	}
	if _, found := domain.MostStudiedCourse([]domain.Course{{ID: "c1", Name: "Algebra"}}, nil); found {
		t.Fatalf("no sessions must mean no most-studied course")
	}
}

func TestSessionCountsSplitFullAndPartial(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{DurationSeconds: 1500, TargetSeconds: 1500},
		{DurationSeconds: 300, TargetSeconds: 1500, IsPartial: true},
		{DurationSeconds: 1500, TargetSeconds: 1500},
	}
	counts := domain.SessionCounts(sessions)
	if counts.Full != 2 || counts.Partial != 1 {
		t.Fatalf("expected 2 full / 1 partial, got %+v", counts)
	}
	if avg := domain.AverageSessionDuration(sessions); avg != 1100 {
		t.Fatalf("expected 1100s average, got %d", avg)
	}
}

func TestPerCourseBreakdownComputesShares(t *testing.T) {
	t.Parallel()
	courses := []domain.Course{
		{ID: "c1", Name: "Algebra"},
		{ID: "c2", Name: "History"},
		{ID: "c3", Name: "Untouched"},
	}
	sessions := []domain.Session{
		{CourseID: "c1", DurationSeconds: 1800},
		{CourseID: "c1", DurationSeconds: 600},
		{CourseID: "c2", DurationSeconds: 600},
	}

	breakdown := domain.PerCourseBreakdown(courses, sessions)
	if len(breakdown) != 3 {
		t.Fatalf("expected entry per course, got %d", len(breakdown))
	}
	if breakdown[0].DurationSeconds != 2400 || breakdown[0].Sessions != 2 || breakdown[0].Percent != 80 {
		t.Fatalf("c1 breakdown wrong: %+v", breakdown[0])
	}
	if breakdown[1].Percent != 20 {
		t.Fatalf("c2 share wrong: %+v", breakdown[1])
	}
	if breakdown[2].DurationSeconds != 0 || breakdown[2].Percent != 0 {
		t.Fatalf("course without sessions must report zeros: %+v", breakdown[2])
	}

	best, found := domain.MostStudiedCourse(courses, sessions)
	if !found || best.CourseID != "c1" {
		t.Fatalf("expected c1 as most studied, got %+v found=%v", best, found)
	}
}

func TestMostStudiedTieBreaksTowardListOrder(t *testing.T) {
	t.Parallel()
	courses := []domain.Course{
		{ID: "c1", Name: "Algebra"},
		{ID: "c2", Name: "History"},
	}
	sessions := []domain.Session{
		{CourseID: "c1", DurationSeconds: 600},
		{CourseID: "c2", DurationSeconds: 600},
	}
	best, found := domain.MostStudiedCourse(courses, sessions)
	if !found || best.CourseID != "c1" {
		t.Fatalf("tie must break toward first course, got %+v", best)
	}
}

func TestStreakWalksConsecutiveDaysBackFromToday(t *testing.T) {
	t.Parallel()
	today := day(10, 18)
	sessions := []domain.Session{
		{StartAt: day(10, 9)},
		{StartAt: day(9, 21)},
		{StartAt: day(9, 7)},
		{StartAt: day(8, 12)},
		{StartAt: day(6, 12)}, // gap on the 7th ends the walk
	}
	if got := domain.Streak(sessions, today); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestStreakIsZeroWithoutASessionToday(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{StartAt: day(8, 12)},
		{StartAt: day(9, 12)},
	}
	if got := domain.Streak(sessions, day(10, 18)); got != 0 {
		t.Fatalf("yesterday's sessions must not count, got %d", got)
	}
	if got := domain.Streak(nil, day(10, 18)); got != 0 {
		t.Fatalf("empty history streak must be 0, got %d", got)
	}
}

func TestRecentSessionsKeepsTrailingWindowOnly(t *testing.T) {
	t.Parallel()
	now := day(10, 12)
	sessions := []domain.Session{
		{ID: "in-window", StartAt: day(5, 12).Add(time.Hour)},
		{ID: "too-old", StartAt: day(3, 12)},
		{ID: "boundary", StartAt: day(3, 12).Add(time.Minute)},
	}
	recent := domain.RecentSessions(sessions, now, 7)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent sessions, got %+v", recent)
	}
	for _, s := range recent {
		if s.ID == "too-old" {
			t.Fatalf("cutoff boundary leaked: %+v", recent)
		}
	}
}
