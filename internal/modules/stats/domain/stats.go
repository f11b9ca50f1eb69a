package domain

import "time"

// Session and Course are this module's read-side views; aggregation is
// pure recomputation over the full lists, with no cached state.
type Session struct {
	ID              string
	CourseID        string
	StartAt         time.Time
	DurationSeconds int
	TargetSeconds   int
	IsPartial       bool
}

type Course struct {
	ID   string
	Name string
}

type Counts struct {
	Full    int
	Partial int
}

type CourseBreakdown struct {
	CourseID        string
	CourseName      string
	DurationSeconds int
	Sessions        int
	Percent         float64
}

func TotalStudyTime(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationSeconds
	}
	return total
}

func SessionCounts(sessions []Session) Counts {
	counts := Counts{}
	for _, s := range sessions {
		if s.IsPartial {
			counts.Partial++
		} else {
			counts.Full++
		}
	}
	return counts
}

func AverageSessionDuration(sessions []Session) int {
	if len(sessions) == 0 {
		return 0
	}
	return TotalStudyTime(sessions) / len(sessions)
}

// PerCourseBreakdown reports duration sums, counts, and the share of
// the grand total per course, in course-list order. Percent is 0 when
// the grand total is 0.
func PerCourseBreakdown(courses []Course, sessions []Session) []CourseBreakdown {
	grand := TotalStudyTime(sessions)
	out := make([]CourseBreakdown, 0, len(courses))
	for _, course := range courses {
		entry := CourseBreakdown{CourseID: course.ID, CourseName: course.Name}
		for _, s := range sessions {
			if s.CourseID == course.ID {
				entry.DurationSeconds += s.DurationSeconds
				entry.Sessions++
			}
		}
		if grand > 0 {
			entry.Percent = float64(entry.DurationSeconds) / float64(grand) * 100
		}
		out = append(out, entry)
	}
	return out
}

// MostStudiedCourse returns the course with the largest total
// duration. Ties break toward the first course in list order; the
// second return is false when there are no courses or all totals are
// zero.
func MostStudiedCourse(courses []Course, sessions []Session) (CourseBreakdown, bool) {
	breakdown := PerCourseBreakdown(courses, sessions)
	best := CourseBreakdown{}
	found := false
	for _, entry := range breakdown {
		if entry.DurationSeconds > best.DurationSeconds {
			best = entry
			found = true
		}
	}
	return best, found
}

// Streak counts consecutive calendar days, walking backward from
// today, that each contain at least one session. A day without a
// session ends the walk; no session today means zero.
func Streak(sessions []Session, today time.Time) int {
	days := map[string]struct{}{}
	for _, s := range sessions {
		days[s.StartAt.Format("2006-01-02")] = struct{}{}
	}
	streak := 0
	for {
		day := today.AddDate(0, 0, -streak).Format("2006-01-02")
		if _, ok := days[day]; !ok {
			return streak
		}
		streak++
	}
}

// RecentSessions returns sessions whose StartAt falls within the
// trailing window from now.
func RecentSessions(sessions []Session, now time.Time, windowDays int) []Session {
	cutoff := now.AddDate(0, 0, -windowDays)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.StartAt.After(cutoff) && !s.StartAt.After(now) {
			out = append(out, s)
		}
	}
	return out
}
