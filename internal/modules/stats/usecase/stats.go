package usecase

import (
	"context"

	coursein "focusdeck/internal/modules/course/port/in"
	sessionin "focusdeck/internal/modules/session/port/in"
	"focusdeck/internal/modules/stats/domain"
	statsdto "focusdeck/internal/modules/stats/dto"
	statsin "focusdeck/internal/modules/stats/port/in"
	statsout "focusdeck/internal/modules/stats/port/out"
	"focusdeck/internal/modules/stats/service"
)

const defaultWindowDays = 7

type Interactor struct {
	svc      *service.StatsService
	courses  coursein.Usecase
	sessions sessionin.Usecase
	index    statsout.SessionIndex
}

func NewInteractor(svc *service.StatsService, courses coursein.Usecase, sessions sessionin.Usecase, index statsout.SessionIndex) statsin.Usecase {
	return &Interactor{svc: svc, courses: courses, sessions: sessions, index: index}
}

func (i *Interactor) load(ctx context.Context) ([]domain.Course, []domain.Session, error) {
	courseList, err := i.courses.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	sessionList, err := i.sessions.ListSessions(ctx)
	if err != nil {
		return nil, nil, err
	}
	courses := make([]domain.Course, 0, len(courseList))
	for _, c := range courseList {
		courses = append(courses, domain.Course{ID: c.ID, Name: c.Name})
	}
	sessions := make([]domain.Session, 0, len(sessionList))
	for _, s := range sessionList {
		sessions = append(sessions, domain.Session{
			ID:              s.ID,
			CourseID:        s.CourseID,
			StartAt:         s.StartAt,
			DurationSeconds: s.DurationSeconds,
			TargetSeconds:   s.TargetSeconds,
			IsPartial:       s.IsPartial,
		})
	}
	return courses, sessions, nil
}

func (i *Interactor) Overview(ctx context.Context) (statsdto.OverviewOutput, error) {
	courses, sessions, err := i.load(ctx)
	if err != nil {
		return statsdto.OverviewOutput{}, err
	}
	overview := i.svc.Overview(courses, sessions)
	out := statsdto.OverviewOutput{
		TotalSeconds:    overview.TotalSeconds,
		FullSessions:    overview.Counts.Full,
		PartialSessions: overview.Counts.Partial,
		AverageSeconds:  overview.AverageSeconds,
		StreakDays:      overview.StreakDays,
		Breakdown:       make([]statsdto.CourseBreakdownOutput, 0, len(overview.Breakdown)),
	}
	for _, entry := range overview.Breakdown {
		out.Breakdown = append(out.Breakdown, breakdownOutput(entry))
	}
	if overview.HasMostStudied {
		most := breakdownOutput(overview.MostStudied)
		out.MostStudied = &most
	}
	return out, nil
}

func (i *Interactor) Recent(ctx context.Context, windowDays int) ([]statsdto.SessionOutput, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	courses, sessions, err := i.load(ctx)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	for _, c := range courses {
		names[c.ID] = c.Name
	}
	recent := i.svc.Recent(sessions, windowDays)
	out := make([]statsdto.SessionOutput, 0, len(recent))
	for _, s := range recent {
		out = append(out, statsdto.SessionOutput{
			ID:              s.ID,
			CourseID:        s.CourseID,
			CourseName:      names[s.CourseID],
			StartAt:         s.StartAt,
			DurationSeconds: s.DurationSeconds,
			TargetSeconds:   s.TargetSeconds,
			IsPartial:       s.IsPartial,
		})
	}
	return out, nil
}

func (i *Interactor) RecentIndexed(ctx context.Context, windowDays int) ([]statsdto.SessionOutput, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	courses, err := i.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	for _, c := range courses {
		names[c.ID] = c.Name
	}
	recent, err := i.index.Recent(ctx, i.svc.Cutoff(windowDays))
	if err != nil {
		return nil, err
	}
	out := make([]statsdto.SessionOutput, 0, len(recent))
	for _, s := range recent {
		out = append(out, statsdto.SessionOutput{
			ID:              s.ID,
			CourseID:        s.CourseID,
			CourseName:      names[s.CourseID],
			StartAt:         s.StartAt,
			DurationSeconds: s.DurationSeconds,
			TargetSeconds:   s.TargetSeconds,
			IsPartial:       s.IsPartial,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (statsdto.ReindexOutput, error) {
	_, sessions, err := i.load(ctx)
	if err != nil {
		return statsdto.ReindexOutput{}, err
	}
	if err := i.index.Rebuild(ctx, sessions); err != nil {
		return statsdto.ReindexOutput{}, err
	}
	return statsdto.ReindexOutput{Indexed: len(sessions)}, nil
}

func breakdownOutput(entry domain.CourseBreakdown) statsdto.CourseBreakdownOutput {
	return statsdto.CourseBreakdownOutput{
		CourseID:        entry.CourseID,
		CourseName:      entry.CourseName,
		DurationSeconds: entry.DurationSeconds,
		Sessions:        entry.Sessions,
		Percent:         entry.Percent,
	}
}
