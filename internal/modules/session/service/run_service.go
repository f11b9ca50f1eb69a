package service

import (
	"context"
	"fmt"

	"focusdeck/internal/modules/session/domain"
	sessionout "focusdeck/internal/modules/session/port/out"
	"focusdeck/internal/platform/clock"
	"focusdeck/internal/platform/id"
)

type RunService struct {
	clock    clock.Clock
	idGen    id.Generator
	store    sessionout.SessionStore
	courses  sessionout.CourseDirectory
	notifier sessionout.Notifier
}

func NewRunService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore, courses sessionout.CourseDirectory, notifier sessionout.Notifier) *RunService {
	return &RunService{clock: clock, idGen: idGen, store: store, courses: courses, notifier: notifier}
}

// Begin validates the target bounds and the course reference, then
// starts a fresh run. No state is created when validation fails.
func (s *RunService) Begin(ctx context.Context, courseID string, targetSeconds int) (*domain.Run, string, error) {
	if err := domain.ValidateTarget(targetSeconds); err != nil {
		return nil, "", err
	}
	name, err := s.courses.Lookup(ctx, courseID)
	if err != nil {
		return nil, "", err
	}
	run, err := domain.NewRun(s.idGen.New(), courseID, targetSeconds)
	if err != nil {
		return nil, "", err
	}
	if err := run.Start(s.clock.Now()); err != nil {
		return nil, "", err
	}
	return run, name, nil
}

// RecordComplete persists the full session for a run that reached its
// target. Exactly one record per run: the caller clears the active run
// only after this succeeds.
func (s *RunService) RecordComplete(ctx context.Context, run *domain.Run) (domain.Session, error) {
	return s.record(ctx, run, run.TargetSeconds, domain.OutcomeCompleted)
}

// RecordTerminated persists a partial session for an early stop. A
// termination at zero elapsed carries no signal and produces no record.
func (s *RunService) RecordTerminated(ctx context.Context, run *domain.Run, elapsedSeconds int) (domain.Session, bool, error) {
	if elapsedSeconds == 0 {
		return domain.Session{}, false, nil
	}
	session, err := s.record(ctx, run, elapsedSeconds, domain.OutcomeTerminated)
	if err != nil {
		return domain.Session{}, false, err
	}
	return session, true, nil
}

func (s *RunService) record(ctx context.Context, run *domain.Run, durationSeconds int, kind string) (domain.Session, error) {
	name, err := s.courses.Lookup(ctx, run.CourseID)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.Session{
		ID:              s.idGen.New(),
		CourseID:        run.CourseID,
		StartAt:         s.clock.Now(),
		DurationSeconds: durationSeconds,
		TargetSeconds:   run.TargetSeconds,
		IsPartial:       durationSeconds < run.TargetSeconds,
	}
	if err := s.store.Append(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("append session: %w", err)
	}
	if s.notifier != nil {
		// Fire and forget: the record never depends on delivery.
		_ = s.notifier.Notify(ctx, domain.Outcome{
			Kind:            kind,
			CourseID:        run.CourseID,
			CourseName:      name,
			DurationSeconds: durationSeconds,
			TargetSeconds:   run.TargetSeconds,
		})
	}
	return session, nil
}
