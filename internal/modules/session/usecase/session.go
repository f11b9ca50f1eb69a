package usecase

import (
	"context"
	"errors"

	"focusdeck/internal/modules/session/domain"
	sessiondto "focusdeck/internal/modules/session/dto"
	sessionin "focusdeck/internal/modules/session/port/in"
	sessionout "focusdeck/internal/modules/session/port/out"
	"focusdeck/internal/modules/session/service"
	"focusdeck/internal/platform/clock"
	apperrors "focusdeck/internal/platform/errors"
)

type Interactor struct {
	svc         *service.RunService
	clock       clock.Clock
	store       sessionout.SessionStore
	activeStore sessionout.ActiveRunStore
	courses     sessionout.CourseDirectory
}

func NewInteractor(svc *service.RunService, clk clock.Clock, store sessionout.SessionStore, activeStore sessionout.ActiveRunStore, courses sessionout.CourseDirectory) sessionin.Usecase {
	return &Interactor{svc: svc, clock: clk, store: store, activeStore: activeStore, courses: courses}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	if _, err := i.activeStore.LoadActive(ctx); err == nil {
		return sessiondto.StartOutput{}, apperrors.ErrRunAlreadyActive
	} else if !errors.Is(err, apperrors.ErrNoActiveRun) {
		return sessiondto.StartOutput{}, err
	}

	run, courseName, err := i.svc.Begin(ctx, input.CourseID, input.TargetSeconds)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, run); err != nil {
		return sessiondto.StartOutput{}, err
	}
	return sessiondto.StartOutput{
		RunID:         run.ID,
		CourseID:      run.CourseID,
		CourseName:    courseName,
		TargetSeconds: run.TargetSeconds,
		StartedAt:     run.StartedAt,
	}, nil
}

// Status snapshots the active run against the real clock. A run whose
// countdown has reached zero is recorded as a full session here; the
// active state is cleared only after the record lands, so a failed
// write can be retried by asking for status again.
func (i *Interactor) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	run, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	snap := run.Tick(i.clock.Now())
	out := i.statusOf(ctx, run, snap)
	if !snap.JustCompleted {
		return out, nil
	}

	session, err := i.svc.RecordComplete(ctx, run)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.StatusOutput{}, err
	}
	out.Recorded = true
	out.SessionID = session.ID
	return out, nil
}

func (i *Interactor) Pause(ctx context.Context) (sessiondto.StatusOutput, error) {
	return i.mutate(ctx, func(run *domain.Run) error {
		return run.Pause(i.clock.Now())
	})
}

func (i *Interactor) Resume(ctx context.Context) (sessiondto.StatusOutput, error) {
	return i.mutate(ctx, func(run *domain.Run) error {
		if run.Phase == domain.PhaseIdle {
			return run.Start(i.clock.Now())
		}
		return run.Resume(i.clock.Now())
	})
}

func (i *Interactor) Reset(ctx context.Context) (sessiondto.StatusOutput, error) {
	return i.mutate(ctx, func(run *domain.Run) error {
		return run.Reset()
	})
}

func (i *Interactor) mutate(ctx context.Context, fn func(*domain.Run) error) (sessiondto.StatusOutput, error) {
	run, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	// Reconcile against the clock first so a countdown that expired
	// while the process was away completes instead of mutating.
	if snap := run.Tick(i.clock.Now()); snap.JustCompleted {
		session, err := i.svc.RecordComplete(ctx, run)
		if err != nil {
			return sessiondto.StatusOutput{}, err
		}
		if err := i.activeStore.ClearActive(ctx); err != nil {
			return sessiondto.StatusOutput{}, err
		}
		out := i.statusOf(ctx, run, snap)
		out.Recorded = true
		out.SessionID = session.ID
		return out, nil
	}
	if err := fn(run); err != nil {
		return sessiondto.StatusOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, run); err != nil {
		return sessiondto.StatusOutput{}, err
	}
	return i.statusOf(ctx, run, run.Tick(i.clock.Now())), nil
}

func (i *Interactor) Stop(ctx context.Context) (sessiondto.StopOutput, error) {
	run, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.StopOutput{}, err
	}

	if snap := run.Tick(i.clock.Now()); snap.JustCompleted {
		session, err := i.svc.RecordComplete(ctx, run)
		if err != nil {
			return sessiondto.StopOutput{}, err
		}
		if err := i.activeStore.ClearActive(ctx); err != nil {
			return sessiondto.StopOutput{}, err
		}
		return stopOutput(session, true), nil
	}

	elapsed, err := run.Terminate(i.clock.Now())
	if err != nil {
		return sessiondto.StopOutput{}, err
	}
	session, recorded, err := i.svc.RecordTerminated(ctx, run, elapsed)
	if err != nil {
		// The active run file stays in place so the stop can be
		// retried after a storage failure.
		return sessiondto.StopOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.StopOutput{}, err
	}
	if !recorded {
		return sessiondto.StopOutput{Recorded: false, CourseID: run.CourseID, TargetSeconds: run.TargetSeconds}, nil
	}
	return stopOutput(session, true), nil
}

func (i *Interactor) ListSessions(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	sessions, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessiondto.SessionOutput{
			ID:              s.ID,
			CourseID:        s.CourseID,
			StartAt:         s.StartAt,
			DurationSeconds: s.DurationSeconds,
			TargetSeconds:   s.TargetSeconds,
			IsPartial:       s.IsPartial,
		})
	}
	return out, nil
}

func (i *Interactor) PurgeByCourse(ctx context.Context, courseID string) (int, error) {
	return i.store.RemoveByCourse(ctx, courseID)
}

func (i *Interactor) statusOf(ctx context.Context, run *domain.Run, snap domain.Snapshot) sessiondto.StatusOutput {
	name, err := i.courses.Lookup(ctx, run.CourseID)
	if err != nil {
		name = ""
	}
	return sessiondto.StatusOutput{
		RunID:            run.ID,
		CourseID:         run.CourseID,
		CourseName:       name,
		Phase:            string(snap.Phase),
		ElapsedSeconds:   snap.ElapsedSeconds,
		RemainingSeconds: snap.RemainingSeconds,
		TargetSeconds:    snap.TargetSeconds,
	}
}

func stopOutput(session domain.Session, recorded bool) sessiondto.StopOutput {
	return sessiondto.StopOutput{
		Recorded:        recorded,
		SessionID:       session.ID,
		CourseID:        session.CourseID,
		DurationSeconds: session.DurationSeconds,
		TargetSeconds:   session.TargetSeconds,
		IsPartial:       session.IsPartial,
	}
}
