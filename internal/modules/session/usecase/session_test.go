package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sessionadapter "focusdeck/internal/modules/session/adapter/out"
	"focusdeck/internal/modules/session/domain"
	sessiondto "focusdeck/internal/modules/session/dto"
	sessionin "focusdeck/internal/modules/session/port/in"
	"focusdeck/internal/modules/session/service"
	"focusdeck/internal/modules/session/usecase"
	apperrors "focusdeck/internal/platform/errors"
	"focusdeck/internal/platform/kvstore"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct {
	n int
}

func (f *fakeID) New() string {
	f.n++
	return fmt.Sprintf("id-%d", f.n)
}

type staticCourses struct {
	names map[string]string
}

func (s staticCourses) Lookup(_ context.Context, id string) (string, error) {
	name, ok := s.names[id]
	if !ok {
		return "", apperrors.ErrCourseNotFound
	}
	return name, nil
}

type captureNotifier struct {
	outcomes []domain.Outcome
}

func (c *captureNotifier) Notify(_ context.Context, outcome domain.Outcome) error {
	c.outcomes = append(c.outcomes, outcome)
	return nil
}

type flakySessionStore struct {
	inner *sessionadapter.KVSessionStore
	fail  bool
}

func (f *flakySessionStore) Append(ctx context.Context, session domain.Session) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.inner.Append(ctx, session)
}

func (f *flakySessionStore) List(ctx context.Context) ([]domain.Session, error) {
	return f.inner.List(ctx)
}

func (f *flakySessionStore) RemoveByCourse(ctx context.Context, courseID string) (int, error) {
	return f.inner.RemoveByCourse(ctx, courseID)
}

func newFixture(t *testing.T) (sessionin.Usecase, *fakeClock, *captureNotifier, *flakySessionStore) {
	t.Helper()
	data := t.TempDir()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}
	store := &flakySessionStore{inner: sessionadapter.NewKVSessionStore(kvstore.New(data))}
	courses := staticCourses{names: map[string]string{"course-1": "Linear Algebra"}}
	notifier := &captureNotifier{}
	svc := service.NewRunService(clk, &fakeID{}, store, courses, notifier)
	uc := usecase.NewInteractor(svc, clk, store, sessionadapter.NewFileActiveRunStore(data), courses)
	return uc, clk, notifier, store
}

func TestEarlyStopRecordsExactlyOnePartialSession(t *testing.T) {
	t.Parallel()
	uc, clk, notifier, _ := newFixture(t)
	ctx := context.Background()

	start, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 1200})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.CourseName != "Linear Algebra" {
		t.Fatalf("expected course name resolved, got %q", start.CourseName)
	}

	clk.now = clk.now.Add(5 * time.Minute)
	stop, err := uc.Stop(ctx)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !stop.Recorded || !stop.IsPartial {
		t.Fatalf("expected recorded partial session, got %+v", stop)
	}
	if stop.DurationSeconds != 300 || stop.TargetSeconds != 1200 {
		t.Fatalf("expected 300s of 1200s, got %d of %d", stop.DurationSeconds, stop.TargetSeconds)
	}

	sessions, err := uc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || !sessions[0].IsPartial {
		t.Fatalf("expected exactly one partial record, got %+v", sessions)
	}
	if len(notifier.outcomes) != 1 || notifier.outcomes[0].Kind != domain.OutcomeTerminated {
		t.Fatalf("expected one terminated notification, got %+v", notifier.outcomes)
	}

	if _, err := uc.Stop(ctx); !errors.Is(err, apperrors.ErrNoActiveRun) {
		t.Fatalf("second stop must find no active run, got %v", err)
	}
}

func TestStatusRecordsFullSessionWhenCountdownExpired(t *testing.T) {
	t.Parallel()
	uc, clk, notifier, _ := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 60}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// The process was away well past the target; the next status call
	// completes and records in one step.
	clk.now = clk.now.Add(10 * time.Minute)
	status, err := uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Phase != string(domain.PhaseCompleted) || !status.Recorded {
		t.Fatalf("expected recorded completion, got %+v", status)
	}
	if status.ElapsedSeconds != 60 || status.RemainingSeconds != 0 {
		t.Fatalf("expected clamped 60/0, got %d/%d", status.ElapsedSeconds, status.RemainingSeconds)
	}

	sessions, _ := uc.ListSessions(ctx)
	if len(sessions) != 1 || sessions[0].IsPartial || sessions[0].DurationSeconds != 60 {
		t.Fatalf("expected one full 60s record, got %+v", sessions)
	}
	if len(notifier.outcomes) != 1 || notifier.outcomes[0].Kind != domain.OutcomeCompleted {
		t.Fatalf("expected one completed notification, got %+v", notifier.outcomes)
	}

	if _, err := uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveRun) {
		t.Fatalf("status after completion must report no active run, got %v", err)
	}
}

func TestStartRejectsSecondRunBadTargetAndUnknownCourse(t *testing.T) {
	t.Parallel()
	uc, _, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 30}); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("sub-minute target must fail, got %v", err)
	}
	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "missing", TargetSeconds: 600}); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("unknown course must fail, got %v", err)
	}

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 600}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 600}); !errors.Is(err, apperrors.ErrRunAlreadyActive) {
		t.Fatalf("second start must fail, got %v", err)
	}
}

func TestZeroElapsedStopRecordsNothing(t *testing.T) {
	t.Parallel()
	uc, _, notifier, _ := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 600}); err != nil {
		t.Fatalf("start: %v", err)
	}
	stop, err := uc.Stop(ctx)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stop.Recorded {
		t.Fatalf("zero elapsed must not record, got %+v", stop)
	}
	sessions, _ := uc.ListSessions(ctx)
	if len(sessions) != 0 {
		t.Fatalf("expected no records, got %+v", sessions)
	}
	if len(notifier.outcomes) != 0 {
		t.Fatalf("expected no notification, got %+v", notifier.outcomes)
	}
	if _, err := uc.Status(ctx); !errors.Is(err, apperrors.ErrNoActiveRun) {
		t.Fatalf("active state must be cleared, got %v", err)
	}
}

func TestFailedAppendKeepsActiveRunForRetry(t *testing.T) {
	t.Parallel()
	uc, clk, _, store := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 1200}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.now = clk.now.Add(3 * time.Minute)

	store.fail = true
	if _, err := uc.Stop(ctx); err == nil {
		t.Fatalf("stop must surface the append failure")
	}

	// The run is still on disk, so the stop can simply be retried.
	store.fail = false
	stop, err := uc.Stop(ctx)
	if err != nil {
		t.Fatalf("retry stop: %v", err)
	}
	if !stop.Recorded || stop.DurationSeconds != 180 {
		t.Fatalf("expected 180s partial on retry, got %+v", stop)
	}

	sessions, _ := uc.ListSessions(ctx)
	if len(sessions) != 1 {
		t.Fatalf("retry must not double-record, got %d records", len(sessions))
	}
}

func TestPauseStopsTheClockAndResumeContinues(t *testing.T) {
	t.Parallel()
	uc, clk, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 600}); err != nil {
		t.Fatalf("start: %v", err)
	}

	clk.now = clk.now.Add(2 * time.Minute)
	paused, err := uc.Pause(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.Phase != string(domain.PhasePaused) || paused.ElapsedSeconds != 120 {
		t.Fatalf("expected paused at 120s, got %+v", paused)
	}

	// Eight minutes pass while paused; none of it counts.
	clk.now = clk.now.Add(8 * time.Minute)
	resumed, err := uc.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.ElapsedSeconds != 120 {
		t.Fatalf("resume must continue from 120s, got %d", resumed.ElapsedSeconds)
	}

	clk.now = clk.now.Add(1 * time.Minute)
	status, err := uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.ElapsedSeconds != 180 || status.RemainingSeconds != 420 {
		t.Fatalf("expected 180/420, got %d/%d", status.ElapsedSeconds, status.RemainingSeconds)
	}
}

func TestMutationReconcilesExpiredCountdownFirst(t *testing.T) {
	t.Parallel()
	uc, clk, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 60}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.now = clk.now.Add(5 * time.Minute)

	// Pausing an already-expired countdown completes it instead.
	out, err := uc.Pause(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !out.Recorded || out.Phase != string(domain.PhaseCompleted) {
		t.Fatalf("expected completion on reconcile, got %+v", out)
	}
	sessions, _ := uc.ListSessions(ctx)
	if len(sessions) != 1 || sessions[0].IsPartial {
		t.Fatalf("expected one full record, got %+v", sessions)
	}
}

func TestResetStartsOverWithoutRecording(t *testing.T) {
	t.Parallel()
	uc, clk, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := uc.Start(ctx, sessiondto.StartInput{CourseID: "course-1", TargetSeconds: 600}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.now = clk.now.Add(4 * time.Minute)

	reset, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset.Phase != string(domain.PhaseIdle) || reset.ElapsedSeconds != 0 {
		t.Fatalf("expected idle 0s, got %+v", reset)
	}

	// Resume from idle starts the countdown fresh.
	resumed, err := uc.Resume(ctx)
	if err != nil {
		t.Fatalf("resume from idle: %v", err)
	}
	if resumed.Phase != string(domain.PhaseRunning) || resumed.ElapsedSeconds != 0 {
		t.Fatalf("expected fresh running run, got %+v", resumed)
	}
	sessions, _ := uc.ListSessions(ctx)
	if len(sessions) != 0 {
		t.Fatalf("reset must not record, got %+v", sessions)
	}
}

func TestPurgeByCourseRemovesOnlyMatchingSessions(t *testing.T) {
	t.Parallel()
	uc, clk, _, store := newFixture(t)
	ctx := context.Background()

	seed := []domain.Session{
		{ID: "s1", CourseID: "course-1", StartAt: clk.now, DurationSeconds: 300, TargetSeconds: 600, IsPartial: true},
		{ID: "s2", CourseID: "course-2", StartAt: clk.now, DurationSeconds: 600, TargetSeconds: 600},
		{ID: "s3", CourseID: "course-1", StartAt: clk.now, DurationSeconds: 600, TargetSeconds: 600},
	}
	for _, session := range seed {
		if err := store.Append(ctx, session); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	removed, err := uc.PurgeByCourse(ctx, "course-1")
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	sessions, _ := uc.ListSessions(ctx)
	if len(sessions) != 1 || sessions[0].CourseID != "course-2" {
		t.Fatalf("expected only course-2 left, got %+v", sessions)
	}
}
