package domain_test

import (
	"errors"
	"testing"
	"time"

	"focusdeck/internal/modules/session/domain"
	apperrors "focusdeck/internal/platform/errors"
)

func at(min, sec int) time.Time {
	return time.Date(2026, 3, 10, 9, min, sec, 0, time.UTC)
}

func TestTargetBoundsRejectOutOfRangeDurations(t *testing.T) {
	t.Parallel()
	for _, seconds := range []int{0, 59, 480*60 + 1} {
		if err := domain.ValidateTarget(seconds); !errors.Is(err, apperrors.ErrInvalidDuration) {
			t.Fatalf("target %ds must be rejected, got %v", seconds, err)
		}
	}
	for _, seconds := range []int{60, 25 * 60, 480 * 60} {
		if err := domain.ValidateTarget(seconds); err != nil {
			t.Fatalf("target %ds must be accepted, got %v", seconds, err)
		}
	}
}

func TestElapsedDerivesFromClockAcrossSuspension(t *testing.T) {
	t.Parallel()
	run, err := domain.NewRun("run-1", "course-1", 1200)
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	if err := run.Start(at(0, 0)); err != nil {
		t.Fatalf("start: %v", err)
	}

	// No intermediate ticks happened; one snapshot after a long gap
	// still reports the true wall-clock elapsed.
	snap := run.Tick(at(7, 30))
	if snap.ElapsedSeconds != 450 || snap.RemainingSeconds != 750 {
		t.Fatalf("expected 450/750 after gap, got %d/%d", snap.ElapsedSeconds, snap.RemainingSeconds)
	}
	if snap.Phase != domain.PhaseRunning {
		t.Fatalf("expected running, got %s", snap.Phase)
	}
}

func TestCompletionFiresExactlyOnceAndClampsOvershoot(t *testing.T) {
	t.Parallel()
	run, _ := domain.NewRun("run-1", "course-1", 300)
	if err := run.Start(at(0, 0)); err != nil {
		t.Fatalf("start: %v", err)
	}

	snap := run.Tick(at(12, 0))
	if !snap.JustCompleted {
		t.Fatalf("first tick past target must report completion")
	}
	if snap.ElapsedSeconds != 300 || snap.RemainingSeconds != 0 {
		t.Fatalf("overshoot must clamp to target, got %d/%d", snap.ElapsedSeconds, snap.RemainingSeconds)
	}

	again := run.Tick(at(13, 0))
	if again.JustCompleted {
		t.Fatalf("completion must not re-fire")
	}
	if again.Phase != domain.PhaseCompleted || again.ElapsedSeconds != 300 {
		t.Fatalf("terminal snapshot changed: %+v", again)
	}
}

func TestPauseFreezesElapsedAndResumeContinues(t *testing.T) {
	t.Parallel()
	run, _ := domain.NewRun("run-1", "course-1", 600)
	_ = run.Start(at(0, 0))

	if err := run.Pause(at(2, 0)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	// Time passing while paused does not count.
	if snap := run.Tick(at(5, 0)); snap.ElapsedSeconds != 120 {
		t.Fatalf("paused elapsed must stay at 120, got %d", snap.ElapsedSeconds)
	}
	if err := run.Pause(at(5, 0)); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("pausing a paused run must fail, got %v", err)
	}

	if err := run.Resume(at(5, 0)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if snap := run.Tick(at(6, 0)); snap.ElapsedSeconds != 180 {
		t.Fatalf("expected 180 one minute after resume, got %d", snap.ElapsedSeconds)
	}
}

func TestResetReturnsToIdleWithSameTarget(t *testing.T) {
	t.Parallel()
	run, _ := domain.NewRun("run-1", "course-1", 600)
	_ = run.Start(at(0, 0))
	_ = run.Pause(at(3, 0))

	if err := run.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	snap := run.Tick(at(4, 0))
	if snap.Phase != domain.PhaseIdle || snap.ElapsedSeconds != 0 || snap.TargetSeconds != 600 {
		t.Fatalf("reset snapshot wrong: %+v", snap)
	}
	if err := run.Start(at(4, 0)); err != nil {
		t.Fatalf("restart after reset: %v", err)
	}
}

func TestTerminateReportsElapsedAndRefusesTerminalRuns(t *testing.T) {
	t.Parallel()
	run, _ := domain.NewRun("run-1", "course-1", 600)
	_ = run.Start(at(0, 0))

	elapsed, err := run.Terminate(at(4, 30))
	if err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if elapsed != 270 {
		t.Fatalf("expected 270s elapsed, got %d", elapsed)
	}
	if _, err := run.Terminate(at(5, 0)); !errors.Is(err, apperrors.ErrRunFinished) {
		t.Fatalf("second terminate must fail, got %v", err)
	}
	if err := run.Reset(); !errors.Is(err, apperrors.ErrRunFinished) {
		t.Fatalf("reset after terminate must fail, got %v", err)
	}
}

func TestTerminateImmediatelyAfterStartReportsZero(t *testing.T) {
	t.Parallel()
	run, _ := domain.NewRun("run-1", "course-1", 600)
	_ = run.Start(at(0, 0))
	elapsed, err := run.Terminate(at(0, 0))
	if err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if elapsed != 0 {
		t.Fatalf("expected zero elapsed, got %d", elapsed)
	}
}
