package domain

import (
	"time"

	apperrors "focusdeck/internal/platform/errors"
)

// Target duration bounds, in minutes.
const (
	MinTargetMinutes = 1
	MaxTargetMinutes = 480
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseRunning    Phase = "running"
	PhasePaused     Phase = "paused"
	PhaseCompleted  Phase = "completed"
	PhaseTerminated Phase = "terminated"
)

// Run is the single transient countdown. Elapsed time is always
// derived from StartedAt against the wall clock, never accumulated by
// counting ticks, so a snapshot taken after an arbitrary host
// suspension reconciles in one step.
type Run struct {
	ID            string
	CourseID      string
	TargetSeconds int
	Phase         Phase

	// StartedAt is a virtual start: Resume moves it forward so that
	// now-StartedAt keeps measuring true elapsed time across pauses.
	StartedAt time.Time

	// FrozenElapsed holds the elapsed seconds while the run is not
	// running (paused, idle, or terminal).
	FrozenElapsed int
}

type Snapshot struct {
	Phase            Phase
	ElapsedSeconds   int
	RemainingSeconds int
	TargetSeconds    int
	JustCompleted    bool
}

// ValidateTarget rejects out-of-bound durations before any run state
// is created.
func ValidateTarget(targetSeconds int) error {
	if targetSeconds < MinTargetMinutes*60 || targetSeconds > MaxTargetMinutes*60 {
		return apperrors.ErrInvalidDuration
	}
	return nil
}

func NewRun(id, courseID string, targetSeconds int) (*Run, error) {
	if err := ValidateTarget(targetSeconds); err != nil {
		return nil, err
	}
	return &Run{
		ID:            id,
		CourseID:      courseID,
		TargetSeconds: targetSeconds,
		Phase:         PhaseIdle,
	}, nil
}

func (r *Run) Terminal() bool {
	return r.Phase == PhaseCompleted || r.Phase == PhaseTerminated
}

func (r *Run) Start(now time.Time) error {
	if r.Phase != PhaseIdle {
		return apperrors.ErrRunAlreadyActive
	}
	r.StartedAt = now
	r.FrozenElapsed = 0
	r.Phase = PhaseRunning
	return nil
}

func (r *Run) elapsedAt(now time.Time) int {
	elapsed := int(now.Sub(r.StartedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > r.TargetSeconds {
		elapsed = r.TargetSeconds
	}
	return elapsed
}

// Tick recomputes elapsed/remaining from the wall clock. Reaching zero
// remaining while running moves the run to Completed and reports
// JustCompleted exactly once; later ticks keep returning the terminal
// snapshot without re-firing.
func (r *Run) Tick(now time.Time) Snapshot {
	elapsed := r.FrozenElapsed
	if r.Phase == PhaseRunning {
		elapsed = r.elapsedAt(now)
	}
	snap := Snapshot{
		Phase:            r.Phase,
		ElapsedSeconds:   elapsed,
		RemainingSeconds: r.TargetSeconds - elapsed,
		TargetSeconds:    r.TargetSeconds,
	}
	if r.Phase == PhaseRunning && snap.RemainingSeconds == 0 {
		r.Phase = PhaseCompleted
		r.FrozenElapsed = elapsed
		snap.Phase = PhaseCompleted
		snap.JustCompleted = true
	}
	return snap
}

func (r *Run) Pause(now time.Time) error {
	if r.Terminal() {
		return apperrors.ErrRunFinished
	}
	if r.Phase != PhaseRunning {
		return apperrors.ErrInvalidInput
	}
	r.FrozenElapsed = r.elapsedAt(now)
	r.Phase = PhasePaused
	return nil
}

// Resume recomputes a virtual start so the countdown continues
// seamlessly from the frozen elapsed value.
func (r *Run) Resume(now time.Time) error {
	if r.Terminal() {
		return apperrors.ErrRunFinished
	}
	if r.Phase != PhasePaused {
		return apperrors.ErrInvalidInput
	}
	r.StartedAt = now.Add(-time.Duration(r.FrozenElapsed) * time.Second)
	r.Phase = PhaseRunning
	return nil
}

// Reset returns the run to the as-created state with its original
// target. It must be started again explicitly.
func (r *Run) Reset() error {
	if r.Terminal() {
		return apperrors.ErrRunFinished
	}
	r.Phase = PhaseIdle
	r.FrozenElapsed = 0
	r.StartedAt = time.Time{}
	return nil
}

// Terminate stops the run early and returns the final elapsed seconds.
func (r *Run) Terminate(now time.Time) (int, error) {
	if r.Terminal() {
		return 0, apperrors.ErrRunFinished
	}
	elapsed := r.FrozenElapsed
	if r.Phase == PhaseRunning {
		elapsed = r.elapsedAt(now)
	}
	r.FrozenElapsed = elapsed
	r.Phase = PhaseTerminated
	return elapsed, nil
}
