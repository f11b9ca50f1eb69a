package in

import (
	"context"

	"focusdeck/internal/modules/session/dto"
)

type Usecase interface {
	// Start begins the single active countdown for a course.
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	// Status recomputes elapsed/remaining from the wall clock; a run
	// that has reached its target is recorded as a full session here.
	Status(ctx context.Context) (dto.StatusOutput, error)
	Pause(ctx context.Context) (dto.StatusOutput, error)
	Resume(ctx context.Context) (dto.StatusOutput, error)
	Reset(ctx context.Context) (dto.StatusOutput, error)
	// Stop terminates the run early. Nonzero elapsed produces exactly
	// one partial session; zero elapsed produces no record at all.
	Stop(ctx context.Context) (dto.StopOutput, error)
	ListSessions(ctx context.Context) ([]dto.SessionOutput, error)
	// PurgeByCourse removes every session for a course and returns the
	// number removed. Used by the course delete cascade.
	PurgeByCourse(ctx context.Context, courseID string) (int, error)
}
