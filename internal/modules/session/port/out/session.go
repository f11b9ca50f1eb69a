package out

import (
	"context"

	"focusdeck/internal/modules/session/domain"
)

// SessionStore persists the append-only session collection.
type SessionStore interface {
	Append(ctx context.Context, session domain.Session) error
	List(ctx context.Context) ([]domain.Session, error)
	RemoveByCourse(ctx context.Context, courseID string) (int, error)
}

// ActiveRunStore persists the single active run across process
// invocations so the CLI and TUI agree on timer state.
type ActiveRunStore interface {
	SaveActive(ctx context.Context, run *domain.Run) error
	LoadActive(ctx context.Context) (*domain.Run, error)
	ClearActive(ctx context.Context) error
}

// CourseDirectory resolves course references at run start and record
// time.
type CourseDirectory interface {
	Lookup(ctx context.Context, courseID string) (string, error)
}

// Notifier delivers outcome events. Callers never depend on its
// result.
type Notifier interface {
	Notify(ctx context.Context, outcome domain.Outcome) error
}
