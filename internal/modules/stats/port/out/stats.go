package out

import (
	"context"
	"time"

	"focusdeck/internal/modules/stats/domain"
)

// SessionIndex is the sqlite projection of the session collection.
type SessionIndex interface {
	Rebuild(ctx context.Context, sessions []domain.Session) error
	Recent(ctx context.Context, cutoff time.Time) ([]domain.Session, error)
}
