package in

import (
	"context"

	"focusdeck/internal/modules/stats/dto"
)

type Usecase interface {
	// Overview recomputes every aggregate from the full session and
	// course lists on demand.
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	Recent(ctx context.Context, windowDays int) ([]dto.SessionOutput, error)
	// RecentIndexed answers the same window from the sqlite index
	// instead of rescanning the collection blob.
	RecentIndexed(ctx context.Context, windowDays int) ([]dto.SessionOutput, error)
	// Reindex rebuilds the sqlite read-side index from the session
	// collection. The index is derived state only.
	Reindex(ctx context.Context) (dto.ReindexOutput, error)
}
