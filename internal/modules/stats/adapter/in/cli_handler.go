package in

import (
	"context"

	statsdto "focusdeck/internal/modules/stats/dto"
	statsin "focusdeck/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (statsdto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Recent(ctx context.Context, windowDays int, indexed bool) ([]statsdto.SessionOutput, error) {
	if indexed {
		return h.usecase.RecentIndexed(ctx, windowDays)
	}
	return h.usecase.Recent(ctx, windowDays)
}

func (h CLIHandler) Reindex(ctx context.Context) (statsdto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx)
}
