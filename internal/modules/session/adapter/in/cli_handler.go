package in

import (
	"context"

	sessiondto "focusdeck/internal/modules/session/dto"
	sessionin "focusdeck/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, courseID string, targetSeconds int) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{CourseID: courseID, TargetSeconds: targetSeconds})
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (sessiondto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) ListSessions(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx)
}
