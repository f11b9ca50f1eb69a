package in

import (
	"context"

	notifydto "focusdeck/internal/modules/notify/dto"
	notifyin "focusdeck/internal/modules/notify/port/in"
)

type CLIHandler struct {
	usecase notifyin.Usecase
}

func NewCLIHandler(usecase notifyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]notifydto.NotifierOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]notifydto.DoctorOutput, error) {
	return h.usecase.Doctor(ctx)
}

// Test dispatches a sample event through the real delivery path.
func (h CLIHandler) Test(ctx context.Context) error {
	return h.usecase.Dispatch(ctx, notifydto.DispatchInput{
		Kind:            "completed",
		CourseName:      "Test course",
		DurationSeconds: 1500,
		TargetSeconds:   1500,
	})
}
