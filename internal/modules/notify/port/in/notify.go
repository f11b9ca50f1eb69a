package in

import (
	"context"

	"focusdeck/internal/modules/notify/dto"
)

type Usecase interface {
	// Dispatch fans the event out to every enabled notifier. The
	// notifications toggle and quiet hours suppress delivery; callers
	// treat the whole path as fire-and-forget.
	Dispatch(ctx context.Context, input dto.DispatchInput) error
	List(ctx context.Context) ([]dto.NotifierOutput, error)
	Doctor(ctx context.Context) ([]dto.DoctorOutput, error)
}
