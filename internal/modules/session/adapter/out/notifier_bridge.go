package out

import (
	"context"

	notifydto "focusdeck/internal/modules/notify/dto"
	notifyin "focusdeck/internal/modules/notify/port/in"
	"focusdeck/internal/modules/session/domain"
	sessionout "focusdeck/internal/modules/session/port/out"
)

// NotifyBridge forwards recorder outcomes to the notify module.
type NotifyBridge struct {
	notify notifyin.Usecase
}

func NewNotifyBridge(notify notifyin.Usecase) sessionout.Notifier {
	return &NotifyBridge{notify: notify}
}

func (b *NotifyBridge) Notify(ctx context.Context, outcome domain.Outcome) error {
	return b.notify.Dispatch(ctx, notifydto.DispatchInput{
		Kind:            outcome.Kind,
		CourseID:        outcome.CourseID,
		CourseName:      outcome.CourseName,
		DurationSeconds: outcome.DurationSeconds,
		TargetSeconds:   outcome.TargetSeconds,
	})
}

// NoopNotifier is the fallback when notifications are disabled or no
// notifier plugin is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, domain.Outcome) error { return nil }
