package usecase

import (
	"context"

	"focusdeck/internal/modules/notify/domain"
	notifydto "focusdeck/internal/modules/notify/dto"
	notifyin "focusdeck/internal/modules/notify/port/in"
	"focusdeck/internal/modules/notify/service"
	settingsin "focusdeck/internal/modules/settings/port/in"
	"focusdeck/internal/platform/clock"
)

type Interactor struct {
	svc      *service.NotifyService
	settings settingsin.Usecase
	clock    clock.Clock
}

func NewInteractor(svc *service.NotifyService, settings settingsin.Usecase, clk clock.Clock) notifyin.Usecase {
	return &Interactor{svc: svc, settings: settings, clock: clk}
}

func (i *Interactor) Dispatch(ctx context.Context, input notifydto.DispatchInput) error {
	if i.settings != nil {
		prefs, err := i.settings.Get(ctx)
		if err == nil && !prefs.NotificationsEnabled {
			return nil
		}
		if quiet, err := i.settings.InQuietHours(ctx, i.clock.Now()); err == nil && quiet {
			return nil
		}
	}
	return i.svc.Dispatch(ctx, domain.Event{
		Kind:            input.Kind,
		CourseID:        input.CourseID,
		CourseName:      input.CourseName,
		DurationSeconds: input.DurationSeconds,
		TargetSeconds:   input.TargetSeconds,
	})
}

func (i *Interactor) List(ctx context.Context) ([]notifydto.NotifierOutput, error) {
	manifests, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]notifydto.NotifierOutput, 0, len(manifests))
	for _, manifest := range manifests {
		out = append(out, notifydto.NotifierOutput{
			Name:    manifest.Name,
			Binary:  manifest.Binary,
			Enabled: manifest.Enabled,
		})
	}
	return out, nil
}

func (i *Interactor) Doctor(ctx context.Context) ([]notifydto.DoctorOutput, error) {
	results, err := i.svc.Doctor(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]notifydto.DoctorOutput, 0, len(results))
	for _, result := range results {
		out = append(out, notifydto.DoctorOutput{
			Name:            result.Name,
			BinaryReachable: result.BinaryReachable,
			HandshakeOK:     result.HandshakeOK,
			Error:           result.Error,
		})
	}
	return out, nil
}
