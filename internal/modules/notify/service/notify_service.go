package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"focusdeck/internal/modules/notify/domain"
	notifyout "focusdeck/internal/modules/notify/port/out"
)

type NotifyService struct {
	manifests notifyout.ManifestStore
	host      notifyout.Host
}

func NewNotifyService(manifests notifyout.ManifestStore, host notifyout.Host) *NotifyService {
	return &NotifyService{manifests: manifests, host: host}
}

// Dispatch sends the event to every enabled notifier. Individual
// failures are collected so one broken plugin never blocks the rest;
// with no enabled notifiers this is a no-op.
func (s *NotifyService) Dispatch(ctx context.Context, event domain.Event) error {
	manifests, err := s.manifests.Load(ctx)
	if err != nil {
		return err
	}
	var errs []error
	for _, manifest := range manifests {
		if !manifest.Enabled {
			continue
		}
		if err := s.host.Notify(ctx, manifest, event); err != nil {
			errs = append(errs, fmt.Errorf("notifier %s: %w", manifest.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *NotifyService) List(ctx context.Context) ([]domain.Manifest, error) {
	return s.manifests.Load(ctx)
}

func (s *NotifyService) Doctor(ctx context.Context) ([]domain.DoctorResult, error) {
	manifests, err := s.manifests.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]domain.DoctorResult, 0, len(manifests))
	for _, manifest := range manifests {
		result := domain.DoctorResult{Name: manifest.Name}
		if _, err := os.Stat(manifest.Binary); err == nil {
			result.BinaryReachable = true
		}
		if result.BinaryReachable {
			if _, err := s.host.GetMetadata(ctx, manifest); err != nil {
				result.Error = err.Error()
			} else {
				result.HandshakeOK = true
			}
		}
		results = append(results, result)
	}
	return results, nil
}
