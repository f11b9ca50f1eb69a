package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"focusdeck/internal/modules/notify/domain"
	"focusdeck/internal/modules/notify/service"
)

type staticManifests struct {
	manifests []domain.Manifest
}

func (s staticManifests) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type recordingHost struct {
	notified []string
	failFor  string
}

func (h *recordingHost) Notify(_ context.Context, manifest domain.Manifest, _ domain.Event) error {
	h.notified = append(h.notified, manifest.Name)
	if manifest.Name == h.failFor {
		return errors.New("plugin exploded")
	}
	return nil
}

func (h *recordingHost) GetMetadata(_ context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	if manifest.Name == h.failFor {
		return domain.Metadata{}, errors.New("handshake refused")
	}
	return domain.Metadata{Name: manifest.Name, Version: "1.0.0"}, nil
}

func TestDispatchSkipsDisabledNotifiers(t *testing.T) {
	t.Parallel()
	host := &recordingHost{}
	svc := service.NewNotifyService(staticManifests{manifests: []domain.Manifest{
		{Name: "desktop", Binary: "/bin/true", Enabled: true},
		{Name: "muted", Binary: "/bin/true", Enabled: false},
		{Name: "webhook", Binary: "/bin/true", Enabled: true},
	}}, host)

	if err := svc.Dispatch(context.Background(), domain.Event{Kind: "completed"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(host.notified) != 2 || host.notified[0] != "desktop" || host.notified[1] != "webhook" {
		t.Fatalf("expected desktop and webhook only, got %v", host.notified)
	}
}

func TestDispatchCollectsFailuresWithoutBlockingOthers(t *testing.T) {
	t.Parallel()
	host := &recordingHost{failFor: "desktop"}
	svc := service.NewNotifyService(staticManifests{manifests: []domain.Manifest{
		{Name: "desktop", Binary: "/bin/true", Enabled: true},
		{Name: "webhook", Binary: "/bin/true", Enabled: true},
	}}, host)

	err := svc.Dispatch(context.Background(), domain.Event{Kind: "terminated"})
	if err == nil {
		t.Fatalf("expected the desktop failure to surface")
	}
	if !strings.Contains(err.Error(), "notifier desktop") {
		t.Fatalf("error must name the failing notifier: %v", err)
	}
	if len(host.notified) != 2 {
		t.Fatalf("one failure must not block the rest, got %v", host.notified)
	}
}

func TestDispatchWithNoEnabledNotifiersIsANoop(t *testing.T) {
	t.Parallel()
	host := &recordingHost{}
	svc := service.NewNotifyService(staticManifests{}, host)
	if err := svc.Dispatch(context.Background(), domain.Event{Kind: "completed"}); err != nil {
		t.Fatalf("empty dispatch: %v", err)
	}
	if len(host.notified) != 0 {
		t.Fatalf("expected no delivery, got %v", host.notified)
	}
}

func TestDoctorReportsMissingBinariesWithoutHandshaking(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	real := filepath.Join(dir, "notifier-desktop")
	if err := os.WriteFile(real, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}

	host := &recordingHost{failFor: "broken"}
	svc := service.NewNotifyService(staticManifests{manifests: []domain.Manifest{
		{Name: "desktop", Binary: real, Enabled: true},
		{Name: "ghost", Binary: filepath.Join(dir, "missing"), Enabled: true},
		{Name: "broken", Binary: real, Enabled: true},
	}}, host)

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected a result per manifest, got %d", len(results))
	}
	if !results[0].BinaryReachable || !results[0].HandshakeOK {
		t.Fatalf("healthy notifier misreported: %+v", results[0])
	}
	if results[1].BinaryReachable || results[1].HandshakeOK {
		t.Fatalf("missing binary must fail without a handshake attempt: %+v", results[1])
	}
	if !results[2].BinaryReachable || results[2].HandshakeOK || results[2].Error == "" {
		t.Fatalf("handshake failure must carry the error: %+v", results[2])
	}
}
