package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	adapter "focusdeck/internal/modules/notify/adapter/out"
)

func TestLoadWithoutManifestFileReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := adapter.NewFileManifestStore(t.TempDir())
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected empty manifest list, got %+v", manifests)
	}
}

func TestLoadResolvesRelativeBinaryPaths(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	dir := filepath.Join(base, "notifiers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `[
		{"name":"desktop","binary":"notifiers/bin/desktop","enabled":true},
		{"name":"remote","binary":"/usr/local/bin/notifier","enabled":false}
	]`
	if err := os.WriteFile(filepath.Join(dir, "notifiers.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := adapter.NewFileManifestStore(base)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 2 {
		t.Fatalf("expected 2 manifests, got %d", len(manifests))
	}
	if want := filepath.Join(base, "notifiers", "bin", "desktop"); manifests[0].Binary != want {
		t.Fatalf("relative path not resolved: got %q want %q", manifests[0].Binary, want)
	}
	if manifests[1].Binary != "/usr/local/bin/notifier" {
		t.Fatalf("absolute path must pass through, got %q", manifests[1].Binary)
	}
}

func TestLoadRejectsUnknownManifestFields(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	dir := filepath.Join(base, "notifiers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `[{"name":"desktop","binary":"/bin/true","enabled":true,"args":["-v"]}]`
	if err := os.WriteFile(filepath.Join(dir, "notifiers.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := adapter.NewFileManifestStore(base).Load(context.Background()); err == nil {
		t.Fatalf("unknown fields must fail loudly")
	}
}
