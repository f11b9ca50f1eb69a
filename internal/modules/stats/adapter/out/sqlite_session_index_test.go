package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	adapter "focusdeck/internal/modules/stats/adapter/out"
	"focusdeck/internal/modules/stats/domain"
)

func newIndex(t *testing.T) interface {
	Rebuild(ctx context.Context, sessions []domain.Session) error
	Recent(ctx context.Context, cutoff time.Time) ([]domain.Session, error)
} {
	t.Helper()
	index, err := adapter.NewSQLiteSessionIndex(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	return index
}

func TestRebuildReplacesTheWholeIndex(t *testing.T) {
	t.Parallel()
	index := newIndex(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	first := []domain.Session{
		{ID: "s1", CourseID: "c1", StartAt: base, DurationSeconds: 1500, TargetSeconds: 1500},
		{ID: "s2", CourseID: "c1", StartAt: base.Add(time.Hour), DurationSeconds: 300, TargetSeconds: 1500, IsPartial: true},
	}
	if err := index.Rebuild(ctx, first); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	second := []domain.Session{
		{ID: "s3", CourseID: "c2", StartAt: base.Add(2 * time.Hour), DurationSeconds: 600, TargetSeconds: 600},
	}
	if err := index.Rebuild(ctx, second); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	got, err := index.Recent(ctx, base.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s3" {
		t.Fatalf("rebuild must replace, not merge: %+v", got)
	}
}

func TestRecentFiltersByCutoffAndSortsNewestFirst(t *testing.T) {
	t.Parallel()
	index := newIndex(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	sessions := []domain.Session{
		{ID: "old", CourseID: "c1", StartAt: base.AddDate(0, 0, -10), DurationSeconds: 600, TargetSeconds: 600},
		{ID: "mid", CourseID: "c1", StartAt: base.AddDate(0, 0, -3), DurationSeconds: 300, TargetSeconds: 600, IsPartial: true},
		{ID: "new", CourseID: "c2", StartAt: base, DurationSeconds: 1500, TargetSeconds: 1500},
	}
	if err := index.Rebuild(ctx, sessions); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	got, err := index.Recent(ctx, base.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 in window, got %+v", got)
	}
	if got[0].ID != "new" || got[1].ID != "mid" {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if !got[1].IsPartial || !got[1].StartAt.Equal(base.AddDate(0, 0, -3)) {
		t.Fatalf("row fields lost in roundtrip: %+v", got[1])
	}
}

func TestRecentOnEmptyIndexReturnsNoRows(t *testing.T) {
	t.Parallel()
	index := newIndex(t)
	got, err := index.Recent(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
