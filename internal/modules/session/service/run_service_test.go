package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sessionadapter "focusdeck/internal/modules/session/adapter/out"
	"focusdeck/internal/modules/session/domain"
	"focusdeck/internal/modules/session/service"
	apperrors "focusdeck/internal/platform/errors"
	"focusdeck/internal/platform/kvstore"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct{}

func (fakeID) New() string { return "fixed-id" }

type oneCourse struct{}

func (oneCourse) Lookup(_ context.Context, id string) (string, error) {
	if id != "course-1" {
		return "", apperrors.ErrCourseNotFound
	}
	return "Linear Algebra", nil
}

type failingNotifier struct {
	calls int
}

func (f *failingNotifier) Notify(context.Context, domain.Outcome) error {
	f.calls++
	return errors.New("notifier crashed")
}

func TestRecordSurvivesNotifierFailure(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	store := sessionadapter.NewKVSessionStore(kvstore.New(t.TempDir()))
	notifier := &failingNotifier{}
	svc := service.NewRunService(clk, fakeID{}, store, oneCourse{}, notifier)

	run, _, err := svc.Begin(context.Background(), "course-1", 1500)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	session, err := svc.RecordComplete(context.Background(), run)
	if err != nil {
		t.Fatalf("record must not depend on delivery, got %v", err)
	}
	if session.DurationSeconds != 1500 || session.IsPartial {
		t.Fatalf("expected full 1500s session, got %+v", session)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notify attempt, got %d", notifier.calls)
	}

	sessions, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected the record persisted, got %d", len(sessions))
	}
}

func TestBeginLeavesNoStateOnValidationFailure(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	store := sessionadapter.NewKVSessionStore(kvstore.New(t.TempDir()))
	svc := service.NewRunService(clk, fakeID{}, store, oneCourse{}, nil)

	if _, _, err := svc.Begin(context.Background(), "course-1", 10); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("expected duration rejection, got %v", err)
	}
	if _, _, err := svc.Begin(context.Background(), "ghost", 1500); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected course rejection, got %v", err)
	}
	sessions, _ := store.List(context.Background())
	if len(sessions) != 0 {
		t.Fatalf("validation failures must not persist anything, got %d", len(sessions))
	}
}
