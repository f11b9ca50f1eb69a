package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusdeck/internal/modules/session/domain"
	sessionout "focusdeck/internal/modules/session/port/out"
	apperrors "focusdeck/internal/platform/errors"
)

// FileActiveRunStore persists the single active run so short-lived CLI
// invocations and the TUI share one countdown. Only the virtual start
// timestamp is stored; elapsed time is recomputed on load.
type FileActiveRunStore struct {
	path string
}

func NewFileActiveRunStore(dataPath string) sessionout.ActiveRunStore {
	return &FileActiveRunStore{path: filepath.Join(dataPath, "active-run.json")}
}

type activeRunRecord struct {
	SchemaVersion int       `json:"schema_version"`
	RunID         string    `json:"run_id"`
	CourseID      string    `json:"course_id"`
	TargetSeconds int       `json:"target_seconds"`
	Phase         string    `json:"phase"`
	StartedAt     time.Time `json:"started_at"`
	FrozenElapsed int       `json:"frozen_elapsed_seconds"`
}

func (s *FileActiveRunStore) SaveActive(_ context.Context, run *domain.Run) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	record := activeRunRecord{
		SchemaVersion: domain.SchemaVersion,
		RunID:         run.ID,
		CourseID:      run.CourseID,
		TargetSeconds: run.TargetSeconds,
		Phase:         string(run.Phase),
		StartedAt:     run.StartedAt,
		FrozenElapsed: run.FrozenElapsed,
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active run: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active run: %w", err)
	}
	return nil
}

func (s *FileActiveRunStore) LoadActive(_ context.Context) (*domain.Run, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNoActiveRun
		}
		return nil, fmt.Errorf("read active run: %w", err)
	}
	record := activeRunRecord{}
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode active run: %w", err)
	}
	if record.RunID == "" {
		return nil, apperrors.ErrNoActiveRun
	}
	return &domain.Run{
		ID:            record.RunID,
		CourseID:      record.CourseID,
		TargetSeconds: record.TargetSeconds,
		Phase:         domain.Phase(record.Phase),
		StartedAt:     record.StartedAt,
		FrozenElapsed: record.FrozenElapsed,
	}, nil
}

func (s *FileActiveRunStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active run: %w", err)
	}
	return nil
}
