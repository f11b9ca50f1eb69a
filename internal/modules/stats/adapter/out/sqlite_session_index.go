package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusdeck/internal/modules/stats/domain"
	statsout "focusdeck/internal/modules/stats/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteSessionIndex is a derived read-side projection of the session
// collection. Reindex rebuilds it wholesale; nothing authoritative
// lives here.
type SQLiteSessionIndex struct {
	db *sql.DB
}

func NewSQLiteSessionIndex(dbPath string) (statsout.SessionIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	index := &SQLiteSessionIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *SQLiteSessionIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  course_id TEXT NOT NULL,
  start_at TEXT NOT NULL,
  duration_seconds INTEGER NOT NULL,
  target_seconds INTEGER NOT NULL,
  is_partial INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_start_at ON sessions(start_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Rebuild(ctx context.Context, sessions []domain.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reindex: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset session index: %w", err)
	}
	const stmt = `
INSERT INTO sessions (id, course_id, start_at, duration_seconds, target_seconds, is_partial)
VALUES (?, ?, ?, ?, ?, ?);
`
	for _, session := range sessions {
		if _, err := tx.ExecContext(ctx, stmt,
			session.ID,
			session.CourseID,
			session.StartAt.Format(timeLayout),
			session.DurationSeconds,
			session.TargetSeconds,
			boolToInt(session.IsPartial),
		); err != nil {
			return fmt.Errorf("index session %s: %w", session.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reindex: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Recent(ctx context.Context, cutoff time.Time) ([]domain.Session, error) {
	const query = `
SELECT id, course_id, start_at, duration_seconds, target_seconds, is_partial
FROM sessions
WHERE start_at > ?
ORDER BY start_at DESC;
`
	rows, err := s.db.QueryContext(ctx, query, cutoff.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Session{}
	for rows.Next() {
		var session domain.Session
		var startAt string
		var partial int
		if err := rows.Scan(&session.ID, &session.CourseID, &startAt, &session.DurationSeconds, &session.TargetSeconds, &partial); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		parsed, err := time.Parse(timeLayout, startAt)
		if err != nil {
			return nil, fmt.Errorf("parse start_at: %w", err)
		}
		session.StartAt = parsed
		session.IsPartial = partial != 0
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
