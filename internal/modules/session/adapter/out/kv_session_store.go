package out

import (
	"context"
	"encoding/json"
	"fmt"

	"focusdeck/internal/modules/session/domain"
	sessionout "focusdeck/internal/modules/session/port/out"
	"focusdeck/internal/platform/kvstore"
)

// KVSessionStore keeps the whole session history as one JSON blob
// under the sessions collection key. Records are append-only; the only
// removal path is the course delete cascade.
type KVSessionStore struct {
	store *kvstore.Store
}

func NewKVSessionStore(store *kvstore.Store) *KVSessionStore {
	return &KVSessionStore{store: store}
}

var _ sessionout.SessionStore = (*KVSessionStore)(nil)

func (s *KVSessionStore) List(_ context.Context) ([]domain.Session, error) {
	blob, err := s.store.ReadCollection(kvstore.KeySessions)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []domain.Session{}, nil
	}
	var sessions []domain.Session
	if err := json.Unmarshal(blob, &sessions); err != nil {
		// Corrupt blob degrades to an empty collection.
		return []domain.Session{}, nil
	}
	return sessions, nil
}

func (s *KVSessionStore) Append(ctx context.Context, session domain.Session) error {
	sessions, err := s.List(ctx)
	if err != nil {
		return err
	}
	sessions = append(sessions, session)
	return s.write(sessions)
}

func (s *KVSessionStore) RemoveByCourse(ctx context.Context, courseID string) (int, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	kept := sessions[:0]
	removed := 0
	for _, session := range sessions {
		if session.CourseID == courseID {
			removed++
			continue
		}
		kept = append(kept, session)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.write(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *KVSessionStore) write(sessions []domain.Session) error {
	blob, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	return s.store.WriteCollection(kvstore.KeySessions, blob)
}
