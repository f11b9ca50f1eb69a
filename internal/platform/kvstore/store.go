package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection keys. Each key maps to a single JSON blob holding the
// whole collection; there are no partial-record updates.
const (
	KeyCourses  = "courses"
	KeySessions = "sessions"
	KeySettings = "settings"
	KeyUser     = "user"
)

// Event is published to subscribers after every successful write.
type Event struct {
	Key string
}

// Store is a file-backed key-value store with whole-collection
// read/write semantics. Writes replace the blob atomically and notify
// subscribers, so consumers update on change instead of polling.
type Store struct {
	dir string

	writeMu sync.Mutex

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

func New(dataPath string) *Store {
	return &Store{
		dir:  filepath.Join(dataPath, "collections"),
		subs: map[chan Event]struct{}{},
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// ReadCollection returns the stored blob for key, or nil when the
// collection has never been written.
func (s *Store) ReadCollection(key string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}
	return payload, nil
}

// WriteCollection replaces the blob for key. The write goes through a
// temp file and rename so readers never observe a partial blob.
func (s *Store) WriteCollection(key string, blob []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create collections dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace collection %s: %w", key, err)
	}
	s.publish(Event{Key: key})
	return nil
}

// Subscribe registers a change listener. The channel is buffered; a
// slow consumer drops events rather than blocking writers.
func (s *Store) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch
}

func (s *Store) Unsubscribe(ch <-chan Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for sub := range s.subs {
		if sub == ch {
			delete(s.subs, sub)
			close(sub)
			return
		}
	}
}

func (s *Store) publish(event Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for sub := range s.subs {
		select {
		case sub <- event:
		default:
		}
	}
}
