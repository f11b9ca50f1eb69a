package out

import (
	"context"
	"encoding/json"
	"fmt"

	"focusdeck/internal/modules/settings/domain"
	settingsout "focusdeck/internal/modules/settings/port/out"
	"focusdeck/internal/platform/kvstore"
)

// KVSettingsStore keeps the settings and user singletons each as a
// one-element collection blob, matching the store's get-all/set-all
// contract.
type KVSettingsStore struct {
	store *kvstore.Store
}

func NewKVSettingsStore(store *kvstore.Store) settingsout.SettingsStore {
	return &KVSettingsStore{store: store}
}

func (s *KVSettingsStore) Load(_ context.Context) (domain.Settings, bool, error) {
	blob, err := s.store.ReadCollection(kvstore.KeySettings)
	if err != nil {
		return domain.Settings{}, false, err
	}
	if blob == nil {
		return domain.Settings{}, false, nil
	}
	var records []domain.Settings
	if err := json.Unmarshal(blob, &records); err != nil || len(records) == 0 {
		// Corrupt blob degrades to "never written".
		return domain.Settings{}, false, nil
	}
	return records[0], true, nil
}

func (s *KVSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	blob, err := json.MarshalIndent([]domain.Settings{settings}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.store.WriteCollection(kvstore.KeySettings, blob)
}

func (s *KVSettingsStore) LoadProfile(_ context.Context) (domain.Profile, bool, error) {
	blob, err := s.store.ReadCollection(kvstore.KeyUser)
	if err != nil {
		return domain.Profile{}, false, err
	}
	if blob == nil {
		return domain.Profile{}, false, nil
	}
	var records []domain.Profile
	if err := json.Unmarshal(blob, &records); err != nil || len(records) == 0 {
		return domain.Profile{}, false, nil
	}
	return records[0], true, nil
}

func (s *KVSettingsStore) SaveProfile(_ context.Context, profile domain.Profile) error {
	blob, err := json.MarshalIndent([]domain.Profile{profile}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.store.WriteCollection(kvstore.KeyUser, blob)
}
