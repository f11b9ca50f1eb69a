package out

import (
	"context"
	"encoding/json"
	"fmt"

	"focusdeck/internal/modules/course/domain"
	courseout "focusdeck/internal/modules/course/port/out"
	"focusdeck/internal/platform/kvstore"
)

type KVCourseStore struct {
	store *kvstore.Store
}

func NewKVCourseStore(store *kvstore.Store) courseout.CourseStore {
	return &KVCourseStore{store: store}
}

func (s *KVCourseStore) List(_ context.Context) ([]domain.Course, error) {
	blob, err := s.store.ReadCollection(kvstore.KeyCourses)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []domain.Course{}, nil
	}
	var courses []domain.Course
	if err := json.Unmarshal(blob, &courses); err != nil {
		// Corrupt blob degrades to an empty collection.
		return []domain.Course{}, nil
	}
	return courses, nil
}

func (s *KVCourseStore) Replace(_ context.Context, courses []domain.Course) error {
	blob, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal courses: %w", err)
	}
	return s.store.WriteCollection(kvstore.KeyCourses, blob)
}
