package out

import (
	"context"
	"encoding/json"

	sessionout "focusdeck/internal/modules/session/port/out"
	apperrors "focusdeck/internal/platform/errors"
	"focusdeck/internal/platform/kvstore"
)

// KVCourseDirectory resolves course references straight from the
// courses collection blob. Reading the collection keeps this module
// independent of the course module's construction order.
type KVCourseDirectory struct {
	store *kvstore.Store
}

func NewKVCourseDirectory(store *kvstore.Store) sessionout.CourseDirectory {
	return &KVCourseDirectory{store: store}
}

type courseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d *KVCourseDirectory) Lookup(_ context.Context, courseID string) (string, error) {
	blob, err := d.store.ReadCollection(kvstore.KeyCourses)
	if err != nil {
		return "", err
	}
	if blob == nil {
		return "", apperrors.ErrCourseNotFound
	}
	var courses []courseRef
	if err := json.Unmarshal(blob, &courses); err != nil {
		return "", apperrors.ErrCourseNotFound
	}
	for _, course := range courses {
		if course.ID == courseID {
			return course.Name, nil
		}
	}
	return "", apperrors.ErrCourseNotFound
}
