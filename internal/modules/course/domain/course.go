package domain

import (
	"strings"
	"time"

	apperrors "focusdeck/internal/platform/errors"
)

// Course is a named study subject. Sessions reference courses by ID;
// deleting a course cascades into the session collection so no
// orphaned sessions exist.
type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.ErrInvalidInput
	}
	return name, nil
}
