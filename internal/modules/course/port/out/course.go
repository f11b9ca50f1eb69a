package out

import (
	"context"

	"focusdeck/internal/modules/course/domain"
)

// CourseStore rewrites the courses collection wholesale; there are no
// partial-record updates.
type CourseStore interface {
	List(ctx context.Context) ([]domain.Course, error)
	Replace(ctx context.Context, courses []domain.Course) error
}
