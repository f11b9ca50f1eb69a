package in

import (
	"context"

	"focusdeck/internal/modules/course/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.CourseOutput, error)
	Rename(ctx context.Context, id, name string) (dto.CourseOutput, error)
	Recolor(ctx context.Context, id, color string) (dto.CourseOutput, error)
	// Delete removes the course and cascades into the session
	// collection: every session referencing it is removed too.
	Delete(ctx context.Context, id string) (dto.DeleteOutput, error)
	List(ctx context.Context) ([]dto.CourseOutput, error)
	Get(ctx context.Context, id string) (dto.CourseOutput, error)
}
