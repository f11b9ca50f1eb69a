package in

import (
	"context"

	coursedto "focusdeck/internal/modules/course/dto"
	coursein "focusdeck/internal/modules/course/port/in"
)

type CLIHandler struct {
	usecase coursein.Usecase
}

func NewCLIHandler(usecase coursein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, name, color string) (coursedto.CourseOutput, error) {
	return h.usecase.Create(ctx, coursedto.CreateInput{Name: name, Color: color})
}

func (h CLIHandler) Rename(ctx context.Context, id, name string) (coursedto.CourseOutput, error) {
	return h.usecase.Rename(ctx, id, name)
}

func (h CLIHandler) Recolor(ctx context.Context, id, color string) (coursedto.CourseOutput, error) {
	return h.usecase.Recolor(ctx, id, color)
}

func (h CLIHandler) Delete(ctx context.Context, id string) (coursedto.DeleteOutput, error) {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]coursedto.CourseOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (coursedto.CourseOutput, error) {
	return h.usecase.Get(ctx, id)
}
