package usecase

import (
	"context"

	"focusdeck/internal/modules/course/domain"
	coursedto "focusdeck/internal/modules/course/dto"
	coursein "focusdeck/internal/modules/course/port/in"
	"focusdeck/internal/modules/course/service"
	sessionin "focusdeck/internal/modules/session/port/in"
	"focusdeck/internal/platform/tx"
)

type Interactor struct {
	svc      *service.CourseService
	sessions sessionin.Usecase
	tx       tx.Manager
}

func NewInteractor(svc *service.CourseService, sessions sessionin.Usecase, txm tx.Manager) coursein.Usecase {
	return &Interactor{svc: svc, sessions: sessions, tx: txm}
}

func (i *Interactor) Create(ctx context.Context, input coursedto.CreateInput) (coursedto.CourseOutput, error) {
	course, err := i.svc.Create(ctx, input.Name, input.Color)
	if err != nil {
		return coursedto.CourseOutput{}, err
	}
	return courseOutput(course), nil
}

func (i *Interactor) Rename(ctx context.Context, id, name string) (coursedto.CourseOutput, error) {
	course, err := i.svc.Update(ctx, id, func(c *domain.Course) error {
		valid, err := domain.ValidateName(name)
		if err != nil {
			return err
		}
		c.Name = valid
		return nil
	})
	if err != nil {
		return coursedto.CourseOutput{}, err
	}
	return courseOutput(course), nil
}

func (i *Interactor) Recolor(ctx context.Context, id, color string) (coursedto.CourseOutput, error) {
	course, err := i.svc.Update(ctx, id, func(c *domain.Course) error {
		c.Color = color
		return nil
	})
	if err != nil {
		return coursedto.CourseOutput{}, err
	}
	return courseOutput(course), nil
}

// Delete removes the course and every session referencing it. The
// session purge runs first so a failure leaves the course (and the
// referential invariant) intact.
func (i *Interactor) Delete(ctx context.Context, id string) (coursedto.DeleteOutput, error) {
	course, err := i.svc.Get(ctx, id)
	if err != nil {
		return coursedto.DeleteOutput{}, err
	}
	out := coursedto.DeleteOutput{ID: course.ID, Name: course.Name}
	err = i.tx.Within(ctx, func(ctx context.Context) error {
		removed, err := i.sessions.PurgeByCourse(ctx, id)
		if err != nil {
			return err
		}
		out.SessionsRemoved = removed
		_, err = i.svc.Remove(ctx, id)
		return err
	})
	if err != nil {
		return coursedto.DeleteOutput{}, err
	}
	return out, nil
}

func (i *Interactor) List(ctx context.Context) ([]coursedto.CourseOutput, error) {
	courses, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]coursedto.CourseOutput, 0, len(courses))
	for _, course := range courses {
		out = append(out, courseOutput(course))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (coursedto.CourseOutput, error) {
	course, err := i.svc.Get(ctx, id)
	if err != nil {
		return coursedto.CourseOutput{}, err
	}
	return courseOutput(course), nil
}

func courseOutput(course domain.Course) coursedto.CourseOutput {
	return coursedto.CourseOutput{
		ID:        course.ID,
		Name:      course.Name,
		Color:     course.Color,
		CreatedAt: course.CreatedAt,
	}
}
