package service

import (
	"context"

	"focusdeck/internal/modules/course/domain"
	courseout "focusdeck/internal/modules/course/port/out"
	"focusdeck/internal/platform/clock"
	apperrors "focusdeck/internal/platform/errors"
	"focusdeck/internal/platform/id"
)

type CourseService struct {
	clock clock.Clock
	idGen id.Generator
	store courseout.CourseStore
}

func NewCourseService(clock clock.Clock, idGen id.Generator, store courseout.CourseStore) *CourseService {
	return &CourseService{clock: clock, idGen: idGen, store: store}
}

func (s *CourseService) Create(ctx context.Context, name, color string) (domain.Course, error) {
	name, err := domain.ValidateName(name)
	if err != nil {
		return domain.Course{}, err
	}
	courses, err := s.store.List(ctx)
	if err != nil {
		return domain.Course{}, err
	}
	course := domain.Course{
		ID:        s.idGen.New(),
		Name:      name,
		Color:     color,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Replace(ctx, append(courses, course)); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id string, apply func(*domain.Course) error) (domain.Course, error) {
	courses, err := s.store.List(ctx)
	if err != nil {
		return domain.Course{}, err
	}
	for idx := range courses {
		if courses[idx].ID != id {
			continue
		}
		if err := apply(&courses[idx]); err != nil {
			return domain.Course{}, err
		}
		if err := s.store.Replace(ctx, courses); err != nil {
			return domain.Course{}, err
		}
		return courses[idx], nil
	}
	return domain.Course{}, apperrors.ErrCourseNotFound
}

// Remove deletes the course record; the interactor is responsible for
// cascading into the session collection.
func (s *CourseService) Remove(ctx context.Context, id string) (domain.Course, error) {
	courses, err := s.store.List(ctx)
	if err != nil {
		return domain.Course{}, err
	}
	for idx, course := range courses {
		if course.ID != id {
			continue
		}
		remaining := append(courses[:idx:idx], courses[idx+1:]...)
		if err := s.store.Replace(ctx, remaining); err != nil {
			return domain.Course{}, err
		}
		return course, nil
	}
	return domain.Course{}, apperrors.ErrCourseNotFound
}

func (s *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	courses, err := s.store.List(ctx)
	if err != nil {
		return domain.Course{}, err
	}
	for _, course := range courses {
		if course.ID == id {
			return course, nil
		}
	}
	return domain.Course{}, apperrors.ErrCourseNotFound
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.store.List(ctx)
}
