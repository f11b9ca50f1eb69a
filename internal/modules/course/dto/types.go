package dto

import "time"

type CreateInput struct {
	Name  string
	Color string
}

type CourseOutput struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

type DeleteOutput struct {
	ID              string
	Name            string
	SessionsRemoved int
}
