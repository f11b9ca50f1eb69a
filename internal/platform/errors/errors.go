package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCourseNotFound   = errors.New("course not found")
	ErrInvalidDuration  = errors.New("target duration must be between 1 and 480 minutes")
	ErrNoActiveRun      = errors.New("no active timer run")
	ErrRunAlreadyActive = errors.New("a timer run is already active")
	ErrRunFinished      = errors.New("timer run already finished")
)
