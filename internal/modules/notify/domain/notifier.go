package domain

import "errors"

var (
	ErrNotifierTimeout  = errors.New("notifier plugin timed out")
	ErrNotifierNotFound = errors.New("notifier not found")
)

// Manifest describes one configured notifier plugin binary.
type Manifest struct {
	Name    string `json:"name"`
	Binary  string `json:"binary"`
	Enabled bool   `json:"enabled"`
}

type Metadata struct {
	Name    string
	Version string
}

// Event is the payload delivered to notifier plugins after a session
// record is persisted.
type Event struct {
	Kind            string
	CourseID        string
	CourseName      string
	DurationSeconds int
	TargetSeconds   int
}

type DoctorResult struct {
	Name            string
	BinaryReachable bool
	HandshakeOK     bool
	Error           string
}
