package domain

// Outcome kinds delivered to the notification collaborator.
const (
	OutcomeCompleted  = "completed"
	OutcomeTerminated = "terminated"
)

// Outcome is the fire-and-forget event published after a session
// record is persisted. Delivery never influences the record itself.
type Outcome struct {
	Kind            string
	CourseID        string
	CourseName      string
	DurationSeconds int
	TargetSeconds   int
}
