package dto

type DispatchInput struct {
	Kind            string
	CourseID        string
	CourseName      string
	DurationSeconds int
	TargetSeconds   int
}

type NotifierOutput struct {
	Name    string
	Binary  string
	Enabled bool
}

type DoctorOutput struct {
	Name            string
	BinaryReachable bool
	HandshakeOK     bool
	Error           string
}
