package dto

type ReportInput struct {
	OutPath string
}

type ReportOutput struct {
	Path     string
	Sessions int
}

type CSVInput struct {
	OutPath string
}

type CSVOutput struct {
	Path string
	Rows int
}
