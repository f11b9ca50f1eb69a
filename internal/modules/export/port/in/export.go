package in

import (
	"context"

	"focusdeck/internal/modules/export/dto"
)

type Usecase interface {
	// Report writes a markdown study report with YAML frontmatter.
	// An empty OutPath picks a dated filename in the working directory.
	Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error)
	// CSV writes every recorded session as one CSV row.
	CSV(ctx context.Context, input dto.CSVInput) (dto.CSVOutput, error)
}
