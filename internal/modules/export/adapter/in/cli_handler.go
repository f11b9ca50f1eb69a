package in

import (
	"context"

	exportdto "focusdeck/internal/modules/export/dto"
	exportin "focusdeck/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, outPath string) (exportdto.ReportOutput, error) {
	return h.usecase.Report(ctx, exportdto.ReportInput{OutPath: outPath})
}

func (h CLIHandler) CSV(ctx context.Context, outPath string) (exportdto.CSVOutput, error) {
	return h.usecase.CSV(ctx, exportdto.CSVInput{OutPath: outPath})
}
