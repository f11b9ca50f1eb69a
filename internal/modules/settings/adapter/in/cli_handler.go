package in

import (
	"context"

	settingsdto "focusdeck/internal/modules/settings/dto"
	settingsin "focusdeck/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Profile(ctx context.Context) (settingsdto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}

func (h CLIHandler) SetProfileName(ctx context.Context, name string) (settingsdto.ProfileOutput, error) {
	return h.usecase.SetProfileName(ctx, name)
}
