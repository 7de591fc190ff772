package in

import (
	"context"

	sharedto "umusanzu/internal/modules/share/dto"
	sharein "umusanzu/internal/modules/share/port/in"
)

type CLIHandler struct {
	usecase sharein.Usecase
}

func NewCLIHandler(usecase sharein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]sharedto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]sharedto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Share(ctx context.Context, input sharedto.ShareInput) (sharedto.ShareOutput, error) {
	return h.usecase.Share(ctx, input)
}

func (h CLIHandler) Announce(ctx context.Context, pluginName, message string) error {
	return h.usecase.Announce(ctx, sharedto.AnnounceInput{PluginName: pluginName, Message: message})
}
