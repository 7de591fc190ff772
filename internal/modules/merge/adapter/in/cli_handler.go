package in

import (
	"context"

	"umusanzu/internal/modules/merge/dto"
	mergein "umusanzu/internal/modules/merge/port/in"
)

type CLIHandler struct {
	usecase mergein.Usecase
}

func NewCLIHandler(usecase mergein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context) (dto.Report, error) {
	return h.usecase.Run(ctx)
}
