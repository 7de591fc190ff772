package in

import (
	"context"

	"umusanzu/internal/modules/export/dto"
	exportin "umusanzu/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (dto.Stats, error) {
	return h.usecase.Stats(ctx)
}
