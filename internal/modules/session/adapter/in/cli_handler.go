package in

import (
	"context"

	sessiondto "umusanzu/internal/modules/session/dto"
	sessionin "umusanzu/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, mode string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, mode)
}

func (h CLIHandler) Submit(mode, response string) (sessiondto.StepOutput, error) {
	return h.usecase.Submit(mode, response)
}

func (h CLIHandler) SubmitPair(mode, kirundi, french string) error {
	return h.usecase.SubmitPair(mode, kirundi, french)
}

func (h CLIHandler) Skip(mode string) (sessiondto.StepOutput, error) {
	return h.usecase.Skip(mode)
}

func (h CLIHandler) Commit(ctx context.Context, mode string) (sessiondto.CommitOutput, error) {
	return h.usecase.Commit(ctx, mode)
}

func (h CLIHandler) Reset(mode string) {
	h.usecase.Reset(mode)
}
