package usecase

import (
	"context"

	"umusanzu/internal/modules/export/dto"
	exportin "umusanzu/internal/modules/export/port/in"
	"umusanzu/internal/modules/export/service"
)

type Interactor struct {
	svc *service.Service
}

func NewInteractor(svc *service.Service) exportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Commit(ctx context.Context, input dto.CommitInput) (dto.CommitOutput, error) {
	return i.svc.Commit(ctx, input)
}

func (i *Interactor) Stats(ctx context.Context) (dto.Stats, error) {
	return i.svc.Stats(ctx)
}
