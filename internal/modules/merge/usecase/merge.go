package usecase

import (
	"context"

	"umusanzu/internal/modules/merge/dto"
	mergein "umusanzu/internal/modules/merge/port/in"
	"umusanzu/internal/modules/merge/service"
)

type Interactor struct {
	svc *service.Service
}

func NewInteractor(svc *service.Service) mergein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Run(ctx context.Context) (dto.Report, error) {
	return i.svc.Run(ctx)
}
