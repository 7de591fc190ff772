package usecase

import (
	"context"

	"umusanzu/internal/modules/share/dto"
	sharein "umusanzu/internal/modules/share/port/in"
	"umusanzu/internal/modules/share/service"
)

type Interactor struct {
	svc *service.ShareService
}

func NewInteractor(svc *service.ShareService) sharein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Share(ctx context.Context, input dto.ShareInput) (dto.ShareOutput, error) {
	return i.svc.Share(ctx, input)
}

func (i *Interactor) Announce(ctx context.Context, input dto.AnnounceInput) error {
	return i.svc.Announce(ctx, input)
}
