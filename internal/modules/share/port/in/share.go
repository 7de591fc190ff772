package in

import (
	"context"

	"umusanzu/internal/modules/share/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Share(ctx context.Context, input dto.ShareInput) (dto.ShareOutput, error)
	Announce(ctx context.Context, input dto.AnnounceInput) error
}
