package in

import (
	"context"

	"umusanzu/internal/modules/merge/dto"
)

// Usecase folds collected submission files into the master dataset.
type Usecase interface {
	Run(ctx context.Context) (dto.Report, error)
}
