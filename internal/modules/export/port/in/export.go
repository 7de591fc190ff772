package in

import (
	"context"

	"umusanzu/internal/modules/export/dto"
)

// Usecase persists contribution batches and reports archive totals.
type Usecase interface {
	Commit(ctx context.Context, input dto.CommitInput) (dto.CommitOutput, error)
	Stats(ctx context.Context) (dto.Stats, error)
}
