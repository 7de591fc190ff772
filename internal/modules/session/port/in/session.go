package in

import (
	"context"

	"umusanzu/internal/modules/session/domain"
	"umusanzu/internal/modules/session/dto"
)

// Usecase drives the contribution workflows. Mode is one of the dto mode
// names; one session exists per mode, and starting a mode whose previous
// session finished resets it first.
type Usecase interface {
	Start(ctx context.Context, mode string) (dto.StartOutput, error)
	Submit(mode, response string) (dto.StepOutput, error)
	SubmitPair(mode, kirundi, french string) error
	Skip(mode string) (dto.StepOutput, error)
	Commit(ctx context.Context, mode string) (dto.CommitOutput, error)
	Reset(mode string)
	Collected(mode string) []domain.Contribution
}
