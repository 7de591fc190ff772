package usecase

import (
	"context"
	"sync"

	ledgerdomain "umusanzu/internal/modules/ledger/domain"
	"umusanzu/internal/modules/session/domain"
	"umusanzu/internal/modules/session/dto"
	portin "umusanzu/internal/modules/session/port/in"
	portout "umusanzu/internal/modules/session/port/out"
	apperrors "umusanzu/internal/platform/errors"
)

// Interactor owns one Session per mode and wires them to the queue source
// and the export committer.
type Interactor struct {
	mu        sync.Mutex
	sessions  map[domain.Mode]*domain.Session
	queues    portout.QueueSource
	committer portout.Committer
	batchSize int
}

func NewInteractor(queues portout.QueueSource, committer portout.Committer, batchSize int) portin.Usecase {
	return &Interactor{
		sessions:  make(map[domain.Mode]*domain.Session),
		queues:    queues,
		committer: committer,
		batchSize: batchSize,
	}
}

func (i *Interactor) session(mode domain.Mode) *domain.Session {
	s, ok := i.sessions[mode]
	if !ok {
		s = domain.NewSession(mode, i.batchSize)
		i.sessions[mode] = s
	}
	return s
}

func (i *Interactor) Start(ctx context.Context, mode string) (dto.StartOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	m := domain.Mode(mode)
	s := i.session(m)
	if s.State() == domain.StateCompleted || s.State() == domain.StateAborted {
		s.Reset()
	}
	if err := s.Begin(); err != nil {
		return dto.StartOutput{}, err
	}

	if m == domain.ModeAuthor {
		if err := s.Activate(nil, nil); err != nil {
			return dto.StartOutput{}, err
		}
		return dto.StartOutput{}, nil
	}

	var (
		queue portout.BuiltQueue
		known map[string]struct{}
		err   error
	)
	switch m {
	case domain.ModeTranslate:
		queue, err = i.queues.TranslationQueue(ctx)
	case domain.ModeReverse:
		queue, err = i.queues.ReverseQueue(ctx)
		if err == nil {
			known = i.queues.KnownKirundi(ctx)
		}
	}
	if err != nil {
		s.Abort()
		return dto.StartOutput{}, err
	}
	if err := s.Activate(queue.Items, known); err != nil {
		return dto.StartOutput{}, err
	}

	prompt, err := s.Current()
	if err != nil {
		return dto.StartOutput{}, err
	}
	pos, total := s.Progress()
	return dto.StartOutput{
		Prompt:       prompt,
		Position:     pos + 1,
		Total:        total,
		UsedFallback: queue.UsedFallback,
	}, nil
}

func (i *Interactor) Submit(mode, response string) (dto.StepOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	s := i.session(domain.Mode(mode))
	if err := s.Submit(response); err != nil {
		return dto.StepOutput{}, err
	}
	return i.step(s), nil
}

func (i *Interactor) SubmitPair(mode, kirundi, french string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.session(domain.Mode(mode)).SubmitPair(kirundi, french)
}

func (i *Interactor) Skip(mode string) (dto.StepOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	s := i.session(domain.Mode(mode))
	if err := s.Skip(); err != nil {
		return dto.StepOutput{}, err
	}
	return i.step(s), nil
}

func (i *Interactor) step(s *domain.Session) dto.StepOutput {
	pos, total := s.Progress()
	out := dto.StepOutput{Position: pos + 1, Total: total}
	if s.State() == domain.StateCompleted {
		out.Done = true
		return out
	}
	out.Prompt, _ = s.Current()
	return out
}

// Commit exports everything collected so far and resets the session. A
// session with nothing collected is left untouched.
func (i *Interactor) Commit(ctx context.Context, mode string) (dto.CommitOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	m := domain.Mode(mode)
	s := i.session(m)
	contributions := s.Contributions()
	if len(contributions) == 0 {
		return dto.CommitOutput{}, apperrors.ErrNothingToExport
	}

	category := ledgerdomain.CategoryKirundi
	if m == domain.ModeReverse {
		category = ledgerdomain.CategoryFrench
	}
	result, err := i.committer.Commit(ctx, portout.CommitRequest{
		FilenamePrefix: m.FilenamePrefix(),
		Contributions:  contributions,
		Category:       category,
		LedgerTexts:    s.LedgerTexts(),
	})
	if err != nil {
		return dto.CommitOutput{}, err
	}
	s.Reset()
	return dto.CommitOutput{Path: result.Path, Count: result.Count}, nil
}

func (i *Interactor) Reset(mode string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.session(domain.Mode(mode)).Reset()
}

func (i *Interactor) Collected(mode string) []domain.Contribution {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.session(domain.Mode(mode)).Contributions()
}
