package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"umusanzu/internal/modules/dataset/domain"
	datasetout "umusanzu/internal/modules/dataset/port/out"
	ledgerdomain "umusanzu/internal/modules/ledger/domain"
	apperrors "umusanzu/internal/platform/errors"
)

// SubmissionLog is the slice of the ledger this module reads.
type SubmissionLog interface {
	Load(ctx context.Context, category ledgerdomain.Category) map[string]struct{}
}

// Queue is one session's worth of candidate work items.
type Queue struct {
	Items        []string
	UsedFallback bool
}

type QueueService struct {
	fetcher    datasetout.Fetcher
	log        SubmissionLog
	datasetURL string
	promptsURL string
	intn       func(n int) int
}

func NewQueueService(fetcher datasetout.Fetcher, submissions SubmissionLog, datasetURL, promptsURL string) *QueueService {
	return &QueueService{
		fetcher:    fetcher,
		log:        submissions,
		datasetURL: datasetURL,
		promptsURL: promptsURL,
		intn:       rand.Intn,
	}
}

// WithIntn replaces the shuffle source; tests use it for determinism.
func (s *QueueService) WithIntn(intn func(n int) int) *QueueService {
	s.intn = intn
	return s
}

// BuildQueue assembles the randomized, deduplicated queue for a direction:
// shuffle(filterSubmitted(fetch-or-fallback, ledger)). A fetch failure falls
// back to the embedded list once; if even that leaves nothing, the
// connectivity error surfaces. A successful fetch that filters down to
// nothing is ErrNoNewWork, a different condition the UI words differently.
func (s *QueueService) BuildQueue(ctx context.Context, direction domain.Direction) (Queue, error) {
	items, usedFallback, fetchErr := s.candidates(ctx, direction)

	category := ledgerdomain.CategoryKirundi
	if direction == domain.FrenchToKirundi {
		category = ledgerdomain.CategoryFrench
	}
	items = domain.FilterSubmitted(items, s.log.Load(ctx, category))

	if len(items) == 0 {
		if usedFallback {
			return Queue{}, fmt.Errorf("%w: %v", apperrors.ErrConnectivity, fetchErr)
		}
		return Queue{}, apperrors.ErrNoNewWork
	}
	domain.Shuffle(items, s.intn)
	return Queue{Items: items, UsedFallback: usedFallback}, nil
}

// Snapshot fetches the dataset once and returns every known Kirundi phrase.
// On fetch failure the snapshot is empty: reverse-mode duplicate detection
// degrades rather than blocking the session.
func (s *QueueService) Snapshot(ctx context.Context) map[string]struct{} {
	raw, err := s.fetcher.Fetch(ctx, s.datasetURL)
	if err != nil {
		log.Printf("dataset: snapshot fetch failed, duplicate check disabled: %v", err)
		return map[string]struct{}{}
	}
	return domain.KnownKirundi(raw)
}

func (s *QueueService) candidates(ctx context.Context, direction domain.Direction) ([]string, bool, error) {
	url := s.datasetURL
	if direction == domain.FrenchToKirundi {
		url = s.promptsURL
	}
	raw, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Printf("dataset: fetch failed, using embedded fallback list: %v", err)
		return domain.Fallback(direction), true, err
	}

	if direction == domain.FrenchToKirundi {
		return domain.BuildFromPromptList(raw), false, nil
	}
	items := domain.BuildFromDataset(raw)
	if items == nil {
		log.Printf("dataset: required columns not found in %s", url)
	}
	return items, false, nil
}
