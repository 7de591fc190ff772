package out

import (
	"context"

	ledgerdomain "umusanzu/internal/modules/ledger/domain"
	"umusanzu/internal/modules/session/domain"
)

// BuiltQueue is a prepared work queue plus the flag telling whether it came
// from the offline fallback set instead of the live dataset.
type BuiltQueue struct {
	Items        []string
	UsedFallback bool
}

// QueueSource prepares work queues and the reverse-mode duplicate snapshot.
type QueueSource interface {
	TranslationQueue(ctx context.Context) (BuiltQueue, error)
	ReverseQueue(ctx context.Context) (BuiltQueue, error)
	KnownKirundi(ctx context.Context) map[string]struct{}
}

// CommitRequest carries one finished batch to the export pipeline.
type CommitRequest struct {
	FilenamePrefix string
	Contributions  []domain.Contribution
	Category       ledgerdomain.Category
	LedgerTexts    []string
}

type CommitResult struct {
	Path  string
	Count int
}

// Committer persists a batch and records its ledger entries.
type Committer interface {
	Commit(ctx context.Context, req CommitRequest) (CommitResult, error)
}
