package out

import "context"

// SubmissionStore exposes the filesystem surfaces a merge run touches: the
// incoming submission files, the processed graveyard, and the master dataset.
type SubmissionStore interface {
	ListSubmissions(ctx context.Context) ([]string, error)
	ReadSubmission(ctx context.Context, name string) (string, error)
	MarkProcessed(ctx context.Context, name string) error
	ReadMaster(ctx context.Context) (string, error)
	WriteMaster(ctx context.Context, content string) error
}
