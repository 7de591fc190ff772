package out

import (
	"context"
	"time"

	"umusanzu/internal/modules/export/domain"
	"umusanzu/internal/modules/export/dto"
)

// DownloadSink persists a rendered export document and returns its full path.
type DownloadSink interface {
	Save(ctx context.Context, filename, content string) (string, error)
}

// ArchiveBatch is the record of one committed export file.
type ArchiveBatch struct {
	ID         string
	File       string
	Mode       string
	ExportedAt time.Time
	Pairs      []domain.Pair
}

// Archive keeps a queryable history of committed batches. It is a projection
// of the export files and can be rebuilt from them.
type Archive interface {
	Append(ctx context.Context, batch ArchiveBatch) error
	Stats(ctx context.Context) (dto.Stats, error)
}
