package service

import (
	"context"
	"fmt"
	"log"

	"umusanzu/internal/modules/export/domain"
	"umusanzu/internal/modules/export/dto"
	exportout "umusanzu/internal/modules/export/port/out"
	ledgerdomain "umusanzu/internal/modules/ledger/domain"
	"umusanzu/internal/platform/clock"
	apperrors "umusanzu/internal/platform/errors"
	"umusanzu/internal/platform/id"
)

// SubmissionRecorder marks prompted texts as handled so future queues
// exclude them.
type SubmissionRecorder interface {
	Record(ctx context.Context, category ledgerdomain.Category, items []string) (map[string]struct{}, error)
}

// Service turns finished batches into export files, ledger entries, and
// archive rows.
type Service struct {
	sink    exportout.DownloadSink
	archive exportout.Archive
	ledger  SubmissionRecorder
	clock   clock.Clock
	ids     id.Generator
}

func NewService(sink exportout.DownloadSink, archive exportout.Archive, ledger SubmissionRecorder, clk clock.Clock, ids id.Generator) *Service {
	return &Service{sink: sink, archive: archive, ledger: ledger, clock: clk, ids: ids}
}

// Commit writes the batch to the download sink, records its prompted texts
// in the submission ledger, and appends it to the archive. An empty batch is
// rejected before anything is touched.
func (s *Service) Commit(ctx context.Context, in dto.CommitInput) (dto.CommitOutput, error) {
	if len(in.Pairs) == 0 {
		return dto.CommitOutput{}, apperrors.ErrNothingToExport
	}

	now := s.clock.Now()
	filename := fmt.Sprintf("%s_%s.csv", in.FilenamePrefix, now.Format("2006-01-02_15-04-05"))
	content := domain.ToTable(in.Pairs)

	path, err := s.sink.Save(ctx, filename, content)
	if err != nil {
		return dto.CommitOutput{}, fmt.Errorf("save export: %w", err)
	}

	if len(in.LedgerTexts) > 0 {
		if _, err := s.ledger.Record(ctx, in.Category, in.LedgerTexts); err != nil {
			return dto.CommitOutput{}, fmt.Errorf("record submissions: %w", err)
		}
	}

	// The archive is rebuildable from the export files, so a failure here
	// does not undo the commit.
	if err := s.archive.Append(ctx, exportout.ArchiveBatch{
		ID:         s.ids.New(),
		File:       filename,
		Mode:       in.FilenamePrefix,
		ExportedAt: now,
		Pairs:      in.Pairs,
	}); err != nil {
		log.Printf("export: archive append failed: %v", err)
	}

	return dto.CommitOutput{Path: path, Count: len(in.Pairs)}, nil
}

// Stats reports archive totals.
func (s *Service) Stats(ctx context.Context) (dto.Stats, error) {
	return s.archive.Stats(ctx)
}
