package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"umusanzu/internal/modules/merge/domain"
	"umusanzu/internal/modules/merge/dto"
	mergeout "umusanzu/internal/modules/merge/port/out"
)

// Service folds exported submission files back into the master dataset.
type Service struct {
	store mergeout.SubmissionStore
}

func NewService(store mergeout.SubmissionStore) *Service {
	return &Service{store: store}
}

// Run merges every recognizable submission file, moves it to the processed
// area, and rewrites the master once at the end. Files with a bad header are
// reported and moved aside too, so a broken file never blocks the next run.
func (s *Service) Run(ctx context.Context) (dto.Report, error) {
	rawMaster, err := s.store.ReadMaster(ctx)
	if err != nil {
		return dto.Report{}, fmt.Errorf("read master: %w", err)
	}
	master, err := domain.LoadMaster(rawMaster)
	if err != nil {
		return dto.Report{}, fmt.Errorf("load master: %w", err)
	}

	names, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return dto.Report{}, fmt.Errorf("list submissions: %w", err)
	}
	sort.Strings(names)

	var report dto.Report
	for _, name := range names {
		kind, ok := domain.KindForFile(name)
		if !ok {
			continue
		}
		raw, err := s.store.ReadSubmission(ctx, name)
		if err != nil {
			return report, fmt.Errorf("read submission %s: %w", name, err)
		}
		pairs, err := domain.ParseBatch(raw)
		if err != nil {
			log.Printf("merge: rejecting %s: %v", name, err)
			report.Rejected = append(report.Rejected, name)
			if err := s.store.MarkProcessed(ctx, name); err != nil {
				return report, fmt.Errorf("mark processed %s: %w", name, err)
			}
			continue
		}

		for _, pair := range pairs {
			var applied bool
			if kind == domain.KindFill {
				applied = master.FillTranslation(pair.Kirundi, pair.French)
				if applied {
					report.Filled++
				}
			} else {
				applied = master.AppendPair(pair.Kirundi, pair.French)
				if applied {
					report.Appended++
				}
			}
			if !applied {
				report.Skipped++
			}
		}

		if err := s.store.MarkProcessed(ctx, name); err != nil {
			return report, fmt.Errorf("mark processed %s: %w", name, err)
		}
		report.Processed = append(report.Processed, name)
	}

	if master.Dirty() {
		if err := s.store.WriteMaster(ctx, master.Serialize()); err != nil {
			return report, fmt.Errorf("write master: %w", err)
		}
	}
	return report, nil
}
