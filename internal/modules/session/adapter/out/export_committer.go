package out

import (
	"context"

	exportdomain "umusanzu/internal/modules/export/domain"
	exportdto "umusanzu/internal/modules/export/dto"
	exportin "umusanzu/internal/modules/export/port/in"
	portout "umusanzu/internal/modules/session/port/out"
)

// ExportCommitter hands finished batches to the export pipeline.
type ExportCommitter struct {
	exports exportin.Usecase
}

func NewExportCommitter(exports exportin.Usecase) *ExportCommitter {
	return &ExportCommitter{exports: exports}
}

func (a *ExportCommitter) Commit(ctx context.Context, req portout.CommitRequest) (portout.CommitResult, error) {
	pairs := make([]exportdomain.Pair, len(req.Contributions))
	for i, c := range req.Contributions {
		pairs[i] = exportdomain.Pair{Kirundi: c.Kirundi, French: c.French}
	}
	out, err := a.exports.Commit(ctx, exportdto.CommitInput{
		FilenamePrefix: req.FilenamePrefix,
		Pairs:          pairs,
		Category:       req.Category,
		LedgerTexts:    req.LedgerTexts,
	})
	if err != nil {
		return portout.CommitResult{}, err
	}
	return portout.CommitResult{Path: out.Path, Count: out.Count}, nil
}
