package dto

import (
	ledgerdomain "umusanzu/internal/modules/ledger/domain"
	"umusanzu/internal/modules/export/domain"
)

// CommitInput is one finished batch ready to be written out.
type CommitInput struct {
	FilenamePrefix string
	Pairs          []domain.Pair
	Category       ledgerdomain.Category
	LedgerTexts    []string
}

type CommitOutput struct {
	Path  string
	Count int
}

// Stats summarizes everything archived so far.
type Stats struct {
	Total  int
	ByMode map[string]int
}
