package domain

import (
	"fmt"
	"strings"

	"umusanzu/internal/platform/tabular"
	"umusanzu/internal/platform/textnorm"
)

// Kind tells how a submission file folds into the master dataset.
type Kind int

const (
	// KindFill matches rows by Kirundi text and fills empty French cells.
	KindFill Kind = iota
	// KindAppend adds rows whose Kirundi text the master has never seen.
	KindAppend
)

// KindForFile maps an export filename to its merge behavior. Files outside
// the known families are not merge candidates.
func KindForFile(name string) (Kind, bool) {
	switch {
	case strings.HasPrefix(name, "Kirundi_To_French_"):
		return KindFill, true
	case strings.HasPrefix(name, "French_To_Kirundi_"), strings.HasPrefix(name, "New_Pairs_"):
		return KindAppend, true
	}
	return 0, false
}

// Pair is one row of a submission file.
type Pair struct {
	Kirundi string
	French  string
}

const submissionHeader = "Kirundi_Transcription,French_Translation"

// ParseBatch reads a submission file and rejects anything that does not
// carry the expected two-column header.
func ParseBatch(raw string) ([]Pair, error) {
	header, rows := tabular.ParseTable(raw)
	if len(header) != 2 || header[0] != "Kirundi_Transcription" || header[1] != "French_Translation" {
		return nil, fmt.Errorf("unexpected submission header, want %q", submissionHeader)
	}
	pairs := make([]Pair, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		pairs = append(pairs, Pair{Kirundi: row[0], French: row[1]})
	}
	return pairs, nil
}

// Master is the mutable in-memory form of the master dataset. Rows are
// indexed by normalized Kirundi text for matching.
type Master struct {
	header     []string
	rows       [][]string
	kirundiCol int
	frenchCol  int
	index      map[string]int
	dirty      bool
}

// LoadMaster parses the raw dataset and resolves its two working columns.
// Missing columns are a hard error: merging against the wrong column would
// corrupt the dataset.
func LoadMaster(raw string) (*Master, error) {
	header, rows := tabular.ParseTable(raw)
	kirundiCol := tabular.ResolveColumn(header, tabular.HasTokens("kirundi", "transcription"))
	frenchCol := tabular.ResolveColumn(header, tabular.HasTokens("french", "translation"))
	if kirundiCol < 0 || frenchCol < 0 {
		return nil, fmt.Errorf("master dataset missing kirundi or french column")
	}

	m := &Master{
		header:     header,
		rows:       rows,
		kirundiCol: kirundiCol,
		frenchCol:  frenchCol,
		index:      make(map[string]int, len(rows)),
	}
	for i, row := range rows {
		if m.kirundiCol >= len(row) {
			continue
		}
		key := textnorm.Normalize(row[m.kirundiCol])
		if key == "" {
			continue
		}
		if _, seen := m.index[key]; !seen {
			m.index[key] = i
		}
	}
	return m, nil
}

// FillTranslation writes french into the matching row's empty French cell.
// It reports false when no row matches or the cell is already filled.
func (m *Master) FillTranslation(kirundi, french string) bool {
	i, ok := m.index[textnorm.Normalize(kirundi)]
	if !ok {
		return false
	}
	row := m.rows[i]
	for len(row) <= m.frenchCol {
		row = append(row, "")
	}
	if strings.TrimSpace(row[m.frenchCol]) != "" {
		return false
	}
	row[m.frenchCol] = french
	m.rows[i] = row
	m.dirty = true
	return true
}

// AppendPair adds a brand-new row. It reports false when the master already
// holds the Kirundi text.
func (m *Master) AppendPair(kirundi, french string) bool {
	key := textnorm.Normalize(kirundi)
	if key == "" {
		return false
	}
	if _, seen := m.index[key]; seen {
		return false
	}
	row := make([]string, len(m.header))
	row[m.kirundiCol] = kirundi
	row[m.frenchCol] = french
	m.index[key] = len(m.rows)
	m.rows = append(m.rows, row)
	m.dirty = true
	return true
}

// Dirty reports whether anything changed since load.
func (m *Master) Dirty() bool { return m.dirty }

// Serialize renders the dataset back to text with every data field quoted.
func (m *Master) Serialize() string {
	var b strings.Builder
	b.WriteString(strings.Join(m.header, ","))
	b.WriteString("\n")
	for _, row := range m.rows {
		b.WriteString(tabular.SerializeLine(row))
		b.WriteString("\n")
	}
	return b.String()
}
