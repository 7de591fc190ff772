package domain

import (
	"strings"

	"umusanzu/internal/platform/tabular"
)

// Header is the fixed first line of every export file. The merge pipeline
// refuses files that do not start with it.
const Header = "Kirundi_Transcription,French_Translation"

// Pair is one exported row. Kirundi is always the first column.
type Pair struct {
	Kirundi string
	French  string
}

// ToTable renders pairs as a complete export document: the fixed header
// followed by one quoted row per pair.
func ToTable(pairs []Pair) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, p := range pairs {
		b.WriteString(tabular.SerializeLine([]string{p.Kirundi, p.French}))
		b.WriteString("\n")
	}
	return b.String()
}
