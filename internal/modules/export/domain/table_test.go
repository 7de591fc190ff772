package domain_test

import (
	"strings"
	"testing"

	"umusanzu/internal/modules/export/domain"
)

func TestToTableStartsWithHeader(t *testing.T) {
	t.Parallel()

	got := domain.ToTable([]domain.Pair{{Kirundi: "Muraho", French: "Bonjour"}})
	want := "Kirundi_Transcription,French_Translation\n\"Muraho\",\"Bonjour\"\n"
	if got != want {
		t.Fatalf("table = %q, want %q", got, want)
	}
}

func TestToTableDoublesEmbeddedQuotes(t *testing.T) {
	t.Parallel()

	got := domain.ToTable([]domain.Pair{{Kirundi: `a"b`, French: "c"}})
	if !strings.Contains(got, `"a""b","c"`) {
		t.Fatalf("quotes not doubled: %q", got)
	}
}

func TestToTableKeepsCommasInsideQuotes(t *testing.T) {
	t.Parallel()

	got := domain.ToTable([]domain.Pair{{Kirundi: "Ego, niko", French: "Oui, c'est ça"}})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d", len(lines))
	}
	if lines[1] != `"Ego, niko","Oui, c'est ça"` {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestToTableEmptyBatchIsHeaderOnly(t *testing.T) {
	t.Parallel()

	if got := domain.ToTable(nil); got != domain.Header+"\n" {
		t.Fatalf("empty table = %q", got)
	}
}
