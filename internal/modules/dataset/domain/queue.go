package domain

import (
	"strings"

	"umusanzu/internal/platform/tabular"
)

// Direction selects which side of the pair a queue prompts for.
type Direction string

const (
	// KirundiToFrench shows untranslated Kirundi phrases from the dataset.
	KirundiToFrench Direction = "kirundi_to_french"
	// FrenchToKirundi shows French prompts to be rendered in Kirundi.
	FrenchToKirundi Direction = "french_to_kirundi"
)

// BuildFromDataset extracts the untranslated work items from the raw master
// CSV: rows whose Kirundi transcription is present and whose French
// translation is empty or absent, in row order. If either required column
// cannot be resolved from the header the result is empty; the caller decides
// whether that is worth logging.
func BuildFromDataset(rawText string) []string {
	header, rows := tabular.ParseTable(rawText)
	kirundiCol := tabular.ResolveColumn(header, tabular.HasTokens("kirundi", "transcription"))
	frenchCol := tabular.ResolveColumn(header, tabular.HasTokens("french", "translation"))
	if kirundiCol < 0 || frenchCol < 0 {
		return nil
	}

	var items []string
	for _, row := range rows {
		if kirundiCol >= len(row) {
			continue
		}
		kirundi := strings.TrimSpace(row[kirundiCol])
		if kirundi == "" {
			continue
		}
		if frenchCol < len(row) && strings.TrimSpace(row[frenchCol]) != "" {
			continue
		}
		items = append(items, kirundi)
	}
	return items
}

// KnownKirundi returns every non-empty Kirundi transcription in the dataset,
// translated or not. Reverse-mode submissions are checked against this
// snapshot for exact duplicates.
func KnownKirundi(rawText string) map[string]struct{} {
	header, rows := tabular.ParseTable(rawText)
	kirundiCol := tabular.ResolveColumn(header, tabular.HasTokens("kirundi", "transcription"))
	if kirundiCol < 0 {
		return map[string]struct{}{}
	}
	known := map[string]struct{}{}
	for _, row := range rows {
		if kirundiCol >= len(row) {
			continue
		}
		if kirundi := strings.TrimSpace(row[kirundiCol]); kirundi != "" {
			known[kirundi] = struct{}{}
		}
	}
	return known
}

// BuildFromPromptList parses the French prompt list. The maintained file is
// one phrase per line, but a headered single-column CSV is accepted too.
func BuildFromPromptList(rawText string) []string {
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")
	var prompts []string
	for i, line := range lines {
		phrase := strings.TrimSpace(line)
		if phrase == "" {
			continue
		}
		if i == 0 && looksLikePromptHeader(phrase) {
			continue
		}
		if fields := tabular.ParseLine(phrase); len(fields) == 1 {
			phrase = strings.TrimSpace(fields[0])
		}
		if phrase != "" {
			prompts = append(prompts, phrase)
		}
	}
	return prompts
}

func looksLikePromptHeader(line string) bool {
	lowered := strings.ToLower(line)
	return strings.Contains(lowered, "french") || strings.Contains(lowered, "prompt")
}

// FilterSubmitted removes items already present in the ledger set, preserving
// relative order. Exact string match only.
func FilterSubmitted(items []string, submitted map[string]struct{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := submitted[item]; ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Shuffle permutes items in place with Fisher–Yates. intn must return a
// uniform value in [0, n); injecting it keeps tests deterministic.
func Shuffle(items []string, intn func(n int) int) {
	for i := len(items) - 1; i > 0; i-- {
		j := intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
