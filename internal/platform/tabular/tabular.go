// Package tabular parses and renders the comma-delimited text used by the
// contribution dataset and export files. Parsing is deliberately permissive:
// real contributor files contain short rows, stray quotes, and unterminated
// quoted fields, and those must degrade to usable rows rather than errors.
package tabular

import "strings"

// ParseLine splits one line into fields. A doubled quote inside a quoted span
// emits a literal quote; an unpaired quote toggles quoted mode, which only
// suppresses comma recognition. A quoted field left open simply ends with the
// line.
func ParseLine(line string) []string {
	fields := []string{}
	field := strings.Builder{}
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	return append(fields, field.String())
}

// ParseTable splits text into a header row and data rows. Empty lines are
// skipped, not emitted as empty rows. Returns nil, nil for empty input.
func ParseTable(text string) ([]string, [][]string) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var header []string
	var rows [][]string
	seenHeader := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !seenHeader {
			header = ParseLine(line)
			seenHeader = true
			continue
		}
		rows = append(rows, ParseLine(line))
	}
	return header, rows
}

// ResolveColumn returns the index of the first header field whose lowercased
// form satisfies match, or -1. Callers must check for -1 before indexing.
func ResolveColumn(header []string, match func(lowered string) bool) int {
	for i, field := range header {
		if match(strings.ToLower(field)) {
			return i
		}
	}
	return -1
}

// HasTokens builds a ResolveColumn predicate that requires every token to be
// a substring of the lowercased header field.
func HasTokens(tokens ...string) func(string) bool {
	return func(lowered string) bool {
		for _, token := range tokens {
			if !strings.Contains(lowered, token) {
				return false
			}
		}
		return true
	}
}

// SerializeLine renders fields with every field quote-wrapped and embedded
// quotes doubled. Embedded newlines are not escaped; the export format accepts
// that limitation.
func SerializeLine(fields []string) string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(out, ",")
}
