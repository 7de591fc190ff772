// Package textnorm normalizes phrases for duplicate comparison in the merge
// pipeline: lowercase, punctuation stripped, whitespace squeezed.
package textnorm

import (
	"strings"
	"unicode"
)

func Normalize(text string) string {
	lowered := strings.ToLower(text)
	out := strings.Builder{}
	lastSpace := false
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			out.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && out.Len() > 0 {
				out.WriteRune(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimRight(out.String(), " ")
}
