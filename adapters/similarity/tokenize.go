package similarity

import (
	"strings"
	"unicode"
)

// minTokenLength drops one-character tokens such as "a" or "5"
const minTokenLength = 2

// Tokenize splits s on anything that is not a letter, digit or underscore and
// drops short tokens and stop words. Order and duplicates are preserved.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < minTokenLength || IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
