package markov

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nonWordRegex matches every character that is neither a word character
// nor whitespace.
var nonWordRegex = regexp.MustCompile(`[^\w\s]`)

// Tokenize lowercases text, replaces punctuation with spaces and splits the
// result on whitespace. Empty input yields an empty slice.
func Tokenize(text string) []string {
	cleaned := nonWordRegex.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ContextKey serializes a context into the space-joined form used as a model key.
func ContextKey(context []string) string {
	return strings.Join(context, " ")
}
