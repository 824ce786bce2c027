// Package render presents finished quatrains: as HTML fragments with the seed
// word emphasised, or as styled terminal output.
package render

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinHighlightLength is the shortest seed word that gets emphasised.
const MinHighlightLength = 3

// wordMatcher returns a case-insensitive whole-word matcher for word, or nil
// when word is too short to highlight.
func wordMatcher(word string) *regexp.Regexp {
	word = strings.TrimSpace(word)
	if utf8.RuneCountInString(word) < MinHighlightLength {
		return nil
	}
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// splitMatches calls fn for every segment of line, flagging whole-word
// occurrences of the matcher.
func splitMatches(line string, re *regexp.Regexp, fn func(segment string, match bool)) {
	if re == nil {
		fn(line, false)
		return
	}
	prev := 0
	for _, loc := range re.FindAllStringIndex(line, -1) {
		if loc[0] > prev {
			fn(line[prev:loc[0]], false)
		}
		fn(line[loc[0]:loc[1]], true)
		prev = loc[1]
	}
	if prev < len(line) {
		fn(line[prev:], false)
	}
}

// Highlight returns line as escaped HTML with every whole-word,
// case-insensitive occurrence of word wrapped in <strong>. Words shorter
// than MinHighlightLength are not highlighted.
func Highlight(line, word string) string {
	var b strings.Builder
	splitMatches(line, wordMatcher(word), func(segment string, match bool) {
		if match {
			b.WriteString(`<strong class="text-primary">`)
			b.WriteString(html.EscapeString(segment))
			b.WriteString(`</strong>`)
			return
		}
		b.WriteString(html.EscapeString(segment))
	})
	return b.String()
}

// HighlightAll applies Highlight to every line.
func HighlightAll(lines []string, word string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Highlight(line, word)
	}
	return out
}
