package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by Terminal.
type Styles struct {
	Title      lipgloss.Style
	Line       lipgloss.Style
	Emphasis   lipgloss.Style
	Diagnostic lipgloss.Style
	Frame      lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			MarginBottom(1),

		Line: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#e6e6e6"}).
			Italic(true),

		Emphasis: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF7AB6")).
			Bold(true),

		Diagnostic: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F56")).
			Bold(true),

		Frame: lipgloss.NewStyle().
			Padding(1, 3).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")),
	}
}

// PlainStyles returns styles without colour or frame, for pipes and logs.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Line: plain, Emphasis: plain, Diagnostic: plain, Frame: plain}
}

// Terminal renders poems for a terminal.
type Terminal struct {
	styles Styles
}

// NewTerminal returns a Terminal using styles.
func NewTerminal(styles Styles) *Terminal {
	return &Terminal{styles: styles}
}

// Render frames the poem under title. Occurrences of word are emphasised
// under the same rules as Highlight. A single-line poem is treated as a
// diagnostic and rendered without a frame.
func (t *Terminal) Render(title string, poem []string, word string) string {
	if len(poem) == 1 {
		return t.styles.Diagnostic.Render(poem[0])
	}

	re := wordMatcher(word)
	lines := make([]string, len(poem))
	for i, line := range poem {
		var b strings.Builder
		splitMatches(line, re, func(segment string, match bool) {
			if match {
				b.WriteString(t.styles.Emphasis.Render(segment))
				return
			}
			b.WriteString(t.styles.Line.Render(segment))
		})
		lines[i] = b.String()
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, t.styles.Title.Render(title), body)
	}
	return t.styles.Frame.Render(body)
}
