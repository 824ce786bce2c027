package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	testCases := []struct {
		name string
		line string
		word string
		want string
	}{
		{"Whole word", "The moon rises", "moon", `The <strong class="text-primary">moon</strong> rises`},
		{"Case insensitive", "Moon, the MOON!", "moon", `<strong class="text-primary">Moon</strong>, the <strong class="text-primary">MOON</strong>!`},
		{"Not inside words", "A honeymoon glow", "moon", "A honeymoon glow"},
		{"Short word ignored", "An ox in the field", "ox", "An ox in the field"},
		{"Empty word", "Nothing here", "", "Nothing here"},
		{"Escapes markup", "<b>moon</b> & stars", "moon", `&lt;b&gt;<strong class="text-primary">moon</strong>&lt;/b&gt; &amp; stars`},
		{"Regex characters are literal", "Is a.b here? aXb", "a.b", `Is <strong class="text-primary">a.b</strong> here? aXb`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Highlight(tc.line, tc.word))
		})
	}
}

func TestHighlightAll(t *testing.T) {
	got := HighlightAll([]string{"Love is kind,", "and love is long."}, "LOVE")
	assert.Equal(t, []string{
		`<strong class="text-primary">Love</strong> is kind,`,
		`and <strong class="text-primary">love</strong> is long.`,
	}, got)
}

func TestTerminalRender(t *testing.T) {
	styles := Styles{
		Title:      lipgloss.NewStyle(),
		Line:       lipgloss.NewStyle(),
		Emphasis:   lipgloss.NewStyle(),
		Diagnostic: lipgloss.NewStyle(),
		Frame:      lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()),
	}
	term := NewTerminal(styles)

	out := term.Render("moon", []string{"The moon is bright,", "the night is long;", "a b c,", "d e f."}, "moon")
	for _, want := range []string{"moon", "The moon is bright,", "the night is long;", "d e f."} {
		assert.Contains(t, out, want)
	}
	assert.Greater(t, len(strings.Split(out, "\n")), 4, "frame adds border lines")

	diag := term.Render("ab", []string{"Please provide a longer word"}, "ab")
	assert.Equal(t, "Please provide a longer word", diag)
}

func TestDefaultStylesRender(t *testing.T) {
	out := NewTerminal(DefaultStyles()).Render("", []string{"One moon,", "two;", "three:", "four."}, "moon")
	assert.Contains(t, out, "four.")
}

func TestPlainStylesRender(t *testing.T) {
	out := NewTerminal(PlainStyles()).Render("", []string{"One moon,", "two;", "three:", "four."}, "moon")
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	assert.Equal(t, []string{"One moon,", "two;", "three:", "four."}, lines)
}
