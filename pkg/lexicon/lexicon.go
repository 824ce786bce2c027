package lexicon

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// Lexicon is an immutable view over theme and rhyme tables.
type Lexicon struct {
	themes     []ThematicWordSet
	themeIndex map[string]int
	rhymes     []RhymeGroup
	rhymeIndex map[string]int
}

var (
	builtinOnce sync.Once
	builtin     *Lexicon
)

// Default returns the lexicon backed by the built-in tables.
func Default() *Lexicon {
	builtinOnce.Do(func() {
		lex, err := New(builtinThemes, builtinRhymes)
		if err != nil {
			panic(fmt.Sprintf("lexicon: invalid built-in tables: %v", err))
		}
		builtin = lex
	})
	return builtin
}

// New builds a lexicon from the given tables. Theme and rhyme order is kept
// as given, and the default theme is always moved to the end of the theme
// scan. The slices are copied.
func New(themes []ThematicWordSet, rhymes []RhymeGroup) (*Lexicon, error) {
	lex := &Lexicon{
		themeIndex: make(map[string]int, len(themes)),
		rhymeIndex: make(map[string]int, len(rhymes)),
	}

	var fallback *ThematicWordSet
	for _, ws := range themes {
		name := strings.ToLower(strings.TrimSpace(ws.Name))
		if name == "" {
			return nil, fmt.Errorf("theme with empty name")
		}
		if !ws.usable() {
			return nil, fmt.Errorf("theme %q needs nouns, verbs and descriptors", name)
		}
		if _, dup := lex.themeIndex[name]; dup || (name == DefaultTheme && fallback != nil) {
			return nil, fmt.Errorf("duplicate theme %q", name)
		}
		ws = ws.clone()
		ws.Name = name
		if name == DefaultTheme {
			fallback = &ws
			continue
		}
		lex.themeIndex[name] = len(lex.themes)
		lex.themes = append(lex.themes, ws)
	}
	if fallback == nil {
		return nil, fmt.Errorf("missing %q theme", DefaultTheme)
	}
	lex.themeIndex[DefaultTheme] = len(lex.themes)
	lex.themes = append(lex.themes, *fallback)

	for _, group := range rhymes {
		key := strings.ToLower(strings.TrimSpace(group.Word))
		if key == "" {
			return nil, fmt.Errorf("rhyme group with empty word")
		}
		if _, dup := lex.rhymeIndex[key]; dup {
			return nil, fmt.Errorf("duplicate rhyme group %q", key)
		}
		lex.rhymeIndex[key] = len(lex.rhymes)
		lex.rhymes = append(lex.rhymes, RhymeGroup{Word: key, Rhymes: slices.Clone(group.Rhymes)})
	}
	return lex, nil
}

// Themes returns the theme names in scan order. The default theme is last.
func (l *Lexicon) Themes() []string {
	names := make([]string, len(l.themes))
	for i, ws := range l.themes {
		names[i] = ws.Name
	}
	return names
}

// RhymeGroups returns the number of rhyme groups in the dictionary.
func (l *Lexicon) RhymeGroups() int {
	return len(l.rhymes)
}

// ThematicWords selects the vocabulary for word. It tries, in order: a theme
// named exactly word; the first theme whose name contains word or is contained
// in it; the first theme with word in any of its pools; the default theme.
func (l *Lexicon) ThematicWords(word string) ThematicWordSet {
	word = strings.ToLower(strings.TrimSpace(word))
	fallback := l.themes[len(l.themes)-1]
	if word == "" {
		return fallback.clone()
	}

	if i, ok := l.themeIndex[word]; ok {
		return l.themes[i].clone()
	}
	for _, ws := range l.themes {
		if strings.Contains(word, ws.Name) || strings.Contains(ws.Name, word) {
			return ws.clone()
		}
	}
	for _, ws := range l.themes {
		for _, pool := range ws.Pools() {
			if slices.Contains(pool, word) {
				return ws.clone()
			}
		}
	}
	return fallback.clone()
}

// FindRhymes returns words that rhyme with word. The result is never empty.
//
// Lookup order: the word's own rhyme group; the first group listing the word,
// as [key, other rhymes...]; every table word sharing the last two characters
// (for words of three or more characters); a fixed fallback list.
func (l *Lexicon) FindRhymes(word string) []string {
	word = strings.ToLower(strings.TrimSpace(word))

	if i, ok := l.rhymeIndex[word]; ok && len(l.rhymes[i].Rhymes) > 0 {
		return slices.Clone(l.rhymes[i].Rhymes)
	}

	for _, group := range l.rhymes {
		if !slices.Contains(group.Rhymes, word) {
			continue
		}
		out := []string{group.Word}
		for _, r := range group.Rhymes {
			if r != word {
				out = append(out, r)
			}
		}
		return out
	}

	if utf8.RuneCountInString(word) >= 3 {
		suffix := lastRunes(word, 2)
		seen := make(map[string]struct{})
		var out []string
		add := func(candidate string) {
			if candidate == word || !strings.HasSuffix(candidate, suffix) {
				return
			}
			if _, ok := seen[candidate]; ok {
				return
			}
			seen[candidate] = struct{}{}
			out = append(out, candidate)
		}
		for _, group := range l.rhymes {
			add(group.Word)
			for _, r := range group.Rhymes {
				add(r)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	return slices.Clone(fallbackRhymes)
}

func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
