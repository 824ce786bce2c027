package lexicon

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Overlay is the on-disk format for extra themes and rhyme groups.
//
//	themes:
//	  - name: winter
//	    nouns: [snow, frost]
//	    verbs: [freeze, drift]
//	    descriptors: [white, cold]
//	rhymes:
//	  - word: snow
//	    rhymes: [glow, slow]
type Overlay struct {
	Themes []ThematicWordSet `yaml:"themes"`
	Rhymes []RhymeGroup      `yaml:"rhymes"`
}

// LoadFromYAML reads an overlay file and returns a new lexicon holding the
// built-in tables plus the overlay. Extra themes are scanned after the
// built-in themes and before the default theme; extra rhyme groups are
// scanned after the built-in groups.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon overlay: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML is LoadFromYAML for in-memory documents.
func ParseYAML(data []byte) (*Lexicon, error) {
	var overlay Overlay
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon overlay: %w", err)
	}
	return Extend(Default(), overlay)
}

// Extend layers overlay onto base without modifying base.
func Extend(base *Lexicon, overlay Overlay) (*Lexicon, error) {
	n := len(base.themes)
	themes := slices.Concat(base.themes[:n-1], overlay.Themes, base.themes[n-1:])
	rhymes := slices.Concat(base.rhymes, overlay.Rhymes)
	lex, err := New(themes, rhymes)
	if err != nil {
		return nil, fmt.Errorf("invalid lexicon overlay: %w", err)
	}
	return lex, nil
}
