package templating

import (
	"regexp"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/lexicon"
)

var slotPattern = regexp.MustCompile(`\{([a-z]+)\}`)

func knownSlot(pos lexicon.POS) bool {
	switch pos {
	case lexicon.Noun, lexicon.Verb, lexicon.Adjective, lexicon.Adverb, lexicon.Preposition, lexicon.Pronoun:
		return true
	}
	return false
}

// slot is one slot occurrence in a template, as byte offsets of its tag.
type slot struct {
	pos        lexicon.POS
	start, end int
}

func parseSlots(tmpl string) []slot {
	matches := slotPattern.FindAllStringSubmatchIndex(tmpl, -1)
	slots := make([]slot, 0, len(matches))
	for _, m := range matches {
		pos := lexicon.POS(tmpl[m[2]:m[3]])
		if !knownSlot(pos) {
			continue
		}
		slots = append(slots, slot{pos: pos, start: m[0], end: m[1]})
	}
	return slots
}

// Slots returns the slot types of tmpl in left-to-right order.
func Slots(tmpl string) []lexicon.POS {
	slots := parseSlots(tmpl)
	out := make([]lexicon.POS, len(slots))
	for i, s := range slots {
		out[i] = s.pos
	}
	return out
}

// finalSlot returns the slot tag that is the last whitespace-separated token
// of tmpl, if there is one.
func finalSlot(tmpl string) (slot, bool) {
	trimmed := strings.TrimRight(tmpl, " \t")
	slots := parseSlots(trimmed)
	if len(slots) == 0 {
		return slot{}, false
	}
	last := slots[len(slots)-1]
	if last.end != len(trimmed) {
		return slot{}, false
	}
	if last.start > 0 && trimmed[last.start-1] != ' ' && trimmed[last.start-1] != '\t' {
		return slot{}, false
	}
	return last, true
}

// EndsWithSlot reports whether the last token of tmpl is a slot tag.
func EndsWithSlot(tmpl string) bool {
	_, ok := finalSlot(tmpl)
	return ok
}
