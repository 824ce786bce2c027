package verse

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/CTAG07/Verseseed/pkg/lexicon"
	"github.com/CTAG07/Verseseed/pkg/random"
)

var nonWord = regexp.MustCompile(`\W`)

// GeneratePoemFromWord composes an ABAB quatrain themed on word. Lines 1 and
// 2 come from random templates; lines 3 and 4 end on a word that rhymes with
// the last word of lines 1 and 2 respectively. Any failure yields a single
// diagnostic line.
func (c *Composer) GeneratePoemFromWord(word string) (q Quatrain) {
	word = strings.TrimSpace(word)
	if utf8.RuneCountInString(word) < c.cfg.MinSeedWordLength {
		return diagnostic(ErrWordTooShort)
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Thematic generation panicked", slog.String("word", word), slog.Any("panic", r))
			q = Quatrain{MsgThematicFailure}
		}
	}()

	lines, err := c.thematicLines(word)
	if err != nil {
		c.logger.Debug("Thematic generation failed", slog.String("word", word), slog.Any("error", err))
		return Quatrain{MsgThematicFailure}
	}
	return Quatrain{lines[0] + ",", lines[1] + ";", lines[2] + ",", lines[3] + "."}
}

func (c *Composer) thematicLines(word string) ([4]string, error) {
	var lines [4]string
	words := c.lex.ThematicWords(strings.ToLower(word))

	line1, rhymeA, err := c.freeLine(words, "day")
	if err != nil {
		return lines, fmt.Errorf("line 1: %w", err)
	}
	line2, rhymeB, err := c.freeLine(words, "night")
	if err != nil {
		return lines, fmt.Errorf("line 2: %w", err)
	}
	line3, err := c.templates.GenerateLineWithEndingWord(words, rhymeA)
	if err != nil {
		return lines, fmt.Errorf("line 3: %w", err)
	}
	line4, err := c.templates.GenerateLineWithEndingWord(words, rhymeB)
	if err != nil {
		return lines, fmt.Errorf("line 4: %w", err)
	}

	c.logger.Debug("Composed quatrain",
		slog.String("theme", words.Name),
		slog.String("rhyme_a", rhymeA),
		slog.String("rhyme_b", rhymeB),
	)
	lines = [4]string{line1, line2, line3, line4}
	return lines, nil
}

// freeLine fills a random template and picks a word rhyming with the line's
// last word, or fallback if there is none.
func (c *Composer) freeLine(words lexicon.ThematicWordSet, fallback string) (string, string, error) {
	line, err := c.templates.FillTemplate(c.templates.GetRandomTemplate(), words, "")
	if err != nil {
		return "", "", err
	}
	rhyme := random.Pick(c.src, c.lex.FindRhymes(LastWord(line)))
	if rhyme == "" {
		rhyme = fallback
	}
	return line, rhyme, nil
}

// LastWord returns the final word of line, lowercased and stripped of
// non-word characters.
func LastWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(nonWord.ReplaceAllString(fields[len(fields)-1], ""))
}
