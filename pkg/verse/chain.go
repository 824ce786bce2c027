package verse

import (
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/CTAG07/Verseseed/pkg/markov"
	"github.com/CTAG07/Verseseed/pkg/random"
)

var punctuationMarks = []string{",", ";", ":", ""}

// AddPunctuation terminates a line. The last line of a poem gets a period;
// every other line gets a random mark from , ; : or nothing.
func (c *Composer) AddPunctuation(line string, index, total int) string {
	if index == total-1 {
		return line + "."
	}
	return line + random.Pick(c.src, punctuationMarks)
}

// GeneratePoem builds an n-gram model of the given order from seedText and
// generates numLines punctuated lines from it. A line that cannot be
// generated is replaced by its diagnostic, punctuated like any other line.
func (c *Composer) GeneratePoem(seedText string, numLines, order int) Quatrain {
	q, err := c.chainPoem(seedText, numLines, order)
	if err != nil {
		return diagnostic(err)
	}
	return q
}

func (c *Composer) chainPoem(seedText string, numLines, order int) (Quatrain, error) {
	if utf8.RuneCountInString(seedText) < c.cfg.MinSeedTextLength {
		return nil, seedTooShortError{min: c.cfg.MinSeedTextLength}
	}
	model := markov.Build(markov.Tokenize(seedText), order)
	if model.Empty() {
		return nil, ErrNotEnoughWords
	}
	return c.linesFromModel(model, numLines), nil
}

func (c *Composer) linesFromModel(model *markov.Model, numLines int, opts ...markov.LineOption) Quatrain {
	gen := c.generator()
	poem := make(Quatrain, numLines)
	for i := range numLines {
		line, err := gen.GenerateLine(model, opts...)
		if err != nil {
			c.logger.Debug("Line generation failed", slog.Int("line", i), slog.Any("error", err))
			line = Diagnostic(err)
		}
		poem[i] = c.AddPunctuation(line, i, numLines)
	}
	return poem
}

// GeneratePoemWithFallback tries the configured order, then order 1, and
// finally samples words straight from the seed's vocabulary. Only shortages
// of usable words trigger the next tier; any other diagnostic is returned
// as is.
func (c *Composer) GeneratePoemWithFallback(seedText string) Quatrain {
	q, err := c.chainPoem(seedText, c.cfg.NumLines, c.cfg.Order)
	if errors.Is(err, ErrNotEnoughWords) {
		c.logger.Debug("Falling back to order 1", slog.Int("order", c.cfg.Order))
		q, err = c.chainPoem(seedText, c.cfg.NumLines, 1)
	}
	if errors.Is(err, ErrNotEnoughWords) {
		if tokens := markov.Tokenize(seedText); len(tokens) >= c.cfg.MinWords {
			c.logger.Debug("Falling back to vocabulary sampling", slog.Int("tokens", len(tokens)))
			return c.samplePoem(tokens)
		}
	}
	if err != nil {
		return diagnostic(err)
	}
	return q
}

// samplePoem draws every word of every line uniformly, with replacement,
// from tokens.
func (c *Composer) samplePoem(tokens []string) Quatrain {
	poem := make(Quatrain, c.cfg.NumLines)
	for i := range poem {
		words := make([]string, random.Between(c.src, c.cfg.MinWords, c.cfg.MaxWords))
		for j := range words {
			words[j] = random.Pick(c.src, tokens)
		}
		poem[i] = c.AddPunctuation(markov.Capitalize(strings.Join(words, " ")), i, len(poem))
	}
	return poem
}

// GenerateFromModel generates a poem from a pre-trained model, preferring
// starting contexts that contain startWord.
func (c *Composer) GenerateFromModel(model *markov.Model, startWord string) Quatrain {
	if model == nil {
		return diagnostic(ErrNoCorpusModel)
	}
	if model.Empty() {
		return diagnostic(markov.ErrEmptyModel)
	}
	var opts []markov.LineOption
	if startWord = strings.TrimSpace(startWord); startWord != "" {
		if utf8.RuneCountInString(startWord) < c.cfg.MinSeedWordLength {
			return diagnostic(ErrWordTooShort)
		}
		opts = append(opts, markov.WithStartWord(startWord))
	}
	return c.linesFromModel(model, c.cfg.NumLines, opts...)
}
