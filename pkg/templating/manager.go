package templating

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/CTAG07/Verseseed/pkg/lexicon"
	"github.com/CTAG07/Verseseed/pkg/markov"
	"github.com/CTAG07/Verseseed/pkg/random"
)

var (
	// ErrEmptyPool is returned when a template slot has no words to draw from.
	ErrEmptyPool = errors.New("templating: empty word pool")
	// ErrNoTemplates is returned when the configuration holds no templates.
	ErrNoTemplates = errors.New("templating: no templates configured")
)

// TemplateManager is the central controller for the templating engine.
// It owns the template set, the random source and the static preposition and
// pronoun pools. All methods are concurrent-safe.
type TemplateManager struct {
	logger       *slog.Logger
	config       *TemplateConfig
	src          random.Source
	prepositions []string
	pronouns     []string
	mu           sync.RWMutex
}

// NewTemplateManager creates a TemplateManager from config. A nil config uses
// DefaultConfig and a nil source uses random.Default.
func NewTemplateManager(logger *slog.Logger, config *TemplateConfig, src random.Source) (*TemplateManager, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config == nil {
		def := DefaultConfig()
		config = &def
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = random.Default()
	}

	tm := &TemplateManager{
		logger:       logger,
		config:       config,
		src:          src,
		prepositions: lexicon.Pool(lexicon.Preposition),
		pronouns:     lexicon.Pool(lexicon.Pronoun),
	}
	logger.Debug("Template manager initialized", "templates", len(config.Templates))
	return tm, nil
}

// SetConfig swaps in a new configuration after validating it.
func (tm *TemplateManager) SetConfig(config *TemplateConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.config = config
	return nil
}

// Refresh reloads the template set from a template file.
func (tm *TemplateManager) Refresh(path string) error {
	templates, err := LoadTemplateFile(path)
	if err != nil {
		tm.logger.Error("failed to read template file", "path", path, "error", err)
		return err
	}
	if err = tm.SetConfig(&TemplateConfig{Templates: templates}); err != nil {
		tm.logger.Error("invalid template file", "path", path, "error", err)
		return err
	}
	tm.logger.Info("Loaded template file", "path", path, "count", len(templates))
	return nil
}

// GetConfig returns a copy of the current configuration.
func (tm *TemplateManager) GetConfig() TemplateConfig {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return TemplateConfig{Templates: slices.Clone(tm.config.Templates)}
}

// GetRandomTemplate returns a uniformly chosen template.
func (tm *TemplateManager) GetRandomTemplate() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return random.Pick(tm.src, tm.config.Templates)
}

func (tm *TemplateManager) templates() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.config.Templates
}

func (tm *TemplateManager) pool(pos lexicon.POS, words lexicon.ThematicWordSet) []string {
	switch pos {
	case lexicon.Noun:
		return words.Nouns
	case lexicon.Verb:
		return words.Verbs
	case lexicon.Adjective, lexicon.Adverb:
		return words.Descriptors
	case lexicon.Preposition:
		return tm.prepositions
	case lexicon.Pronoun:
		return tm.pronouns
	}
	return nil
}

// FillTemplate replaces every slot in tmpl with a word drawn from its pool and
// capitalizes the first letter of the result.
//
// When forcedEndWord is non-empty it is placed verbatim at the final slot of
// the template, provided that slot is the last token and its type occurs only
// once in the template. Every other slot is sampled.
func (tm *TemplateManager) FillTemplate(tmpl string, words lexicon.ThematicWordSet, forcedEndWord string) (string, error) {
	slots := parseSlots(tmpl)

	forcedAt := -1
	if forcedEndWord != "" {
		if last, ok := finalSlot(tmpl); ok {
			count := 0
			for _, s := range slots {
				if s.pos == last.pos {
					count++
				}
			}
			if count == 1 {
				forcedAt = len(slots) - 1
			}
		}
	}

	var b strings.Builder
	prev := 0
	for i, s := range slots {
		b.WriteString(tmpl[prev:s.start])
		prev = s.end
		if i == forcedAt {
			b.WriteString(forcedEndWord)
			continue
		}
		pool := tm.pool(s.pos, words)
		if len(pool) == 0 {
			return "", fmt.Errorf("%w: {%s} in theme %q", ErrEmptyPool, s.pos, words.Name)
		}
		b.WriteString(random.Pick(tm.src, pool))
	}
	b.WriteString(tmpl[prev:])

	return markov.Capitalize(b.String()), nil
}

// GenerateLineWithEndingWord produces a line whose last word is endWord.
//
// Only templates whose last token is a slot are considered, preferring those
// whose final slot matches the part of speech of endWord. endWord replaces
// that final slot and the rest of the template is filled normally. When no
// template ends in a slot, the first template is filled, any trailing period
// is dropped and endWord is appended.
func (tm *TemplateManager) GenerateLineWithEndingWord(words lexicon.ThematicWordSet, endWord string) (string, error) {
	templates := tm.templates()
	if len(templates) == 0 {
		return "", ErrNoTemplates
	}

	want := lexicon.InferPOS(endWord)
	var qualifying, matching []string
	for _, tmpl := range templates {
		last, ok := finalSlot(tmpl)
		if !ok {
			continue
		}
		qualifying = append(qualifying, tmpl)
		if last.pos == want {
			matching = append(matching, tmpl)
		}
	}

	if len(qualifying) == 0 {
		line, err := tm.FillTemplate(templates[0], words, "")
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(line, ".") + " " + endWord, nil
	}

	candidates := matching
	if len(candidates) == 0 {
		tm.logger.Debug("No template ends in matching slot", "word", endWord, "pos", want)
		candidates = qualifying
	}
	tmpl := random.Pick(tm.src, candidates)
	last, _ := finalSlot(tmpl)
	tmpl = tmpl[:last.start] + endWord + tmpl[last.end:]

	return tm.FillTemplate(tmpl, words, "")
}
