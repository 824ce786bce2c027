package markov

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/random"
)

var (
	// ErrEmptyModel is returned when the model has no contexts to start from.
	ErrEmptyModel = errors.New("markov: model has no contexts")
	// ErrNoSuitableLine is returned when every attempt ended short of the minimum length.
	ErrNoSuitableLine = errors.New("markov: could not generate a line of the minimum length")
)

// lineOptions holds per-call settings for GenerateLine.
type lineOptions struct {
	startWord string
}

// LineOption configures a single GenerateLine call.
type LineOption func(*lineOptions)

// WithStartWord prefers starting contexts that contain word. If no context
// contains it, the start is drawn from all contexts.
func WithStartWord(word string) LineOption {
	return func(o *lineOptions) { o.startWord = strings.ToLower(strings.TrimSpace(word)) }
}

// GenerateLine random-walks the model to build one line. Each attempt starts
// from a uniformly chosen context and appends continuations until the
// maximum length is reached or the chain dead-ends. The first attempt that
// reaches the minimum length is returned with its first letter capitalized.
func (g *Generator) GenerateLine(model *Model, opts ...LineOption) (string, error) {
	if model == nil || model.Empty() {
		return "", ErrEmptyModel
	}

	options := &lineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	starts := model.keys
	if options.startWord != "" {
		if preferred := model.keysContaining(options.startWord); len(preferred) > 0 {
			starts = preferred
		}
	}

	order := model.Order()
	for attempt := 0; attempt < g.maxTries; attempt++ {
		generated := strings.Fields(random.Pick(g.src, starts))

		for len(generated) < g.maxWords {
			choices := model.candidates(ContextKey(generated[len(generated)-order:]))
			if len(choices) == 0 {
				break
			}
			generated = append(generated, random.Pick(g.src, choices))
		}

		if len(generated) >= g.minWords {
			generated[0] = Capitalize(generated[0])
			return strings.Join(generated, " "), nil
		}
	}

	g.logger.Debug("Line generation exhausted its attempts",
		slog.Int("max_tries", g.maxTries),
		slog.Int("min_words", g.minWords),
		slog.Int("contexts", model.Len()),
	)
	return "", ErrNoSuitableLine
}
