package markov

import (
	"io"
	"log/slog"

	"github.com/CTAG07/Verseseed/pkg/random"
)

const (
	// DefaultMinWords is the shortest line GenerateLine accepts.
	DefaultMinWords = 5
	// DefaultMaxWords is the length at which GenerateLine stops walking.
	DefaultMaxWords = 10
	// DefaultMaxTries bounds the number of random walks per line.
	DefaultMaxTries = 50
)

// Generator produces single lines from a Model. It holds no per-request
// state and is safe for concurrent use as long as its Source is.
type Generator struct {
	minWords int
	maxWords int
	maxTries int
	src      random.Source
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLineLength sets the minimum and maximum number of words per line.
func WithLineLength(minWords, maxWords int) Option {
	return func(g *Generator) {
		g.minWords = minWords
		g.maxWords = maxWords
	}
}

// WithMaxTries sets how many random walks are attempted before giving up.
func WithMaxTries(n int) Option {
	return func(g *Generator) { g.maxTries = n }
}

// WithSource sets the randomness source. Default: random.Default().
func WithSource(src random.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// NewGenerator creates a Generator with default line bounds, overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		minWords: DefaultMinWords,
		maxWords: DefaultMaxWords,
		maxTries: DefaultMaxTries,
		src:      random.Default(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxTries < 1 {
		g.maxTries = 1
	}
	return g
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Source returns the randomness source used by the Generator.
func (g *Generator) Source() random.Source { return g.src }

// MinWords returns the configured minimum line length.
func (g *Generator) MinWords() int { return g.minWords }

// MaxWords returns the configured maximum line length.
func (g *Generator) MaxWords() int { return g.maxWords }
