package verse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/CTAG07/Verseseed/pkg/markov"
)

// Strategy selects a generation path.
type Strategy string

const (
	// NGramChain builds a model from seed text, with fallback tiers.
	NGramChain Strategy = "ngram-chain"
	// ThematicTemplate composes a rhyming quatrain from a seed word.
	ThematicTemplate Strategy = "thematic-word"
	// RemoteDelegate forwards the seed to an external generator.
	RemoteDelegate Strategy = "remote"
	// CorpusChain walks a pre-trained corpus model starting near a seed word.
	CorpusChain Strategy = "corpus-chain"
)

// Strategies lists every known strategy.
var Strategies = []Strategy{NGramChain, ThematicTemplate, RemoteDelegate, CorpusChain}

// ParseStrategy accepts a strategy name, ignoring case and surrounding space.
func ParseStrategy(s string) (Strategy, error) {
	strategy := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Strategies {
		if strategy == known {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Delegate generates a poem somewhere else, typically over the network.
// It returns either the finished lines or a single diagnostic line.
type Delegate interface {
	Generate(ctx context.Context, seed string) ([]string, error)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(ctx context.Context, seed string) ([]string, error)

// Generate calls f.
func (f DelegateFunc) Generate(ctx context.Context, seed string) ([]string, error) {
	return f(ctx, seed)
}

// Engine is the single entry point for callers. It dispatches a seed to the
// selected strategy and normalizes the result.
type Engine struct {
	composer *Composer
	delegate Delegate
	corpus   *markov.Model
	mu       sync.RWMutex
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDelegate sets the collaborator used by the RemoteDelegate strategy.
func WithDelegate(d Delegate) EngineOption {
	return func(e *Engine) { e.delegate = d }
}

// WithCorpusModel sets the model used by the CorpusChain strategy.
func WithCorpusModel(m *markov.Model) EngineOption {
	return func(e *Engine) { e.corpus = m }
}

// NewEngine wraps composer.
func NewEngine(composer *Composer, opts ...EngineOption) *Engine {
	e := &Engine{
		composer: composer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetLogger sets the logger for the Engine and its Composer.
func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger != nil {
		e.logger = logger
		e.composer.SetLogger(logger)
	}
}

// SetCorpusModel swaps the model used by the CorpusChain strategy. The model
// must not be modified afterwards.
func (e *Engine) SetCorpusModel(m *markov.Model) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.corpus = m
}

// CorpusModel returns the current corpus model, or nil.
func (e *Engine) CorpusModel() *markov.Model {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus
}

// Composer returns the underlying composer.
func (e *Engine) Composer() *Composer {
	return e.composer
}

// Generate runs strategy on seed. Handled failures come back as a
// single-line diagnostic Quatrain with a nil error. The only error returned
// wraps ErrTransport, when the remote delegate cannot be reached or answers
// with a malformed poem.
func (e *Engine) Generate(ctx context.Context, strategy Strategy, seed string) (Quatrain, error) {
	e.logger.DebugContext(ctx, "Generating poem",
		slog.String("strategy", string(strategy)),
		slog.Int("seed_length", len(seed)),
	)

	switch strategy {
	case NGramChain:
		return e.composer.GeneratePoemWithFallback(seed), nil
	case ThematicTemplate:
		return e.composer.GeneratePoemFromWord(seed), nil
	case CorpusChain:
		return e.composer.GenerateFromModel(e.CorpusModel(), seed), nil
	case RemoteDelegate:
		return e.remote(ctx, seed)
	}
	return Quatrain{MsgUnknownStrategy}, nil
}

func (e *Engine) remote(ctx context.Context, seed string) (Quatrain, error) {
	if e.delegate == nil {
		return nil, fmt.Errorf("%w: no delegate configured", ErrTransport)
	}
	lines, err := e.delegate.Generate(ctx, seed)
	if err != nil {
		e.logger.WarnContext(ctx, "Remote delegate failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if len(lines) != 1 && len(lines) != QuatrainLines {
		return nil, fmt.Errorf("%w: delegate returned %d lines", ErrTransport, len(lines))
	}
	return Quatrain(lines), nil
}
