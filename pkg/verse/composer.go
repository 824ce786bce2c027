package verse

import (
	"io"
	"log/slog"

	"github.com/CTAG07/Verseseed/pkg/lexicon"
	"github.com/CTAG07/Verseseed/pkg/markov"
	"github.com/CTAG07/Verseseed/pkg/random"
	"github.com/CTAG07/Verseseed/pkg/templating"
)

// Composer runs both generation paths. It keeps no per-request state, so
// one Composer may serve concurrent callers as long as its Source is safe
// for concurrent use.
type Composer struct {
	cfg       Config
	src       random.Source
	lex       *lexicon.Lexicon
	templates *templating.TemplateManager
	logger    *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Composer) { c.cfg = cfg }
}

// WithSource sets the randomness source for every draw the Composer makes.
func WithSource(src random.Source) Option {
	return func(c *Composer) {
		if src != nil {
			c.src = src
		}
	}
}

// WithLexicon replaces the built-in lexicon.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(c *Composer) {
		if lex != nil {
			c.lex = lex
		}
	}
}

// WithTemplateManager replaces the default template set. The manager keeps
// its own random source.
func WithTemplateManager(tm *templating.TemplateManager) Option {
	return func(c *Composer) { c.templates = tm }
}

// NewComposer validates the configuration and fills in defaults for anything
// not set by opts.
func NewComposer(opts ...Option) (*Composer, error) {
	c := &Composer{
		cfg:    DefaultConfig(),
		src:    random.Default(),
		lex:    lexicon.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	if c.templates == nil {
		tm, err := templating.NewTemplateManager(c.logger, nil, c.src)
		if err != nil {
			return nil, err
		}
		c.templates = tm
	}
	return c, nil
}

// SetLogger sets the logger for the Composer. By default, all logs are discarded.
func (c *Composer) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Config returns the active configuration.
func (c *Composer) Config() Config {
	return c.cfg
}

func (c *Composer) generator() *markov.Generator {
	g := markov.NewGenerator(
		markov.WithLineLength(c.cfg.MinWords, c.cfg.MaxWords),
		markov.WithMaxTries(c.cfg.MaxTries),
		markov.WithSource(c.src),
	)
	g.SetLogger(c.logger)
	return g
}
