package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/CTAG07/Verseseed/pkg/corpus"
	"github.com/CTAG07/Verseseed/pkg/lexicon"
	"github.com/CTAG07/Verseseed/pkg/random"
	"github.com/CTAG07/Verseseed/pkg/templating"
	"github.com/CTAG07/Verseseed/pkg/verse"
)

// App wires the engine to its stores. It is shared by the CLI commands and
// the HTTP server.
type App struct {
	config *Config
	logger *slog.Logger
	db     *sql.DB
	store  *corpus.Store
	engine *verse.Engine

	// guards the corpus model name the engine currently serves
	mu          sync.Mutex
	corpusModel string
}

// openCorpusDB opens the corpus database with the given driver and makes
// sure the schema exists.
func openCorpusDB(driver, dataSource string) (*sql.DB, error) {
	db, err := sql.Open(driver, dataSource)
	if err != nil {
		return nil, err
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}
	return db, nil
}

// NewApp builds the engine described by config and opens the corpus store.
// When a corpus model is configured it is loaded into the engine.
func NewApp(ctx context.Context, config *Config, logger *slog.Logger) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var src random.Source = random.Default()
	if config.Server.RandomSeed != 0 {
		src = random.NewSeeded(config.Server.RandomSeed)
	}

	lex := lexicon.Default()
	if config.Server.LexiconPath != "" {
		var err error
		if lex, err = lexicon.LoadFromYAML(config.Server.LexiconPath); err != nil {
			return nil, err
		}
		logger.Info("Loaded lexicon overlay", "path", config.Server.LexiconPath, "themes", len(lex.Themes()))
	}

	tm, err := templating.NewTemplateManager(logger, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}
	if config.Server.TemplatePath != "" {
		if err = tm.Refresh(config.Server.TemplatePath); err != nil {
			return nil, err
		}
	}

	composer, err := verse.NewComposer(
		verse.WithConfig(*config.Engine),
		verse.WithSource(src),
		verse.WithLexicon(lex),
		verse.WithTemplateManager(tm),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create composer: %w", err)
	}

	var opts []verse.EngineOption
	if config.Server.RemoteURL != "" {
		timeout := time.Duration(config.Server.RemoteTimeoutSec) * time.Second
		opts = append(opts, verse.WithDelegate(NewHTTPDelegate(config.Server.RemoteURL, &http.Client{Timeout: timeout})))
	}
	engine := verse.NewEngine(composer, opts...)
	engine.SetLogger(logger)

	db, err := initDB(config.Server.CorpusDatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare corpus store: %w", err)
	}
	store.SetLogger(logger)

	app := &App{
		config: config,
		logger: logger,
		db:     db,
		store:  store,
		engine: engine,
	}

	if name := config.Server.CorpusModel; name != "" {
		if err = app.UseCorpusModel(ctx, name); err != nil {
			app.Close()
			return nil, err
		}
	}
	return app, nil
}

// UseCorpusModel loads a trained model from the store and hands it to the
// engine for the corpus strategy.
func (a *App) UseCorpusModel(ctx context.Context, name string) error {
	model, err := a.store.LoadByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load corpus model %q: %w", name, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.SetCorpusModel(model)
	a.corpusModel = name
	a.logger.Info("Corpus model loaded", "model", name, "contexts", model.Len())
	return nil
}

// reloadCorpusModel refreshes the engine after the named model changed in
// the store. Other models are ignored.
func (a *App) reloadCorpusModel(ctx context.Context, name string) {
	a.mu.Lock()
	active := a.corpusModel
	a.mu.Unlock()
	if active != name {
		return
	}
	if err := a.UseCorpusModel(ctx, name); err != nil {
		a.logger.Warn("Failed to reload corpus model", "model", name, "error", err)
	}
}

// dropCorpusModel detaches the named model from the engine if it is active.
func (a *App) dropCorpusModel(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.corpusModel == name {
		a.engine.SetCorpusModel(nil)
		a.corpusModel = ""
		a.logger.Info("Corpus model detached", "model", name)
	}
}

// Close releases the store and the database connection.
func (a *App) Close() {
	a.store.Close()
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", "error", err)
	}
}
