package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// errPoemRefused is returned by the poem command when the engine answers
// with a diagnostic. The diagnostic has already been printed.
var errPoemRefused = errors.New("poem refused")

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "verseseed",
		Short: "Verseseed - short poems from seed words and seed text",
		Long: `Verseseed writes short poems.

Give it a single word and it composes a rhyming quatrain from a thematic
vocabulary. Give it a paragraph and it builds an n-gram chain from the text
and walks it line by line. Trained corpus models can be stored in SQLite and
used as a third source.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "./config.json", "Path to the JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newPoemCmd(opts),
		newTrainCmd(opts),
		newModelsCmd(opts),
		newPruneCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
	)
	return rootCmd
}

// loadApp reads the configuration, applies flag overrides and builds the App.
// Logs go to logOut.
func loadApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*App, error) {
	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.logLevel != "" {
		config.Server.LogLevel = opts.logLevel
	}

	logLevel, err := parseLogLevel(config.Server.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: logLevel}))

	if config.Server.DataDir != "" {
		if err = os.MkdirAll(config.Server.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return NewApp(ctx, config, logger)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errPoemRefused) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
