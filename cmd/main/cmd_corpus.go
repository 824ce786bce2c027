package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/CTAG07/Verseseed/pkg/corpus"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// runWithApp loads the App with logs on stderr and closes it afterwards.
func runWithApp(root *rootOptions, fn func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context(), root, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(cmd.Context(), app, cmd, args)
	}
}

func newTrainCmd(root *rootOptions) *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:   "train <model> <file>",
		Short: "Train a corpus model on a text file",
		Long: `Trains the named corpus model on a text file, creating the model if needed.
Poems in the file are separated by blank lines; chains never cross a poem
boundary. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: runWithApp(root, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]

			model, err := app.store.GetModelInfo(ctx, name)
			switch {
			case errors.Is(err, corpus.ErrModelNotFound):
				if model, err = app.store.InsertModel(ctx, corpus.ModelInfo{Name: name, Order: order}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created model %s (order %d)\n", model.Name, model.Order)
			case err != nil:
				return err
			case cmd.Flags().Changed("order") && model.Order != order:
				return fmt.Errorf("model %s already has order %d", name, model.Order)
			}

			var data io.Reader = cmd.InOrStdin()
			if path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open training file: %w", err)
				}
				defer file.Close()
				data = file
			}

			if err = app.store.Train(ctx, model, data); err != nil {
				return err
			}
			return printModelStats(ctx, app, cmd.OutOrStdout())
		}),
	}

	cmd.Flags().IntVar(&order, "order", 2, "Chain order for a new model")
	return cmd
}

func newModelsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List stored corpus models",
		Args:  cobra.NoArgs,
		RunE: runWithApp(root, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return printModelStats(ctx, app, cmd.OutOrStdout())
		}),
	}
}

func newPruneCmd(root *rootOptions) *cobra.Command {
	var minFreq int
	var vocabulary bool

	cmd := &cobra.Command{
		Use:   "prune [model]",
		Short: "Drop rare chains from a model, or rare tokens from every model",
		Args:  cobra.MaximumNArgs(1),
		RunE: runWithApp(root, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			if vocabulary {
				if err := app.store.VocabularyPrune(ctx, minFreq); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned vocabulary below frequency %d\n", minFreq)
				return nil
			}
			if len(args) == 0 {
				return errors.New("a model name is required unless --vocabulary is set")
			}
			model, err := app.store.GetModelInfo(ctx, args[0])
			if err != nil {
				return err
			}
			removed, err := app.store.PruneModel(ctx, model, minFreq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d chains from %s\n", removed, model.Name)
			return nil
		}),
	}

	cmd.Flags().IntVar(&minFreq, "min-freq", 1, "Chains (or tokens with --vocabulary) at or below this frequency are removed")
	cmd.Flags().BoolVar(&vocabulary, "vocabulary", false, "Prune rare tokens across all models")
	return cmd
}

func newExportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <model> <file>",
		Short: "Write a corpus model to a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(root, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			model, err := app.store.GetModelInfo(ctx, args[0])
			if err != nil {
				return err
			}
			if err = app.store.ExportModelToFile(ctx, model, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", model.Name, args[1])
			return nil
		}),
	}
}

func newImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge an exported JSON model into the store",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(root, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open model file: %w", err)
			}
			defer file.Close()

			model, err := app.store.ImportModel(ctx, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (order %d)\n", model.Name, model.Order)
			return nil
		}),
	}
}

// printModelStats writes one table row per stored model.
func printModelStats(ctx context.Context, app *App, w io.Writer) error {
	stats, err := app.store.GetStats(ctx)
	if err != nil {
		return err
	}
	if len(stats.Models) == 0 {
		_, err = fmt.Fprintln(w, "No corpus models stored.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "ORDER", "CHAINS", "TRANSITIONS", "CONTEXTS")
	for _, model := range stats.Models {
		s := stats.Stats[model.Id]
		t.Row(
			strconv.Itoa(model.Id),
			model.Name,
			strconv.Itoa(model.Order),
			strconv.Itoa(s.TotalChains),
			strconv.Itoa(s.TotalFrequency),
			strconv.Itoa(s.Contexts),
		)
	}
	_, err = fmt.Fprintf(w, "%s\nvocabulary %d, contexts %d\n", t.Render(), stats.VocabSize, stats.PrefixSize)
	return err
}
