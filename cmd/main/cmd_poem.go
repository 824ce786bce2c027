package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/render"
	"github.com/CTAG07/Verseseed/pkg/verse"
	"github.com/spf13/cobra"
)

type poemOptions struct {
	word     string
	seed     string
	corpus   string
	strategy string
	plain    bool
}

func newPoemCmd(root *rootOptions) *cobra.Command {
	opts := &poemOptions{}

	cmd := &cobra.Command{
		Use:   "poem",
		Short: "Write a poem from a word or from seed text",
		Long: `Writes a poem and prints it to stdout.

  verseseed poem --word moon                 rhyming quatrain from a theme
  verseseed poem --seed "some long text..."  n-gram chain over the seed text
  verseseed poem --corpus sonnets --word sea trained corpus model, starting near "sea"

--strategy picks the path explicitly (ngram-chain, thematic-word, corpus-chain, remote).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, input, err := opts.resolve()
			if err != nil {
				return err
			}

			app, err := loadApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			if opts.corpus != "" {
				if err = app.UseCorpusModel(cmd.Context(), opts.corpus); err != nil {
					return err
				}
			}
			if strategy != verse.NGramChain {
				input = capWord(input, app.config.Engine.MaxSeedWordLength)
			}

			poem, err := app.engine.Generate(cmd.Context(), strategy, input)
			if err != nil {
				return err
			}

			styles := render.DefaultStyles()
			if opts.plain {
				styles = render.PlainStyles()
			}
			highlight := ""
			if strategy != verse.NGramChain {
				highlight = input
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.NewTerminal(styles).Render(opts.title(strategy, input), poem, highlight))

			if !poem.OK() {
				return errPoemRefused
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.word, "word", "w", "", "Seed word for a thematic or corpus poem")
	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "Seed text for an n-gram chain poem")
	cmd.Flags().StringVar(&opts.corpus, "corpus", "", "Name of a trained corpus model to generate from")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Generation strategy, inferred from the other flags when empty")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print without colours or frame")
	return cmd
}

// resolve picks the strategy and its input from the flags.
func (o *poemOptions) resolve() (verse.Strategy, string, error) {
	if o.strategy != "" {
		strategy, err := verse.ParseStrategy(o.strategy)
		if err != nil {
			return "", "", err
		}
		if strategy == verse.NGramChain {
			return strategy, o.seed, nil
		}
		return strategy, o.word, nil
	}

	switch {
	case o.corpus != "":
		return verse.CorpusChain, o.word, nil
	case o.word != "":
		return verse.ThematicTemplate, o.word, nil
	case o.seed != "":
		return verse.NGramChain, o.seed, nil
	}
	return "", "", errors.New("one of --word, --seed or --corpus is required")
}

func (o *poemOptions) title(strategy verse.Strategy, input string) string {
	if strategy == verse.NGramChain {
		return "from your seed text"
	}
	if strings.TrimSpace(input) == "" {
		return string(strategy)
	}
	return strings.TrimSpace(input)
}
