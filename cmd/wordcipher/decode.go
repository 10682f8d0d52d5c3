package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-wordcipher/internal/config"
	"github.com/goliatone/go-wordcipher/internal/prompt"
	internalLoader "github.com/goliatone/go-wordcipher/internal/source/loader"
	"github.com/goliatone/go-wordcipher/pkg/orchestrator"
	"github.com/goliatone/go-wordcipher/pkg/render"
	"github.com/goliatone/go-wordcipher/pkg/segment"
	"github.com/goliatone/go-wordcipher/pkg/source"
)

func (a *app) decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Print the dictionary words matching each puzzle segment",
		Example: `  wordcipher decode --dict /usr/share/dict/words
  wordcipher decode -f puzzle.txt -d words.txt --renderer html -o report.html
  cat words.txt | wordcipher decode -p '<<<**.>..>>**. [33x11x020][5]' -d -`,
		Args: noArgs,
		RunE: a.runDecode,
	}

	f := cmd.Flags()
	f.StringVarP(&a.flags.renderer, "renderer", "r", "text", fmt.Sprintf("Output format %v", config.Renderers))
	f.StringVarP(&a.flags.output, "output", "o", "", "Output file (stdout if empty)")
	f.StringVar(&a.flags.separator, "separator", render.DefaultSeparator, "Line closing each segment in text output")
	f.StringVar(&a.flags.title, "title", "", "Report title for html and yaml output")
	f.BoolVar(&a.flags.constraints, "constraints", false, "Include decoded constraints in yaml output")
	f.BoolVarP(&a.flags.interactive, "interactive", "i", false, "Prompt for inputs that are not configured")
	return cmd
}

func (a *app) runDecode(cmd *cobra.Command, _ []string) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	ctx := cmd.Context()
	cfg := *a.cfg

	if a.flags.interactive {
		current := prompt.Answers{
			Puzzle:     cfg.Puzzle,
			PuzzleFile: cfg.PuzzleFile,
			Dictionary: cfg.Dictionary,
		}
		if cmd.Flags().Changed("renderer") {
			current.Renderer = cfg.Renderer
		}
		answers, err := prompt.Ask(ctx, a.driver, current, config.Renderers)
		if err != nil {
			return err
		}
		cfg.Puzzle = answers.Puzzle
		cfg.PuzzleFile = answers.PuzzleFile
		cfg.Dictionary = answers.Dictionary
		cfg.Renderer = answers.Renderer
	}

	req, err := a.decodeRequest(cfg)
	if err != nil {
		return err
	}

	orch := orchestrator.New(
		orchestrator.WithLoader(newLoader(cfg)),
		orchestrator.WithLogger(a.logger),
	)
	output, err := orch.Generate(ctx, req)
	if err != nil {
		return err
	}
	return writeOutput(a.flags.output, a.stdout, output)
}

func (a *app) decodeRequest(cfg config.Config) (orchestrator.Request, error) {
	req := orchestrator.Request{
		Renderer: cfg.Renderer,
		RenderOptions: render.RenderOptions{
			Separator:          cfg.Output.Separator,
			Title:              cfg.Output.Title,
			IncludeConstraints: cfg.Output.IncludeConstraints,
		},
	}

	if cfg.Dictionary == "" {
		return orchestrator.Request{}, usagef("a dictionary is required (--dict or WORDCIPHER_DICTIONARY)")
	}
	if cfg.Dictionary == source.StdinLocation && cfg.PuzzleFile == source.StdinLocation {
		return orchestrator.Request{}, usagef("stdin can feed only one of --puzzle-file and --dict")
	}
	dict, err := source.Parse(cfg.Dictionary, a.stdin)
	if err != nil {
		return orchestrator.Request{}, usagef("dictionary: %w", err)
	}
	req.DictionarySource = dict

	puzzle, err := a.puzzleSource(cfg)
	if err != nil {
		return orchestrator.Request{}, err
	}
	req.Puzzle = puzzle
	return req, nil
}

// puzzleSource resolves the configured puzzle, falling back to the built-in
// example.
func (a *app) puzzleSource(cfg config.Config) (source.Source, error) {
	switch {
	case cfg.PuzzleFile != "":
		src, err := source.Parse(cfg.PuzzleFile, a.stdin)
		if err != nil {
			return nil, usagef("puzzle: %w", err)
		}
		return src, nil
	case cfg.Puzzle != "":
		return source.FromString(cfg.Puzzle), nil
	default:
		return source.FromString(segment.ExamplePuzzle), nil
	}
}

func newLoader(cfg config.Config) source.Loader {
	var options []source.LoaderOption
	if !cfg.HTTP.Disabled {
		options = append(options, source.WithHTTPFallback(cfg.HTTP.Timeout))
	}
	return internalLoader.New(source.NewLoaderOptions(options...))
}
