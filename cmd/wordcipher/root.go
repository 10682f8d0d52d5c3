package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-wordcipher/internal/config"
	"github.com/goliatone/go-wordcipher/internal/logging"
	"github.com/goliatone/go-wordcipher/internal/prompt"
)

type flags struct {
	configPath  string
	puzzle      string
	puzzleFile  string
	dictionary  string
	renderer    string
	output      string
	separator   string
	title       string
	constraints bool
	interactive bool
	verbose     bool
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	driver prompt.Driver

	flags  flags
	cfg    *config.Config
	logger *zap.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		driver: prompt.NewSurveyDriver(),
		logger: zap.NewNop(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordcipher",
		Short: "Decode cipher-symbol puzzles against a word list",
		Long: `wordcipher decodes puzzles made of segments such as

  <<<**.>..>>**. [33x11x020][5]

Each segment is a run of cipher symbols (. * < > -) followed by its word
value, average letter value, first letter value and lowest letter value.
Every dictionary word satisfying a segment's constraints is printed, one
block per segment.

Running without a subcommand is the same as "wordcipher decode". When no
puzzle is given the built-in example puzzle is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runDecode,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return asUsage(err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML config file (or set "+config.PathEnv+")")
	pf.StringVarP(&a.flags.puzzle, "puzzle", "p", "", "Puzzle text")
	pf.StringVarP(&a.flags.puzzleFile, "puzzle-file", "f", "", "Puzzle file, URL, or - for stdin")
	pf.StringVarP(&a.flags.dictionary, "dict", "d", "", "Dictionary file, URL, or - for stdin")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")

	decode := a.decodeCommand()
	root.Flags().AddFlagSet(decode.Flags())

	root.AddCommand(decode)
	root.AddCommand(a.segmentsCommand())
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// setup loads configuration, overlays explicitly set flags and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return asUsage(err)
	}

	set := cmd.Flags()
	if set.Changed("puzzle") {
		cfg.Puzzle = a.flags.puzzle
	}
	if set.Changed("puzzle-file") {
		cfg.PuzzleFile = a.flags.puzzleFile
	}
	if set.Changed("dict") {
		cfg.Dictionary = a.flags.dictionary
	}
	if set.Changed("renderer") {
		cfg.Renderer = a.flags.renderer
	}
	if set.Changed("separator") {
		cfg.Output.Separator = a.flags.separator
	}
	if set.Changed("title") {
		cfg.Output.Title = a.flags.title
	}
	if set.Changed("constraints") {
		cfg.Output.IncludeConstraints = a.flags.constraints
	}
	if err := cfg.Validate(); err != nil {
		return usagef("config: %w", err)
	}

	logger, err := logging.New(cfg.Log, a.flags.verbose)
	if err != nil {
		return asUsage(err)
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("renderer", cfg.Renderer),
		zap.Bool("http_disabled", cfg.HTTP.Disabled),
	)
	return nil
}

func (a *app) requireConfig() error {
	if a.cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	return nil
}
