// Package prompt collects decode inputs interactively when the CLI runs with
// --interactive and the configuration leaves them unset.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Answers holds the values gathered from the user. Exactly one of Puzzle,
// PuzzleFile or UseExample is set after a successful Ask.
type Answers struct {
	Puzzle     string
	PuzzleFile string
	UseExample bool
	Dictionary string
	Renderer   string
}

const (
	choiceExample = "Use the example puzzle"
	choiceText    = "Type or paste the puzzle text"
	choiceFile    = "Read the puzzle from a file or URL"
)

var puzzleChoices = []string{choiceExample, choiceText, choiceFile}

var errRequired = errors.New("a value is required")

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errRequired
	}
	return nil
}

// Ask prompts for every field of current that is still empty and returns the
// completed answers. Fields already set are kept without asking. renderers
// lists the selectable output formats.
func Ask(ctx context.Context, driver Driver, current Answers, renderers []string) (Answers, error) {
	if driver == nil {
		return Answers{}, errors.New("prompt: driver is required")
	}
	out := current

	if out.Puzzle == "" && out.PuzzleFile == "" && !out.UseExample {
		choice, err := driver.Select(ctx, SelectConfig{
			Message: "Puzzle input",
			Options: puzzleChoices,
		})
		if err != nil {
			return Answers{}, fmt.Errorf("prompt: puzzle input: %w", err)
		}

		switch choice {
		case 0:
			out.UseExample = true
		case 1:
			text, err := driver.TextArea(ctx, TextAreaConfig{
				Message: "Puzzle text",
				Help:    "Segments look like <<<**.>..>>**. [33x11x020][5]",
			})
			if err != nil {
				return Answers{}, fmt.Errorf("prompt: puzzle text: %w", err)
			}
			if strings.TrimSpace(text) == "" {
				return Answers{}, fmt.Errorf("prompt: puzzle text: %w", errRequired)
			}
			out.Puzzle = text
		case 2:
			path, err := driver.Input(ctx, InputConfig{
				Message:   "Puzzle file or URL",
				Help:      "Use - to read from stdin",
				Validator: required,
			})
			if err != nil {
				return Answers{}, fmt.Errorf("prompt: puzzle file: %w", err)
			}
			out.PuzzleFile = path
		default:
			return Answers{}, fmt.Errorf("prompt: puzzle input: unknown choice %d", choice)
		}
	}

	if out.Dictionary == "" {
		path, err := driver.Input(ctx, InputConfig{
			Message:   "Dictionary file or URL",
			Help:      "Newline-delimited word list, e.g. /usr/share/dict/words",
			Validator: required,
		})
		if err != nil {
			return Answers{}, fmt.Errorf("prompt: dictionary: %w", err)
		}
		out.Dictionary = path
	}

	if out.Renderer == "" && len(renderers) > 0 {
		idx, err := driver.Select(ctx, SelectConfig{
			Message: "Output format",
			Options: renderers,
		})
		if err != nil {
			return Answers{}, fmt.Errorf("prompt: output format: %w", err)
		}
		if idx < 0 || idx >= len(renderers) {
			return Answers{}, fmt.Errorf("prompt: output format: unknown choice %d", idx)
		}
		out.Renderer = renderers[idx]
	} else if out.Renderer != "" && len(renderers) > 0 && !slices.Contains(renderers, out.Renderer) {
		return Answers{}, fmt.Errorf("prompt: output format %q not in %v", out.Renderer, renderers)
	}

	if err := driver.Info(ctx, summary(out)); err != nil {
		return Answers{}, fmt.Errorf("prompt: %w", err)
	}
	return out, nil
}

func summary(a Answers) string {
	puzzle := "inline text"
	switch {
	case a.UseExample:
		puzzle = "example puzzle"
	case a.PuzzleFile != "":
		puzzle = a.PuzzleFile
	}
	return fmt.Sprintf("Decoding %s with %s (%s output)", puzzle, a.Dictionary, a.Renderer)
}
