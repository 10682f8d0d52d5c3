// Package wordcipher decodes cipher puzzles whose segments pair a run of cipher
// symbols with bracketed numeric constraints, returning the dictionary words
// that satisfy each segment.
package wordcipher

import (
	"context"

	"github.com/goliatone/go-wordcipher/pkg/dictionary"
	"github.com/goliatone/go-wordcipher/pkg/model"
	"github.com/goliatone/go-wordcipher/pkg/orchestrator"
	"github.com/goliatone/go-wordcipher/pkg/render"
	"github.com/goliatone/go-wordcipher/pkg/segment"
	"github.com/goliatone/go-wordcipher/pkg/source"
)

// ExamplePuzzle is the reference six-segment puzzle.
const ExamplePuzzle = segment.ExamplePuzzle

// RenderOptions aliases render.RenderOptions for callers of Generate.
type RenderOptions = render.RenderOptions

// Result aliases model.Result.
type Result = model.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Decode matches puzzle against the given words and returns the match lists in
// segment order. It is the simplest entry point for in-memory inputs.
func Decode(ctx context.Context, puzzle string, words []string, options ...orchestrator.Option) ([][]string, error) {
	dict := dictionary.New(words...)
	result, err := orchestrator.New(options...).Decode(ctx, orchestrator.Request{
		Text:       puzzle,
		Dictionary: &dict,
	})
	if err != nil {
		return nil, err
	}
	return result.Words(), nil
}

// Generate loads the puzzle and dictionary sources and renders the result
// with the named renderer ("text" when empty).
func Generate(ctx context.Context, puzzle, dict source.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Puzzle:           puzzle,
		DictionarySource: dict,
		Renderer:         rendererName,
	})
}
