package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	wordcipher "github.com/goliatone/go-wordcipher"
	"github.com/goliatone/go-wordcipher/pkg/model"
	"github.com/goliatone/go-wordcipher/pkg/orchestrator"
	"github.com/goliatone/go-wordcipher/pkg/render"
	"github.com/goliatone/go-wordcipher/pkg/source"
)

const snapshotRendererName = "result-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, result model.Result, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		puzzlePath = flag.String("puzzle", "", "puzzle file (the built-in example when empty)")
		dictPath   = flag.String("dict", "pkg/orchestrator/testdata/words.txt", "dictionary path")
		outputPath = flag.String("output", "pkg/orchestrator/testdata/example.golden.json", "output path for the serialized result")
	)
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	orch := wordcipher.NewOrchestrator(
		orchestrator.WithLoader(wordcipher.NewLoader()),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	)

	puzzle := source.FromString(wordcipher.ExamplePuzzle)
	if *puzzlePath != "" {
		puzzle = source.FromFile(*puzzlePath)
	}

	_, err := orch.Generate(ctx, orchestrator.Request{
		Puzzle:           puzzle,
		DictionarySource: source.FromFile(*dictPath),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot result: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote result snapshot to %s\n", *outputPath)
}
