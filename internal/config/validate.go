package config

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap/zapcore"
)

// ErrConflictingPuzzle reports that both an inline puzzle and a puzzle file
// were configured.
var ErrConflictingPuzzle = errors.New("puzzle and puzzle_file are mutually exclusive")

// Validate performs rule validation on the loaded configuration. Load calls
// it automatically; callers that overlay flags should call it again.
func (c *Config) Validate() error {
	if c.Puzzle != "" && c.PuzzleFile != "" {
		return ErrConflictingPuzzle
	}
	if !slices.Contains(Renderers, c.Renderer) {
		return fmt.Errorf("renderer must be one of %v (got %q)", Renderers, c.Renderer)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must be >= 0 (got %v)", c.HTTP.Timeout)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(LogFormats, l.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", LogFormats, l.Format)
	}
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	return nil
}
