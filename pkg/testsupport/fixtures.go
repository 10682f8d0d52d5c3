// Package testsupport holds fixture and golden-file helpers shared by the
// package tests. Goldens are rewritten when UPDATE_GOLDENS is set.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wordcipher/pkg/dictionary"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

// LoadDictionary reads a newline-delimited word list fixture. Testing helpers
// fail the test on error to keep table tests concise.
func LoadDictionary(t *testing.T, path string) dictionary.Dictionary {
	t.Helper()

	dict, err := LoadDictionaryFromPath(path)
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}
	return dict
}

// LoadDictionaryFromPath returns a Dictionary without requiring testing.T, so
// fixtures can be wired in setup functions.
func LoadDictionaryFromPath(path string) (dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Dictionary{}, errors.New("testsupport: dictionary path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return dictionary.Dictionary{}, fmt.Errorf("testsupport: read dictionary: %w", err)
	}
	return dictionary.Parse(string(data)), nil
}

// MustLoadResult loads a JSON golden into a Result.
func MustLoadResult(t *testing.T, path string) model.Result {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out model.Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
