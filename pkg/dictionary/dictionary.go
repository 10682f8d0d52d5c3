// Package dictionary holds the ordered candidate word list searched by the
// matcher.
package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-wordcipher/pkg/source"
)

// Dictionary is an ordered, read-only list of candidate words. Order is
// preserved and duplicates are kept.
type Dictionary struct {
	words []string
}

// New builds a dictionary from the given words.
func New(words ...string) Dictionary {
	return Dictionary{words: append([]string(nil), words...)}
}

// Parse splits newline-delimited text into words. Lines are kept verbatim, so
// a trailing newline yields a final empty candidate.
func Parse(text string) Dictionary {
	return Dictionary{words: strings.Split(text, "\n")}
}

// Load fetches src through loader and parses it.
func Load(ctx context.Context, loader source.Loader, src source.Source) (Dictionary, error) {
	if loader == nil {
		return Dictionary{}, fmt.Errorf("dictionary: loader is required")
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return Dictionary{}, fmt.Errorf("dictionary: %w", err)
	}
	return Parse(doc.Text()), nil
}

// Len returns the number of candidates.
func (d Dictionary) Len() int {
	return len(d.words)
}

// Word returns the i-th candidate.
func (d Dictionary) Word(i int) string {
	return d.words[i]
}

// Words returns a copy of the candidates.
func (d Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}
