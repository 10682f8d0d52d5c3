// Package alphabet provides the fixed ordinal tables used to score cipher
// symbols and dictionary letters. Tables are immutable once built and safe to
// share between goroutines.
package alphabet

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-wordcipher/pkg/model"
)

const (
	// NaturalSymbols is the declared order of the natural alphabet.
	NaturalSymbols = "abcdefghijklmnopqrstuvwxyz"
	// CipherSymbols is the declared order of the cipher alphabet.
	CipherSymbols = ".*<>-"
)

var (
	natural = MustNew("natural", NaturalSymbols)
	cipher  = MustNew("cipher", CipherSymbols)
)

// Table maps single-byte symbols to their 1-based position in a declared
// ordering. Lookups index a fixed array, so unknown symbols cost a bounds
// check rather than a hash.
type Table struct {
	name    string
	symbols string
	index   [256]uint8
}

// Natural returns the a..z table (a=1 ... z=26).
func Natural() *Table {
	return natural
}

// Cipher returns the five-symbol cipher table (.=1 *=2 <=3 >=4 -=5).
func Cipher() *Table {
	return cipher
}

// New builds a table from the declared symbol order. Symbols must be non-empty,
// single-byte, and distinct; at most 255 are allowed.
func New(name, symbols string) (*Table, error) {
	if symbols == "" {
		return nil, errors.New("alphabet: symbols are required")
	}
	if len(symbols) > 255 {
		return nil, fmt.Errorf("alphabet: %s: too many symbols (%d)", name, len(symbols))
	}

	t := &Table{name: name, symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		b := symbols[i]
		if t.index[b] != 0 {
			return nil, fmt.Errorf("alphabet: %s: duplicate symbol %q", name, b)
		}
		t.index[b] = uint8(i + 1)
	}
	return t, nil
}

// MustNew panics when New fails. Useful for package-level tables.
func MustNew(name, symbols string) *Table {
	t, err := New(name, symbols)
	if err != nil {
		panic(err)
	}
	return t
}

// Name identifies the table in error messages.
func (t *Table) Name() string {
	return t.name
}

// Symbols returns the declared ordering.
func (t *Table) Symbols() string {
	return t.symbols
}

// Size returns the number of symbols in the table.
func (t *Table) Size() int {
	return len(t.symbols)
}

// Contains reports whether b belongs to the table.
func (t *Table) Contains(b byte) bool {
	return t.index[b] != 0
}

// Ordinal returns the 1-based position of b. Symbols outside the table yield
// a model.Error of kind KindUnknownSymbol.
func (t *Table) Ordinal(b byte) (int, error) {
	ord := t.index[b]
	if ord == 0 {
		return 0, model.NewError(model.KindUnknownSymbol, string(b), fmt.Errorf("not in %s alphabet", t.name))
	}
	return int(ord), nil
}

// Ordinals maps every byte of s, failing on the first unknown symbol. The
// error offset is the byte position inside s.
func (t *Table) Ordinals(s string) ([]int, error) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		ord, err := t.Ordinal(s[i])
		if err != nil {
			var merr *model.Error
			if errors.As(err, &merr) {
				return nil, merr.WithOffset(i)
			}
			return nil, err
		}
		out[i] = ord
	}
	return out, nil
}

// Letter returns the symbol at the given ordinal.
func (t *Table) Letter(ordinal int) (byte, bool) {
	if ordinal < 1 || ordinal > len(t.symbols) {
		return 0, false
	}
	return t.symbols[ordinal-1], true
}

// ValidOrdinal reports whether ordinal addresses a symbol in the table.
func (t *Table) ValidOrdinal(ordinal int) bool {
	return ordinal >= 1 && ordinal <= len(t.symbols)
}
