// Package metadata decodes the bracketed "[W x A x F][L]" block attached to
// each puzzle segment into a model.Constraint.
package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

// Decoder validates ordinal fields against a natural alphabet.
type Decoder struct {
	natural *alphabet.Table
}

// NewDecoder returns a decoder bound to the given natural alphabet. A nil
// table selects alphabet.Natural().
func NewDecoder(natural *alphabet.Table) *Decoder {
	if natural == nil {
		natural = alphabet.Natural()
	}
	return &Decoder{natural: natural}
}

var defaultDecoder = NewDecoder(nil)

// Decode parses metadata with the default natural alphabet.
func Decode(metadata string) (model.Constraint, error) {
	return defaultDecoder.Decode(metadata)
}

// Decode parses a block such as "[33x11x020][5]". Fields are plain decimal
// integers, so "020" reads as 20. Any structural or numeric problem returns a
// model.Error of kind KindMetadata.
func (d *Decoder) Decode(metadata string) (model.Constraint, error) {
	fail := func(format string, args ...any) (model.Constraint, error) {
		return model.Constraint{}, model.NewError(model.KindMetadata, metadata, fmt.Errorf(format, args...))
	}

	groups := strings.Split(metadata, "]")
	if len(groups) != 3 {
		return fail("expected two bracketed groups")
	}
	if groups[2] != "" {
		return fail("unexpected trailing data %q", groups[2])
	}

	primary, ok := strings.CutPrefix(groups[0], "[")
	if !ok {
		return fail("first group must start with '['")
	}
	lowest, ok := strings.CutPrefix(groups[1], "[")
	if !ok {
		return fail("second group must start with '['")
	}

	fields := strings.Split(primary, "x")
	if len(fields) != 3 {
		return fail("first group has %d fields, want 3", len(fields))
	}

	names := [...]string{"word value", "average", "first value"}
	var values [3]int
	for i, raw := range fields {
		v, err := parseField(raw)
		if err != nil {
			return fail("%s: %w", names[i], err)
		}
		values[i] = v
	}
	lowestValue, err := parseField(lowest)
	if err != nil {
		return fail("lowest value: %w", err)
	}

	c := model.Constraint{
		WordValue:   values[0],
		Average:     values[1],
		FirstValue:  values[2],
		LowestValue: lowestValue,
	}
	if c.Average == 0 {
		return fail("average must be non-zero")
	}
	if !d.natural.ValidOrdinal(c.FirstValue) {
		return fail("first value %d outside 1..%d", c.FirstValue, d.natural.Size())
	}
	if !d.natural.ValidOrdinal(c.LowestValue) {
		return fail("lowest value %d outside 1..%d", c.LowestValue, d.natural.Size())
	}
	c.Size = c.WordValue / c.Average
	return c, nil
}

var errEmptyField = errors.New("empty field")

func parseField(raw string) (int, error) {
	if raw == "" {
		return 0, errEmptyField
	}
	// ParseUint rejects signs and whitespace, and reads leading zeros as
	// decimal digits.
	v, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return int(v), nil
}
