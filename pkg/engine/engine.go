package engine

import (
	"fmt"

	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

// Candidates is the ordered word list the matcher scans. dictionary.Dictionary
// satisfies it; Slice adapts a plain []string.
type Candidates interface {
	Len() int
	Word(i int) string
}

// Slice adapts a []string to Candidates.
type Slice []string

func (s Slice) Len() int          { return len(s) }
func (s Slice) Word(i int) string { return s[i] }

// Stats records how the cascade disposed of the candidates for one segment.
type Stats struct {
	Candidates int
	Matched    int
	MinSecond  int
	Rejected   map[FilterName]int
}

// Match is the outcome for one segment: the surviving words in dictionary
// order plus the cascade statistics.
type Match struct {
	Words []string
	Stats Stats
}

// Option customises a Matcher.
type Option func(*Matcher)

// WithNatural overrides the letter table used to score candidate words.
func WithNatural(table *alphabet.Table) Option {
	return func(m *Matcher) {
		if table != nil {
			m.natural = table
		}
	}
}

// WithCipher overrides the symbol table used to read encoded segments.
func WithCipher(table *alphabet.Table) Option {
	return func(m *Matcher) {
		if table != nil {
			m.cipher = table
		}
	}
}

// Matcher applies the filter cascade. It holds no per-run state and can be
// shared.
type Matcher struct {
	natural *alphabet.Table
	cipher  *alphabet.Table
}

// New constructs a Matcher using the standard alphabets unless overridden.
func New(options ...Option) *Matcher {
	m := &Matcher{
		natural: alphabet.Natural(),
		cipher:  alphabet.Cipher(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Match returns the candidates that satisfy c for the given encoded symbols.
// The only error is an encoded symbol outside the cipher alphabet; an empty
// word list is a normal outcome.
func (m *Matcher) Match(c model.Constraint, encoded string, candidates Candidates) (Match, error) {
	ordinals, err := m.cipher.Ordinals(encoded)
	if err != nil {
		return Match{}, fmt.Errorf("engine: map %q: %w", encoded, err)
	}

	q := &query{
		constraint: c,
		minSecond:  MinSecondValue(c.FirstValue, ordinals),
		natural:    m.natural,
	}

	out := Match{
		Words: []string{},
		Stats: Stats{
			MinSecond: q.minSecond,
			Rejected:  make(map[FilterName]int, len(Filters)),
		},
	}
	if candidates == nil {
		return out, nil
	}

	out.Stats.Candidates = candidates.Len()
	for i := 0; i < candidates.Len(); i++ {
		word := candidates.Word(i)
		if rejected := q.check(word); rejected != "" {
			out.Stats.Rejected[rejected]++
			continue
		}
		out.Words = append(out.Words, word)
	}
	out.Stats.Matched = len(out.Words)
	return out, nil
}

// Accepts reports whether a single word satisfies c for the encoded symbols,
// and names the rejecting filter otherwise.
func (m *Matcher) Accepts(c model.Constraint, encoded, word string) (bool, FilterName, error) {
	ordinals, err := m.cipher.Ordinals(encoded)
	if err != nil {
		return false, "", fmt.Errorf("engine: map %q: %w", encoded, err)
	}
	q := &query{
		constraint: c,
		minSecond:  MinSecondValue(c.FirstValue, ordinals),
		natural:    m.natural,
	}
	rejected := q.check(word)
	return rejected == "", rejected, nil
}
