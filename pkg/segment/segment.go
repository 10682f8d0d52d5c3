// Package segment extracts puzzle segments from raw puzzle text. A segment is
// a run of cipher symbols, whitespace, and a metadata block shaped like
// "[33x11x020][5]".
package segment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

const metadataPattern = `\s\[\d+x\d+x\d+\]\[\d+\]`

// Tokenizer finds segments for a given cipher alphabet.
type Tokenizer struct {
	cipher  *alphabet.Table
	pattern *regexp.Regexp
}

// New builds a tokenizer for the supplied cipher table. A nil table selects
// alphabet.Cipher().
func New(cipher *alphabet.Table) (*Tokenizer, error) {
	if cipher == nil {
		cipher = alphabet.Cipher()
	}
	pattern, err := regexp.Compile(symbolClass(cipher.Symbols()) + "+" + metadataPattern)
	if err != nil {
		return nil, fmt.Errorf("segment: compile pattern: %w", err)
	}
	return &Tokenizer{cipher: cipher, pattern: pattern}, nil
}

// Default returns a tokenizer for the standard cipher alphabet.
func Default() *Tokenizer {
	t, err := New(nil)
	if err != nil {
		panic(err)
	}
	return t
}

// Pattern exposes the compiled expression, mainly for diagnostics.
func (t *Tokenizer) Pattern() string {
	return t.pattern.String()
}

// Scan returns a Scanner that yields segments lazily, left to right.
func (t *Tokenizer) Scan(text string) *Scanner {
	return &Scanner{pattern: t.pattern, text: text}
}

// Tokenize collects every segment in text. Text without segments yields an
// empty slice and no error.
func (t *Tokenizer) Tokenize(text string) ([]model.Segment, error) {
	sc := t.Scan(text)
	var out []model.Segment
	for sc.Next() {
		out = append(out, sc.Segment())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Scanner walks puzzle text one segment at a time. Use it like bufio.Scanner:
// loop on Next, read Segment, then check Err.
type Scanner struct {
	pattern *regexp.Regexp
	text    string
	pos     int
	index   int
	current model.Segment
	err     error
	done    bool
}

// Next advances to the following segment. It returns false once the text is
// exhausted or a segment fails to split.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	loc := s.pattern.FindStringIndex(s.text[s.pos:])
	if loc == nil {
		s.done = true
		return false
	}

	start, end := s.pos+loc[0], s.pos+loc[1]
	s.pos = end

	seg, err := Split(s.text[start:end])
	if err != nil {
		var merr *model.Error
		if errors.As(err, &merr) {
			err = merr.WithOffset(start)
		}
		s.err = err
		s.done = true
		return false
	}
	seg.Index = s.index
	seg.Offset = start
	s.index++
	s.current = seg
	return true
}

// Segment returns the segment produced by the last successful Next.
func (s *Scanner) Segment() model.Segment {
	return s.current
}

// Err returns the first error met while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// Split divides a matched chunk on its first space into the encoded symbols
// and the metadata block. A chunk without a space is a tokenize error.
func Split(chunk string) (model.Segment, error) {
	encoded, metadata, ok := strings.Cut(chunk, " ")
	if !ok {
		return model.Segment{}, model.NewError(model.KindTokenize, chunk, errors.New("expected a space between symbols and metadata"))
	}
	if encoded == "" || metadata == "" {
		return model.Segment{}, model.NewError(model.KindTokenize, chunk, errors.New("empty symbols or metadata"))
	}
	return model.Segment{Encoded: encoded, Metadata: metadata, Offset: -1}, nil
}

func symbolClass(symbols string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if !isAlnum(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(']')
	return b.String()
}

func isAlnum(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
