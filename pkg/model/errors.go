package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies decode failures.
type ErrorKind string

const (
	// KindTokenize marks a matched segment that cannot be split into its
	// encoded and metadata halves.
	KindTokenize ErrorKind = "tokenize"
	// KindMetadata marks malformed bracketed metadata.
	KindMetadata ErrorKind = "metadata"
	// KindUnknownSymbol marks a lookup of a character outside an alphabet.
	KindUnknownSymbol ErrorKind = "unknown_symbol"
)

var (
	ErrTokenize      = errors.New("malformed segment")
	ErrMetadata      = errors.New("malformed metadata")
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Error is the single structured failure raised by the decode stages. All
// kinds are unrecoverable for the run that produced them.
type Error struct {
	Kind ErrorKind
	// Input is the offending text: the segment, the metadata block, or the
	// symbol that failed lookup.
	Input string
	// Offset is the byte offset of Input within the puzzle text, or -1 when
	// unknown.
	Offset int
	// Err carries the underlying cause, if any.
	Err error
}

// NewError builds an Error with an unknown offset.
func NewError(kind ErrorKind, input string, cause error) *Error {
	return &Error{Kind: kind, Input: input, Offset: -1, Err: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s %q", e.sentinel(), e.Input)
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind so callers can use errors.Is
// with ErrTokenize, ErrMetadata or ErrUnknownSymbol.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.sentinel()
}

// WithOffset returns a copy of the error anchored at the given offset.
func (e *Error) WithOffset(offset int) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Offset = offset
	return &clone
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindTokenize:
		return ErrTokenize
	case KindMetadata:
		return ErrMetadata
	case KindUnknownSymbol:
		return ErrUnknownSymbol
	default:
		return errors.New(string(e.Kind))
	}
}

// KindOf reports the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var target *Error
	if errors.As(err, &target) && target != nil {
		return target.Kind, true
	}
	return "", false
}
