package source

import "errors"

// Document wraps a loaded payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document. Empty payloads are valid: an empty
// puzzle has no segments and an empty dictionary has one empty candidate.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source: source is required")
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Text returns the payload as a string.
func (d Document) Text() string {
	return string(d.raw)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
