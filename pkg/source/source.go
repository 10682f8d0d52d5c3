package source

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where a document originates so loaders can operate on
// files, fs.FS entries, URLs, or in-memory payloads without leaking details.
type Source interface {
	Kind() Kind
	Location() string
}

// Content is implemented by sources that carry their payload with them
// (stdin, inline text) instead of pointing at a location.
type Content interface {
	Source
	Reader() io.Reader
}

// Kind enumerates the loader modalities.
type Kind string

const (
	KindFile   Kind = "file"
	KindFS     Kind = "fs"
	KindURL    Kind = "url"
	KindReader Kind = "reader"
	KindInline Kind = "inline"
)

// StdinLocation is the conventional location for standard input.
const StdinLocation = "-"

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() Kind       { return KindFile }

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() Kind       { return KindFS }

// FromFS returns a Source identifying a resource inside the loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() Kind       { return KindURL }

// ParseURL validates raw and returns a URL Source.
func ParseURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("source: empty URL")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// FromURL parses the supplied URL string and returns a Source. It panics if
// the URL is invalid to surface configuration mistakes early.
func FromURL(raw string) Source {
	src, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return src
}

type readerSource struct {
	name string
	r    io.Reader
}

func (s readerSource) Location() string  { return s.name }
func (s readerSource) Kind() Kind        { return KindReader }
func (s readerSource) Reader() io.Reader { return s.r }

// FromReader wraps an io.Reader such as os.Stdin. name is used in messages;
// an empty name becomes StdinLocation.
func FromReader(name string, r io.Reader) Source {
	if name == "" {
		name = StdinLocation
	}
	return readerSource{name: name, r: r}
}

type inlineSource struct {
	text string
}

func (s inlineSource) Location() string  { return "inline" }
func (s inlineSource) Kind() Kind        { return KindInline }
func (s inlineSource) Reader() io.Reader { return strings.NewReader(s.text) }

// FromString wraps literal text.
func FromString(text string) Source {
	return inlineSource{text: text}
}

// Parse maps a command-line style reference to a Source: "-" reads stdin,
// http(s) URLs are fetched, anything else is a file path.
func Parse(raw string, stdin io.Reader) (Source, error) {
	ref := strings.TrimSpace(raw)
	switch {
	case ref == "":
		return nil, fmt.Errorf("source: empty reference")
	case ref == StdinLocation:
		return FromReader(StdinLocation, stdin), nil
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		return ParseURL(ref)
	default:
		return FromFile(ref), nil
	}
}
