package source

import (
	"io"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	stdin := strings.NewReader("from stdin")

	cases := []struct {
		raw      string
		kind     Kind
		location string
	}{
		{raw: "-", kind: KindReader, location: StdinLocation},
		{raw: "https://example.com/words.txt", kind: KindURL, location: "https://example.com/words.txt"},
		{raw: "http://localhost:8080/p", kind: KindURL, location: "http://localhost:8080/p"},
		{raw: " ./data/../words.txt ", kind: KindFile, location: "words.txt"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			src, err := Parse(tc.raw, stdin)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if src.Kind() != tc.kind || src.Location() != tc.location {
				t.Fatalf("got %s %q, want %s %q", src.Kind(), src.Location(), tc.kind, tc.location)
			}
		})
	}

	if _, err := Parse("  ", stdin); err == nil {
		t.Fatalf("expected error for empty reference")
	}
}

func TestContentSources(t *testing.T) {
	src := FromString("inline text")
	content, ok := src.(Content)
	if !ok {
		t.Fatalf("inline sources should carry content")
	}
	data, err := io.ReadAll(content.Reader())
	if err != nil || string(data) != "inline text" {
		t.Fatalf("read inline: %q %v", data, err)
	}

	if _, ok := FromFile("words.txt").(Content); ok {
		t.Fatalf("file sources resolve through the loader")
	}
}

func TestParseURL_Invalid(t *testing.T) {
	if _, err := ParseURL("not a url"); err == nil {
		t.Fatalf("expected invalid URL error")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("FromURL should panic on invalid input")
		}
	}()
	FromURL("")
}

func TestNewDocument(t *testing.T) {
	if _, err := NewDocument(nil, []byte("x")); err == nil {
		t.Fatalf("expected error without a source")
	}

	raw := []byte("abc")
	doc, err := NewDocument(FromString("abc"), raw)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	raw[0] = 'z'
	if doc.Text() != "abc" {
		t.Fatalf("document must not alias the caller's buffer")
	}
}
