package segment

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

func TestTokenize_ExamplePuzzle(t *testing.T) {
	segments, err := Default().Tokenize(ExamplePuzzle)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	type pair struct{ Encoded, Metadata string }
	var got []pair
	for _, seg := range segments {
		got = append(got, pair{seg.Encoded, seg.Metadata})
	}
	want := []pair{
		{"<<<**.>..>>**.", "[33x11x020][5]"},
		{".*>**<**-.<..><>.", "[41x13x011][5]"},
		{"<>..<**-<>", "[28x9x08][1]"},
		{"><>...-<<*..>-**>*.", "[49x16x014][14]"},
		{"..*.*.**-*>...", "[26x6x02][2]"},
		{"*<..**...<>>.>.<*>*>*>><.", "[60x12x06][4]"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}

	for i, seg := range segments {
		if seg.Index != i {
			t.Fatalf("segment %d has index %d", i, seg.Index)
		}
		if ExamplePuzzle[seg.Offset:seg.Offset+len(seg.Encoded)] != seg.Encoded {
			t.Fatalf("segment %d offset %d does not point at its symbols", i, seg.Offset)
		}
	}
}

func TestTokenize_NoSegments(t *testing.T) {
	cases := []string{
		"",
		"plain prose without any cipher",
		"<<<**. [33x11][5]",
		"<<<**.[33x11x020][5]",
		"abc [1x1x1][1]",
	}
	for _, text := range cases {
		segments, err := Default().Tokenize(text)
		if err != nil {
			t.Fatalf("tokenize %q: %v", text, err)
		}
		if len(segments) != 0 {
			t.Fatalf("tokenize %q: expected no segments, got %v", text, segments)
		}
	}
}

func TestTokenize_SkipsNoiseBetweenSegments(t *testing.T) {
	text := "intro <<< [9x3x03][1]\n  and then *- [7x3x02][2] outro"
	segments, err := Default().Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[1].Encoded != "*-" || segments[1].Metadata != "[7x3x02][2]" {
		t.Fatalf("unexpected second segment: %+v", segments[1])
	}
}

func TestScan_TabSeparatorIsTokenizeError(t *testing.T) {
	text := "<<< [9x3x03][1]..\t[4x2x01][1]"
	sc := Default().Scan(text)

	if !sc.Next() {
		t.Fatalf("expected first segment, err=%v", sc.Err())
	}
	if sc.Next() {
		t.Fatalf("expected scanning to stop at the tab separated segment")
	}

	err := sc.Err()
	if !errors.Is(err, model.ErrTokenize) {
		t.Fatalf("expected ErrTokenize, got %v", err)
	}
	var merr *model.Error
	if !errors.As(err, &merr) || merr.Offset != 15 {
		t.Fatalf("expected offset 15, got %+v", merr)
	}
	if sc.Next() {
		t.Fatalf("scanner must stay exhausted after an error")
	}
}

func TestNew_CustomCipherAlphabet(t *testing.T) {
	tok, err := New(alphabet.MustNew("digits-free", "#+~"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	segments, err := tok.Tokenize("#+~ [6x2x02][1] <<< [9x3x03][1]")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(segments) != 1 || segments[0].Encoded != "#+~" {
		t.Fatalf("unexpected segments: %+v", segments)
	}
}

func TestSplit(t *testing.T) {
	seg, err := Split("<<< [9x3x03][1]")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if seg.Encoded != "<<<" || seg.Metadata != "[9x3x03][1]" {
		t.Fatalf("unexpected split: %+v", seg)
	}

	if _, err := Split("<<<[9x3x03][1]"); !errors.Is(err, model.ErrTokenize) {
		t.Fatalf("expected ErrTokenize, got %v", err)
	}
}
