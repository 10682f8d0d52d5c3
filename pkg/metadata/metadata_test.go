package metadata

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wordcipher/pkg/model"
)

func TestDecode_ExampleBlocks(t *testing.T) {
	cases := []struct {
		input string
		want  model.Constraint
	}{
		{"[33x11x020][5]", model.Constraint{WordValue: 33, Average: 11, FirstValue: 20, LowestValue: 5, Size: 3}},
		{"[41x13x011][5]", model.Constraint{WordValue: 41, Average: 13, FirstValue: 11, LowestValue: 5, Size: 3}},
		{"[28x9x08][1]", model.Constraint{WordValue: 28, Average: 9, FirstValue: 8, LowestValue: 1, Size: 3}},
		{"[49x16x014][14]", model.Constraint{WordValue: 49, Average: 16, FirstValue: 14, LowestValue: 14, Size: 3}},
		{"[26x6x02][2]", model.Constraint{WordValue: 26, Average: 6, FirstValue: 2, LowestValue: 2, Size: 4}},
		{"[60x12x06][4]", model.Constraint{WordValue: 60, Average: 12, FirstValue: 6, LowestValue: 4, Size: 5}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Decode(tc.input)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("constraint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_SizeIsFloorDivision(t *testing.T) {
	got, err := Decode("[33x11x5][5]")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Size != 3 {
		t.Fatalf("size = %d, want 3", got.Size)
	}

	got, err = Decode("[31x7x4][4]")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Size != 4 {
		t.Fatalf("size = %d, want 4", got.Size)
	}
}

func TestDecode_LeadingZerosAreDecimal(t *testing.T) {
	got, err := Decode("[0033x011x0009][005]")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := model.Constraint{WordValue: 33, Average: 11, FirstValue: 9, LowestValue: 5, Size: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("constraint mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"missing second group": "[33x11x020]",
		"no brackets":          "33x11x020 5",
		"two fields":           "[33x11][5]",
		"four fields":          "[33x11x2x1][5]",
		"non numeric":          "[33xAAx020][5]",
		"empty field":          "[33xx020][5]",
		"signed field":         "[+33x11x020][5]",
		"empty lowest":         "[33x11x020][]",
		"trailing data":        "[33x11x020][5]x",
		"zero average":         "[33x0x020][5]",
		"first value zero":     "[33x11x0][5]",
		"first value too big":  "[33x11x27][5]",
		"lowest value zero":    "[33x11x020][0]",
		"second group no open": "[33x11x020]5]",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(input)
			if !errors.Is(err, model.ErrMetadata) {
				t.Fatalf("Decode(%q) error = %v, want ErrMetadata", input, err)
			}
			var merr *model.Error
			if !errors.As(err, &merr) || merr.Input != input {
				t.Fatalf("error should carry the offending input, got %+v", merr)
			}
		})
	}
}
