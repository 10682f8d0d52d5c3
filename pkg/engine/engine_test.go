package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

func dimeConstraint() model.Constraint {
	return model.Constraint{WordValue: 31, Average: 7, FirstValue: 4, LowestValue: 4, Size: 4}
}

func TestAccepts_LengthWindow(t *testing.T) {
	m := New()
	c := model.Constraint{WordValue: 33, Average: 11, FirstValue: 5, LowestValue: 5, Size: 3}

	cases := []struct {
		word       string
		lengthPass bool
	}{
		{"e", false},
		{"ee", true},
		{"eee", true},
		{"eeee", false},
	}
	for _, tc := range cases {
		_, rejected, err := m.Accepts(c, "", tc.word)
		if err != nil {
			t.Fatalf("accepts %q: %v", tc.word, err)
		}
		if got := rejected != FilterLength; got != tc.lengthPass {
			t.Fatalf("%q: length filter pass = %v, want %v (rejected by %q)", tc.word, got, tc.lengthPass, rejected)
		}
	}
}

func TestAccepts_FilterCascade(t *testing.T) {
	m := New()

	cases := []struct {
		name       string
		constraint model.Constraint
		encoded    string
		word       string
		rejected   FilterName
	}{
		{name: "dime matches", constraint: dimeConstraint(), word: "dime"},
		{name: "dime matches with bound", constraint: dimeConstraint(), encoded: "<.>", word: "dime"},
		{
			name:       "word value off by one",
			constraint: model.Constraint{WordValue: 32, Average: 7, FirstValue: 4, LowestValue: 4, Size: 4},
			word:       "dime",
			rejected:   FilterValue,
		},
		{
			name:       "average mismatch",
			constraint: model.Constraint{WordValue: 31, Average: 8, FirstValue: 4, LowestValue: 4, Size: 4},
			word:       "dime",
			rejected:   FilterValue,
		},
		{
			name:       "letters below lowest value",
			constraint: model.Constraint{WordValue: 31, Average: 7, FirstValue: 4, LowestValue: 13, Size: 4},
			word:       "dime",
			rejected:   FilterMinimum,
		},
		{
			name:       "lowest letter never used",
			constraint: model.Constraint{WordValue: 31, Average: 7, FirstValue: 4, LowestValue: 3, Size: 4},
			word:       "dime",
			rejected:   FilterLowestUsed,
		},
		{
			name:       "wrong first letter",
			constraint: model.Constraint{WordValue: 31, Average: 7, FirstValue: 5, LowestValue: 4, Size: 4},
			word:       "dime",
			rejected:   FilterFirstLetter,
		},
		{
			name:       "second letter below bound",
			constraint: model.Constraint{WordValue: 37, Average: 9, FirstValue: 4, LowestValue: 1, Size: 4},
			encoded:    "-<",
			word:       "dams",
			rejected:   FilterSecondLetter,
		},
		{
			name:       "second letter bound defaults to one",
			constraint: model.Constraint{WordValue: 37, Average: 9, FirstValue: 4, LowestValue: 1, Size: 4},
			encoded:    "-",
			word:       "dams",
		},
		{
			name:       "character outside the alphabet",
			constraint: dimeConstraint(),
			word:       "di'e",
			rejected:   FilterMinimum,
		},
		{
			name:       "uppercase is outside the alphabet",
			constraint: dimeConstraint(),
			word:       "dIme",
			rejected:   FilterMinimum,
		},
		{
			name:       "empty candidate",
			constraint: model.Constraint{WordValue: 4, Average: 4, FirstValue: 4, LowestValue: 4, Size: 1},
			word:       "",
			rejected:   FilterFirstLetter,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, rejected, err := m.Accepts(tc.constraint, tc.encoded, tc.word)
			if err != nil {
				t.Fatalf("accepts: %v", err)
			}
			if rejected != tc.rejected {
				t.Fatalf("rejected by %q, want %q", rejected, tc.rejected)
			}
			if ok != (tc.rejected == "") {
				t.Fatalf("ok = %v with rejection %q", ok, rejected)
			}
		})
	}
}

func TestMinSecondValue(t *testing.T) {
	cases := []struct {
		name     string
		first    int
		ordinals []int
		want     int
	}{
		// 6 -> 1 -> -4, so the ordinal read next (1) is the bound.
		{name: "overshoot", first: 6, ordinals: []int{5, 5, 1, 2}, want: 1},
		// 20 is spent exactly after nine symbols; the tenth (4) starts the
		// second letter.
		{name: "exact spend", first: 20, ordinals: []int{3, 3, 3, 2, 2, 1, 4, 1, 1, 4, 4, 2, 2, 1}, want: 4},
		{name: "second example segment", first: 11, ordinals: []int{1, 2, 4, 2, 2, 3, 2, 2, 5, 1, 3, 1, 1, 4, 3, 4, 1}, want: 3},
		{name: "never drops", first: 100, ordinals: []int{1, 2, 3}, want: 1},
		{name: "drops on last symbol", first: 3, ordinals: []int{1, 2}, want: 1},
		{name: "empty sequence", first: 5, ordinals: nil, want: 1},
		{name: "zero first value", first: 0, ordinals: []int{4, 2}, want: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MinSecondValue(tc.first, tc.ordinals); got != tc.want {
				t.Fatalf("MinSecondValue(%d, %v) = %d, want %d", tc.first, tc.ordinals, got, tc.want)
			}
		})
	}
}

func TestMatch_PreservesOrderAndDuplicates(t *testing.T) {
	m := New()
	c := model.Constraint{WordValue: 33, Average: 11, FirstValue: 20, LowestValue: 5, Size: 3}
	words := Slice{"thy", "the", "tea", "the", "", "them", "tee"}

	got, err := m.Match(c, "<<<**.>..>>**.", words)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if diff := cmp.Diff([]string{"the", "the"}, got.Words); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}

	wantStats := Stats{
		Candidates: 7,
		Matched:    2,
		MinSecond:  4,
		Rejected: map[FilterName]int{
			FilterLowestUsed: 1,
			FilterMinimum:    1,
			FilterLength:     2,
			FilterValue:      1,
		},
	}
	if diff := cmp.Diff(wantStats, got.Stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_NoCandidates(t *testing.T) {
	got, err := New().Match(dimeConstraint(), "<.>", nil)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if got.Words == nil || len(got.Words) != 0 {
		t.Fatalf("expected an empty, non-nil word list, got %#v", got.Words)
	}
}

func TestMatch_UnknownCipherSymbol(t *testing.T) {
	_, err := New().Match(dimeConstraint(), "<?>", Slice{"dime"})
	if !errors.Is(err, model.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestMatch_CustomAlphabets(t *testing.T) {
	cipher := alphabet.MustNew("binary", "01")
	m := New(WithCipher(cipher))

	got, err := m.Match(dimeConstraint(), "0110", Slice{"dime"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got.Words) != 1 {
		t.Fatalf("expected dime to match, got %v", got.Words)
	}

	if _, err := m.Match(dimeConstraint(), "<.>", Slice{"dime"}); !errors.Is(err, model.ErrUnknownSymbol) {
		t.Fatalf("standard symbols should be unknown to the binary cipher, got %v", err)
	}
}
