package alphabet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wordcipher/pkg/model"
)

func TestNatural_Ordinals(t *testing.T) {
	table := Natural()

	cases := map[byte]int{'a': 1, 'd': 4, 'e': 5, 'm': 13, 't': 20, 'z': 26}
	for symbol, want := range cases {
		got, err := table.Ordinal(symbol)
		if err != nil {
			t.Fatalf("Ordinal(%q): %v", symbol, err)
		}
		if got != want {
			t.Fatalf("Ordinal(%q) = %d, want %d", symbol, got, want)
		}
	}
	if table.Size() != 26 {
		t.Fatalf("Size() = %d", table.Size())
	}
}

func TestCipher_OrdinalsFollowDeclarationOrder(t *testing.T) {
	got, err := Cipher().Ordinals("<<<**.>..>>**.")
	if err != nil {
		t.Fatalf("Ordinals: %v", err)
	}
	want := []int{3, 3, 3, 2, 2, 1, 4, 1, 1, 4, 4, 2, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ordinals mismatch (-want +got):\n%s", diff)
	}

	dash, _ := Cipher().Ordinal('-')
	if dash != 5 {
		t.Fatalf("'-' = %d, want 5", dash)
	}
}

func TestTable_UnknownSymbol(t *testing.T) {
	_, err := Natural().Ordinal('A')
	if !errors.Is(err, model.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}

	_, err = Cipher().Ordinals("..x")
	var merr *model.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected *model.Error, got %T", err)
	}
	if merr.Input != "x" || merr.Offset != 2 {
		t.Fatalf("unexpected error detail: %+v", merr)
	}
}

func TestTable_Letter(t *testing.T) {
	letter, ok := Natural().Letter(20)
	if !ok || letter != 't' {
		t.Fatalf("Letter(20) = %q, %v", letter, ok)
	}
	if _, ok := Natural().Letter(0); ok {
		t.Fatalf("Letter(0) should be invalid")
	}
	if _, ok := Natural().Letter(27); ok {
		t.Fatalf("Letter(27) should be invalid")
	}
}

func TestNew_RejectsBadDeclarations(t *testing.T) {
	if _, err := New("empty", ""); err == nil {
		t.Fatalf("expected error for empty table")
	}
	if _, err := New("dup", "abca"); err == nil {
		t.Fatalf("expected error for duplicate symbol")
	}
}
