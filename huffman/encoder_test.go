package huffman

import (
	"errors"
	"testing"
)

func TestEncoder(t *testing.T) {
	e := NewEncoder(makeTestTable())

	if e.MinSize() != 1 || e.MaxSize() != 4 {
		t.Errorf("expected sizes 1 .. 4, got %d .. %d", e.MinSize(), e.MaxSize())
	}

	hc, found := e.EncodeSymbol(0)
	if !found || hc != MakeCode(4, 0xc) {
		t.Errorf("expected \"1100\", got %s (found=%v)", hc, found)
	}
	if _, found := e.EncodeSymbol(6); found {
		t.Errorf("did not expect a code for symbol 6")
	}

	bits, err := e.Encode([]int{5, 0, 2, 5, 1, 4, 3})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expect := BitString("0" + "1100" + "100" + "0" + "1101" + "111" + "101")
	if bits != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, bits)
	}
}

func TestEncoder_SymbolNotInTable(t *testing.T) {
	e := NewEncoder(Table[rune]{'a': MakeCode(1, 0), 'b': MakeCode(1, 1)})

	_, err := e.Encode([]rune("abxa"))
	var lookupErr *SymbolNotInTableError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected SymbolNotInTableError, got %v", err)
	}
	if lookupErr.Symbol != 'x' || lookupErr.Offset != 2 {
		t.Errorf("expected symbol 'x' at offset 2, got %v at offset %d", lookupErr.Symbol, lookupErr.Offset)
	}
	expectMessage := "symbol 'x' at offset 2 has no code in the table"
	if actual := err.Error(); actual != expectMessage {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expectMessage, actual)
	}
}
