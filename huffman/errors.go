package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet is returned when a Huffman tree is requested for a
// frequency table with no symbols in it.
var ErrEmptyAlphabet = errors.New("cannot build a Huffman tree for an empty alphabet")

// ErrNotPrefixCode is returned when a code table contains a code that is a
// prefix of another code (or two identical codes).
var ErrNotPrefixCode = errors.New("codes do not form a prefix code")

// ErrEmptyCode is returned when a code table assigns a zero-length code.
var ErrEmptyCode = errors.New("zero-length code")

// SymbolNotInTableError is returned when encoding a Symbol that has no Code.
type SymbolNotInTableError struct {
	Symbol interface{}
	Offset int
}

func (err *SymbolNotInTableError) Error() string {
	return fmt.Sprintf("symbol %s at offset %d has no code in the table", formatSymbol(err.Symbol), err.Offset)
}

// TruncatedStreamError is returned when a bit string ends partway through a
// code.
type TruncatedStreamError struct {
	// Offset is the position of the first unconsumed bit.
	Offset int

	// Pending holds the bits that did not complete a code.
	Pending Code
}

func (err *TruncatedStreamError) Error() string {
	return fmt.Sprintf("bit string ends inside a code: %d bits %s left over at offset %d", err.Pending.Size, err.Pending, err.Offset)
}

// CorruptStreamError is returned when a bit string contains a bit sequence
// that is not a prefix of any code in the table.
type CorruptStreamError struct {
	Offset  int
	Pending Code
}

func (err *CorruptStreamError) Error() string {
	return fmt.Sprintf("bits %s at offset %d do not match any code", err.Pending, err.Offset)
}

// InvalidBitError is returned when a bit string contains a character other
// than '0' or '1'.
type InvalidBitError struct {
	Offset int
	Char   byte
}

func (err *InvalidBitError) Error() string {
	return fmt.Sprintf("invalid bit %q at offset %d", err.Char, err.Offset)
}

var (
	_ error = (*SymbolNotInTableError)(nil)
	_ error = (*TruncatedStreamError)(nil)
	_ error = (*CorruptStreamError)(nil)
	_ error = (*InvalidBitError)(nil)
)
