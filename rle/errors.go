package rle

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned when the input or stream is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// DigitSymbolError is returned by Encode when the input contains a decimal
// digit, which could not be told apart from a run count.
type DigitSymbolError struct {
	Offset int
	Symbol rune
}

func (err *DigitSymbolError) Error() string {
	return fmt.Sprintf("cannot run-length encode digit %q at offset %d", err.Symbol, err.Offset)
}

// RunLengthOverflowError is returned when a run is longer than MaxRunLength.
type RunLengthOverflowError struct {
	Offset int
	Count  string
}

func (err *RunLengthOverflowError) Error() string {
	return fmt.Sprintf("run length %s at offset %d exceeds the maximum of %d", err.Count, err.Offset, MaxRunLength)
}

// MalformedStreamError is returned by Decode when the stream does not follow
// the <symbol><count> grammar.
type MalformedStreamError struct {
	Offset int
	Reason string
}

func (err *MalformedStreamError) Error() string {
	return fmt.Sprintf("malformed run-length stream at offset %d: %s", err.Offset, err.Reason)
}

var (
	_ error = (*DigitSymbolError)(nil)
	_ error = (*RunLengthOverflowError)(nil)
	_ error = (*MalformedStreamError)(nil)
)
