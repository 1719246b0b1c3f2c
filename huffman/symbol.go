package huffman

import (
	"cmp"
	"fmt"
	"strconv"
)

// Symbol is the constraint satisfied by every alphabet this package can
// encode.  The ordering is used to break ties between nodes of equal weight.
type Symbol interface {
	cmp.Ordered
}

// formatSymbol renders a symbol for dumps and error messages.  Runes and
// strings are quoted; everything else uses the default format.
//
// Note that rune and int32 are the same type, so int32 alphabets are
// rendered as character literals.
//
func formatSymbol(symbol interface{}) string {
	switch x := symbol.(type) {
	case rune:
		return strconv.QuoteRune(x)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprint(x)
	}
}
