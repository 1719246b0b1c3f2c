package huffman

// Encoder converts sequences of Symbols into bit strings using a Table.
type Encoder[S Symbol] struct {
	table   Table[S]
	minSize byte
	maxSize byte
}

// NewEncoder constructs an Encoder for the given Table.  The Table is not
// copied and must not be modified while the Encoder is in use.
func NewEncoder[S Symbol](table Table[S]) Encoder[S] {
	return Encoder[S]{
		table:   table,
		minSize: table.MinSize(),
		maxSize: table.MaxSize(),
	}
}

// EncodeSymbol returns the Code for a single Symbol.
func (e Encoder[S]) EncodeSymbol(symbol S) (Code, bool) {
	hc, found := e.table[symbol]
	return hc, found
}

// Encode concatenates the codes for each Symbol of seq, in order.
//
// If a Symbol has no Code, a *SymbolNotInTableError is returned.
//
func (e Encoder[S]) Encode(seq []S) (BitString, error) {
	buf := make([]byte, 0, len(seq)*int(e.minSize))
	for index, symbol := range seq {
		hc, found := e.table[symbol]
		if !found {
			return "", &SymbolNotInTableError{Symbol: symbol, Offset: index}
		}
		buf = hc.AppendTo(buf)
	}
	return BitString(buf), nil
}

// Table returns the Table used by this Encoder.
func (e Encoder[S]) Table() Table[S] {
	return e.table
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder[S]) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder[S]) MaxSize() byte {
	return e.maxSize
}
