package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder converts bit strings back into sequences of Symbols.
type Decoder[S Symbol] struct {
	table      map[Code]decoderData[S]
	numSymbols int
	minSize    byte
	maxSize    byte
}

// NewDecoder inverts a Table into a Decoder.
//
// Every code and every proper prefix of every code gets an entry in the
// lookup map, so that a partial code can be recognized as such in a single
// lookup.  Building the map also checks the Table: zero-length codes,
// over-long codes, and codes that are prefixes of other codes are all
// rejected.  An empty Table is permitted; its Decoder only accepts the empty
// bit string.
//
func NewDecoder[S Symbol](table Table[S]) (*Decoder[S], error) {
	if len(table) == 0 {
		return &Decoder[S]{}, nil
	}

	numSymbols := uint32(len(table))

	// len(d.table) is approximately n×log2(n) when filled.
	numTableSlots := numSymbols * bitLength(numSymbols)

	d := &Decoder[S]{
		table:      make(map[Code]decoderData[S], numTableSlots),
		numSymbols: len(table),
	}

	// Shorter codes first, so that a code which has another as a prefix
	// always finds that code as a leaf on its way to the root.
	for index, entry := range table.Entries() {
		hc := entry.Code
		if hc.Size == 0 {
			return nil, fmt.Errorf("%w for symbol %s", ErrEmptyCode, formatSymbol(entry.Symbol))
		}
		if hc.Size > MaxBitsPerCode {
			return nil, fmt.Errorf("invalid bit length for symbol %s: got %d, max %d", formatSymbol(entry.Symbol), hc.Size, MaxBitsPerCode)
		}
		if hc.Size < MaxBitsPerCode && hc.Bits>>hc.Size != 0 {
			return nil, fmt.Errorf("invalid code for symbol %s: bits %#x do not fit in %d bits", formatSymbol(entry.Symbol), hc.Bits, hc.Size)
		}

		if index == 0 {
			d.minSize = hc.Size
		}
		d.maxSize = hc.Size

		if err := fillTable(d.table, entry.Symbol, hc); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// DecodeCode looks up a single Code.
//
// If hc is a complete code, found is true, symbol is its Symbol, and
// minSize == maxSize == hc.Size.
//
// If hc is a proper prefix of one or more codes, found is false and at least
// (minSize - hc.Size), but no more than (maxSize - hc.Size), additional bits
// are required to decode a Symbol.
//
// If hc is not a prefix of any code, found is false and
// minSize == maxSize == 0.
//
func (d *Decoder[S]) DecodeCode(hc Code) (symbol S, found bool, minSize byte, maxSize byte) {
	dd, ok := d.table[hc]
	if !ok {
		return symbol, false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// Decode decodes an entire bit string.
//
// Bits are accumulated one at a time and looked up after each step; a
// Symbol is emitted, and the accumulator reset, as soon as it holds a
// complete code.  A character other than '0' or '1' yields an
// *InvalidBitError, a bit sequence that cannot begin any code yields a
// *CorruptStreamError, and leftover bits at the end yield a
// *TruncatedStreamError.
//
func (d *Decoder[S]) Decode(bits BitString) ([]S, error) {
	var out []S
	if d.minSize != 0 {
		out = make([]S, 0, len(bits)/int(d.minSize))
	}

	var hc Code
	var start int
	for i := 0; i < len(bits); i++ {
		var bit uint
		switch ch := bits[i]; ch {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return nil, &InvalidBitError{Offset: i, Char: ch}
		}

		if hc.Size == 0 {
			start = i
		}
		hc = hc.Append(bit)

		dd, found := d.table[hc]
		if !found {
			return nil, &CorruptStreamError{Offset: start, Pending: hc}
		}
		if dd.leaf {
			out = append(out, dd.symbol)
			hc = Code{}
		}
	}

	if hc.Size != 0 {
		return nil, &TruncatedStreamError{Offset: start, Pending: hc}
	}
	return out, nil
}

// NumSymbols returns the number of Symbols in the code.
func (d *Decoder[S]) NumSymbols() int {
	return d.numSymbols
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder[S]) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder[S]) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		symbol := "nil"
		if dd.leaf {
			symbol = formatSymbol(dd.symbol)
		}
		fmt.Fprintf(&buf, "\tDecode(%s) = {%s, %d, %d}\n", hc, symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData[S Symbol] struct {
	symbol  S
	leaf    bool
	minSize byte
	maxSize byte
}

func fillTable[S Symbol](table map[Code]decoderData[S], symbol S, hc Code) error {
	if ddOld, found := table[hc]; found {
		if ddOld.leaf {
			return fmt.Errorf("%w: symbols %s and %s share code %s", ErrNotPrefixCode, formatSymbol(ddOld.symbol), formatSymbol(symbol), hc)
		}
		return fmt.Errorf("%w: code %s for symbol %s is a prefix of a longer code", ErrNotPrefixCode, hc, formatSymbol(symbol))
	}

	code := hc
	dd := decoderData[S]{symbol: symbol, leaf: true, minSize: hc.Size, maxSize: hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData[S]{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddSibling, found := table[hc.Sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Step up from "xxx...a" to its parent "xxx...".

		parent := hc.Parent()

		// If table[parent] already equals ddNew, we can stop recursing.

		ddOld, found := table[parent]
		if found && ddOld.leaf {
			return fmt.Errorf("%w: code %s for symbol %s has prefix %s for symbol %s", ErrNotPrefixCode, code, formatSymbol(symbol), parent, formatSymbol(ddOld.symbol))
		}
		if found && ddOld == ddNew {
			break
		}

		// Update table[parent] with ddNew and continue recursing.

		table[parent] = ddNew
		dd = ddNew
		hc = parent
	}
	return nil
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
