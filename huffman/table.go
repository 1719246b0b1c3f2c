package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Table maps each Symbol to its Code.  A Table produced by Tree.Table always
// forms a prefix code; use Validate to check a Table from elsewhere.
type Table[S Symbol] map[S]Code

// Entry is one row of a Table.
type Entry[S Symbol] struct {
	Symbol S
	Code   Code
}

// BuildTable is a convenience function that builds the Huffman tree for freq
// and flattens it into a Table.
func BuildTable[S Symbol](freq Frequencies[S]) (Table[S], error) {
	t, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return t.Table(), nil
}

// Entries returns the rows of this Table sorted by (code length, Symbol)
// ascending.
func (table Table[S]) Entries() []Entry[S] {
	sorted := make(bySize[S], 0, len(table))
	for symbol, hc := range table {
		sorted = append(sorted, Entry[S]{Symbol: symbol, Code: hc})
	}
	sorted.Sort()
	return sorted
}

// MinSize is the bit length of the shortest code, or 0 for an empty Table.
func (table Table[S]) MinSize() byte {
	var minSize byte
	first := true
	for _, hc := range table {
		if first || hc.Size < minSize {
			minSize = hc.Size
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 for an empty Table.
func (table Table[S]) MaxSize() byte {
	var maxSize byte
	for _, hc := range table {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// Lengths returns the number of Symbols assigned each code length.
func (table Table[S]) Lengths() map[byte]int {
	out := make(map[byte]int)
	for _, hc := range table {
		out[hc.Size]++
	}
	return out
}

// Validate checks that every code is non-empty and that no code is a prefix
// of another.
func (table Table[S]) Validate() error {
	_, err := NewDecoder(table)
	return err
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.
func (table Table[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, entry := range table.Entries() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", formatSymbol(entry.Symbol), entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySize {{{

type bySize[S Symbol] []Entry[S]

func (list bySize[S]) Len() int {
	return len(list)
}

func (list bySize[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize[S]) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Code.Size != b.Code.Size {
		return a.Code.Size < b.Code.Size
	}
	return a.Symbol < b.Symbol
}

func (list bySize[S]) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize[rune](nil)

// }}}
