package rlehuffman

import (
	"fmt"

	"github.com/chronos-tachyon/rlehuffman/huffman"
	"github.com/chronos-tachyon/rlehuffman/rle"
)

// Artifact is the result of Compress.
type Artifact struct {
	Bits  huffman.BitString
	Table huffman.Table[rune]
}

// Compress run-length encodes input, builds a Huffman code for the symbols
// of the run-length stream, and encodes the stream with it.
//
// The empty string compresses to an empty bit string and an empty table.
// Input containing decimal digits is rejected.
//
func Compress(input string) (Artifact, error) {
	stream, err := rle.Encode(input)
	if err != nil {
		return Artifact{}, fmt.Errorf("run-length encode: %w", err)
	}

	symbols := []rune(stream)
	freq := huffman.Analyze(symbols)
	if len(freq) == 0 {
		return Artifact{Bits: "", Table: huffman.Table[rune]{}}, nil
	}

	tree, err := huffman.BuildTree(freq)
	if err != nil {
		return Artifact{}, fmt.Errorf("build Huffman tree: %w", err)
	}
	table := tree.Table()

	bits, err := huffman.NewEncoder(table).Encode(symbols)
	if err != nil {
		return Artifact{}, fmt.Errorf("huffman encode: %w", err)
	}

	return Artifact{Bits: bits, Table: table}, nil
}

// Decompress reverses Compress.
func Decompress(bits huffman.BitString, table huffman.Table[rune]) (string, error) {
	d, err := huffman.NewDecoder(table)
	if err != nil {
		return "", fmt.Errorf("invalid code table: %w", err)
	}

	symbols, err := d.Decode(bits)
	if err != nil {
		return "", fmt.Errorf("huffman decode: %w", err)
	}

	output, err := rle.Decode(string(symbols))
	if err != nil {
		return "", fmt.Errorf("run-length decode: %w", err)
	}
	return output, nil
}

// Decompress is shorthand for Decompress(a.Bits, a.Table).
func (a Artifact) Decompress() (string, error) {
	return Decompress(a.Bits, a.Table)
}

// Packed returns the bit string packed eight bits to a byte.
func (a Artifact) Packed() ([]byte, error) {
	return a.Bits.Pack()
}

// Ratio returns the size of the bit string relative to the size of input in
// bits, not counting the table.  It returns 0 for empty input.
func (a Artifact) Ratio(input string) float64 {
	if len(input) == 0 {
		return 0
	}
	return float64(a.Bits.Len()) / float64(8*len(input))
}
