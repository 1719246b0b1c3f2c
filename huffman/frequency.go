package huffman

import (
	"slices"
)

// Frequencies maps each Symbol to its number of occurrences.  Symbols that
// never occur are absent; a present Symbol always has a non-zero count.
type Frequencies[S Symbol] map[S]uint64

// Analyze counts the occurrences of each Symbol in seq.
func Analyze[S Symbol](seq []S) Frequencies[S] {
	freq := make(Frequencies[S])
	for _, symbol := range seq {
		freq[symbol]++
	}
	return freq
}

// Total returns the sum of all counts, i.e. the length of the analyzed
// sequence.
func (freq Frequencies[S]) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// Symbols returns the Symbols with a count, in ascending order.
func (freq Frequencies[S]) Symbols() []S {
	out := make([]S, 0, len(freq))
	for symbol := range freq {
		out = append(out, symbol)
	}
	slices.Sort(out)
	return out
}
