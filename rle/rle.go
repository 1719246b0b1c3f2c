package rle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxRunLength is the longest run that can be encoded or decoded.
const MaxRunLength = math.MaxInt32

// Run is a maximal sequence of Count copies of Symbol.
type Run struct {
	Symbol rune
	Count  int
}

// String returns the encoded form of this Run.
func (r Run) String() string {
	return string(AppendRun(nil, r))
}

var _ fmt.Stringer = Run{}

// IsDigit returns true iff ch is one of '0' through '9'.
func IsDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Runs splits input into its maximal runs.
func Runs(input string) ([]Run, error) {
	var runs []Run
	start := 0
	for offset, ch := range input {
		if ch == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(input[offset:]); size == 1 {
				return nil, fmt.Errorf("%w at offset %d", ErrInvalidUTF8, offset)
			}
		}
		if IsDigit(ch) {
			return nil, &DigitSymbolError{Offset: offset, Symbol: ch}
		}

		if n := len(runs); n != 0 && runs[n-1].Symbol == ch {
			if runs[n-1].Count == MaxRunLength {
				return nil, &RunLengthOverflowError{Offset: start, Count: strconv.FormatInt(int64(MaxRunLength)+1, 10)}
			}
			runs[n-1].Count++
			continue
		}

		runs = append(runs, Run{Symbol: ch, Count: 1})
		start = offset
	}
	return runs, nil
}

// AppendRun appends the encoded form of r to buf.
func AppendRun(buf []byte, r Run) []byte {
	buf = utf8.AppendRune(buf, r.Symbol)
	return strconv.AppendInt(buf, int64(r.Count), 10)
}

// Encode run-length encodes input.  The empty string encodes to the empty
// string.
func Encode(input string) (string, error) {
	runs, err := Runs(input)
	if err != nil {
		return "", err
	}

	// Every run takes at least one byte for the symbol and one for the
	// count.
	buf := make([]byte, 0, 2*len(runs))
	for _, r := range runs {
		buf = AppendRun(buf, r)
	}
	return string(buf), nil
}

// ParseRuns parses an encoded stream back into its runs.
func ParseRuns(stream string) ([]Run, error) {
	var runs []Run
	for i := 0; i < len(stream); {
		ch, size := utf8.DecodeRuneInString(stream[i:])
		if ch == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("%w at offset %d", ErrInvalidUTF8, i)
		}
		if IsDigit(ch) {
			return nil, &MalformedStreamError{Offset: i, Reason: fmt.Sprintf("count digit %q where a symbol was expected", ch)}
		}

		j := i + size
		k := j
		for k < len(stream) && IsDigit(rune(stream[k])) {
			k++
		}

		digits := stream[j:k]
		switch {
		case digits == "":
			return nil, &MalformedStreamError{Offset: i, Reason: fmt.Sprintf("symbol %q has no count", ch)}
		case digits[0] == '0':
			return nil, &MalformedStreamError{Offset: j, Reason: fmt.Sprintf("count %q is zero or has a leading zero", digits)}
		}

		count, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			return nil, &RunLengthOverflowError{Offset: j, Count: digits}
		}

		runs = append(runs, Run{Symbol: ch, Count: int(count)})
		i = k
	}
	return runs, nil
}

// Expand writes out every run in full.
func Expand(runs []Run) string {
	var total int
	for _, r := range runs {
		if size := utf8.RuneLen(r.Symbol); size > 0 && r.Count > 0 {
			total += r.Count * size
		}
	}

	var sb strings.Builder
	sb.Grow(total)
	for _, r := range runs {
		for n := 0; n < r.Count; n++ {
			sb.WriteRune(r.Symbol)
		}
	}
	return sb.String()
}

// Decode reverses Encode.
func Decode(stream string) (string, error) {
	runs, err := ParseRuns(stream)
	if err != nil {
		return "", err
	}
	return Expand(runs), nil
}
