package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxBitsPerCode is the length of the longest Code that can be represented.
const MaxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxBitsPerCode {
		return Code{}, fmt.Errorf("invalid bit length for code %q: got %d, max %d", str, len(str), MaxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, &InvalidBitError{Offset: i, Char: str[i]}
		}
	}
	return hc, nil
}

// Append returns this Code extended by one trailing bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxBitsPerCode, "cannot extend %d-bit code %s", hc.Size, hc)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Parent returns this Code with its last bit removed.
func (hc Code) Parent() Code {
	assert.Assertf(hc.Size != 0, "empty code has no parent")
	return Code{Size: hc.Size - 1, Bits: hc.Bits >> 1}
}

// Sibling returns this Code with its last bit inverted.
func (hc Code) Sibling() Code {
	assert.Assertf(hc.Size != 0, "empty code has no sibling")
	return Code{Size: hc.Size, Bits: hc.Bits ^ 1}
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit code", i, hc.Size)
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// AppendTo appends the '0' and '1' characters of this Code to buf.
func (hc Code) AppendTo(buf []byte) []byte {
	for i := byte(0); i < hc.Size; i++ {
		buf = append(buf, '0'+byte(hc.Bit(i)))
	}
	return buf
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// bitLength returns the number of bits needed to represent x, treating 0 as
// if it were 1.
func bitLength(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(mathbits.Len32(x))
}
