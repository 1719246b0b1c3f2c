package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// BitString is a sequence of bits written as '0' and '1' characters.
type BitString string

// Len returns the number of bits.
func (bs BitString) Len() int {
	return len(bs)
}

// Pack packs the bits eight to a byte, first bit in the most significant
// position.  The last byte is padded with zero bits; keep Len to undo this
// with UnpackBitString.
func (bs BitString) Pack() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bs) + 7) / 8)

	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bs); i++ {
		var err error
		switch ch := bs[i]; ch {
		case '0':
			err = w.WriteBool(false)
		case '1':
			err = w.WriteBool(true)
		default:
			return nil, &InvalidBitError{Offset: i, Char: ch}
		}
		if err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBitString reverses Pack, returning the first n bits of data.
func UnpackBitString(data []byte, n int) (BitString, error) {
	if n < 0 || n > 8*len(data) {
		return "", fmt.Errorf("cannot unpack %d bits from %d bytes", n, len(data))
	}

	r := bitio.NewReader(bytes.NewReader(data))
	buf := make([]byte, n)
	for i := range buf {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		buf[i] = '0'
		if bit {
			buf[i] = '1'
		}
	}
	return BitString(buf), nil
}
