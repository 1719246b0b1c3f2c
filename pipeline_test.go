package rlehuffman

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/chronos-tachyon/rlehuffman/huffman"
	"github.com/chronos-tachyon/rlehuffman/rle"
)

const demoInput = "aaaaabbbbcccddehhjjkhkjkjlkolkoksoko;kojijihuygftcdjikjolko;k;kjiugt"

func TestCompress_KnownVectors(t *testing.T) {
	type testRow struct {
		name  string
		input string
		bits  huffman.BitString
		table map[rune]string
	}

	testData := [...]testRow{
		{
			name:  "aaabbbccd",
			input: "aaabbbccd",
			bits:  "1000110101110001111000",
			table: map[rune]string{'1': "000", '2': "001", '3': "01", 'a': "100", 'b': "101", 'c': "110", 'd': "111"},
		},
		{
			name:  "aaaa",
			input: "aaaa",
			bits:  "10",
			table: map[rune]string{'4': "0", 'a': "1"},
		},
		{
			name:  "abracadabra",
			input: "abracadabra",
			bits:  "100111001100100111100100111110100111001100100",
			table: map[rune]string{'1': "0", 'a': "10", 'r': "110", 'b': "1110", 'c': "11110", 'd': "11111"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			artifact, err := Compress(row.input)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if artifact.Bits != row.bits {
				t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", row.bits, artifact.Bits)
			}
			if len(artifact.Table) != len(row.table) {
				t.Errorf("expected %d table entries, got %d", len(row.table), len(artifact.Table))
			}
			for symbol, str := range row.table {
				expect, err := huffman.ParseCode(str)
				if err != nil {
					t.Fatalf("ParseCode failed: %v", err)
				}
				if actual := artifact.Table[symbol]; actual != expect {
					t.Errorf("symbol %q: expected %s, got %s", symbol, expect, actual)
				}
			}

			output, err := artifact.Decompress()
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if output != row.input {
				t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", row.input, output)
			}
		})
	}
}

func TestCompress_Demo(t *testing.T) {
	artifact, err := Compress(demoInput)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	expectBits := huffman.BitString("" +
		"101110110111001011110101101111000010110101100011111001011111011111011110" +
		"011101111001000111110010001110010001110011111101000101001111110100010100" +
		"100011001010101001000101001111010100010100111001101001110011010011111001" +
		"101110101100011001101100100011011001100000110001011100110100100011100101" +
		"001111110100010100111101010001111010100011100110100110111011001101101100")
	if artifact.Bits != expectBits {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expectBits, artifact.Bits)
	}
	if ratio := artifact.Ratio(demoInput); ratio <= 0 || ratio >= 1 {
		t.Errorf("expected a ratio in (0, 1), got %f", ratio)
	}

	output, err := Decompress(artifact.Bits, artifact.Table)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if output != demoInput {
		t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", demoInput, output)
	}
}

func TestCompress_Empty(t *testing.T) {
	artifact, err := Compress("")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if artifact.Bits != "" {
		t.Errorf("expected empty bits, got %q", artifact.Bits)
	}
	if artifact.Table == nil || len(artifact.Table) != 0 {
		t.Errorf("expected an empty, non-nil table, got %#v", artifact.Table)
	}
	if ratio := artifact.Ratio(""); ratio != 0 {
		t.Errorf("expected ratio 0, got %f", ratio)
	}

	output, err := artifact.Decompress()
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if output != "" {
		t.Errorf("expected empty output, got %q", output)
	}
}

func TestCompress_LongRuns(t *testing.T) {
	input := strings.Repeat("a", 12) + "b" + strings.Repeat("c", 250) + "ab"
	artifact, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	output, err := artifact.Decompress()
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if output != input {
		t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", input, output)
	}
}

func TestCompress_Digit(t *testing.T) {
	_, err := Compress("route 66")
	var digitErr *rle.DigitSymbolError
	if !errors.As(err, &digitErr) {
		t.Fatalf("expected DigitSymbolError, got %v", err)
	}
	if digitErr.Offset != 6 {
		t.Errorf("expected offset 6, got %d", digitErr.Offset)
	}
}

func TestDecompress_Errors(t *testing.T) {
	artifact, err := Compress("aaabbbccd")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	var truncErr *huffman.TruncatedStreamError
	if _, err := Decompress(artifact.Bits[:len(artifact.Bits)-1], artifact.Table); !errors.As(err, &truncErr) {
		t.Errorf("expected TruncatedStreamError, got %v", err)
	}

	bad := huffman.Table[rune]{'a': huffman.MakeCode(1, 0), 'b': huffman.MakeCode(2, 0)}
	if _, err := Decompress("0", bad); !errors.Is(err, huffman.ErrNotPrefixCode) {
		t.Errorf("expected ErrNotPrefixCode, got %v", err)
	}

	// "01" decodes to "3" under this table, a count with no symbol.
	var malformedErr *rle.MalformedStreamError
	if _, err := Decompress("01", artifact.Table); !errors.As(err, &malformedErr) {
		t.Errorf("expected MalformedStreamError, got %v", err)
	}
}

func TestRoundTrip_Random(t *testing.T) {
	const alphabet = "abcdefgh ;.-"
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 100; iter++ {
		var sb strings.Builder
		for n := rng.Intn(30); n > 0; n-- {
			ch := alphabet[rng.Intn(len(alphabet))]
			sb.WriteString(strings.Repeat(string(ch), 1+rng.Intn(15)))
		}
		input := sb.String()

		artifact, err := Compress(input)
		if err != nil {
			t.Fatalf("Compress(%q) failed: %v", input, err)
		}
		if err := artifact.Table.Validate(); err != nil {
			t.Fatalf("Compress(%q) produced an invalid table: %v", input, err)
		}

		packed, err := artifact.Packed()
		if err != nil {
			t.Fatalf("Packed failed: %v", err)
		}
		bits, err := huffman.UnpackBitString(packed, artifact.Bits.Len())
		if err != nil {
			t.Fatalf("UnpackBitString failed: %v", err)
		}

		output, err := Decompress(bits, artifact.Table)
		if err != nil {
			t.Fatalf("Decompress(%q) failed: %v", input, err)
		}
		if output != input {
			t.Fatalf("round trip mismatch:\n\texpect: %q\n\tactual: %q", input, output)
		}
	}
}
