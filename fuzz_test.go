package rlehuffman

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chronos-tachyon/rlehuffman/rle"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add("aaabbbccd")
	f.Add("hello世界")
	f.Add("🚀🚀🚀rocket")
	f.Add("")
	f.Add("a")
	f.Add("tab\there")
	f.Add("null\x00byte")
	f.Add(strings.Repeat("w", 1000))
	f.Add(demoInput)

	f.Fuzz(func(t *testing.T, input string) {
		artifact, err := Compress(input)
		if !utf8.ValidString(input) || strings.ContainsAny(input, "0123456789") {
			var digitErr *rle.DigitSymbolError
			if !errors.Is(err, rle.ErrInvalidUTF8) && !errors.As(err, &digitErr) {
				t.Fatalf("expected %q to be rejected, got %v", input, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Compress(%q) failed: %v", input, err)
		}

		output, err := artifact.Decompress()
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if output != input {
			t.Errorf("expected %q, got %q", input, output)
		}
	})
}
