// Command rlehuff runs text through the run-length + Huffman pipeline,
// prints the compressed bits and the recovered text, and fails unless the
// recovered text matches the input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chronos-tachyon/rlehuffman"
)

const defaultInput = "aaaaabbbbcccddehhjjkhkjkjlkolkoksoko;kojijihuygftcdjikjolko;k;kjiugt"

func main() {
	log.SetFlags(0)
	log.SetPrefix("rlehuff: ")

	input := flag.String("input", defaultInput, "text to compress; must not contain decimal digits")
	verbose := flag.Bool("v", false, "also print the code table and compression ratio")
	flag.Parse()

	artifact, err := rlehuffman.Compress(*input)
	if err != nil {
		log.Fatalf("compress: %v", err)
	}
	fmt.Printf("Compressed Data: %s\n", artifact.Bits)

	if *verbose {
		if _, err := artifact.Table.Dump(os.Stdout); err != nil {
			log.Fatalf("dump: %v", err)
		}
		packed, err := artifact.Packed()
		if err != nil {
			log.Fatalf("pack: %v", err)
		}
		fmt.Printf("Packed Size: %d bytes (%d bits, ratio %.3f)\n", len(packed), artifact.Bits.Len(), artifact.Ratio(*input))
	}

	output, err := artifact.Decompress()
	if err != nil {
		log.Fatalf("decompress: %v", err)
	}
	fmt.Printf("Decompressed Data: %s\n", output)

	if output != *input {
		log.Fatalf("decompression failed: got %q, want %q", output, *input)
	}
}
