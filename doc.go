// Package rlehuffman compresses text by run-length encoding it and then
// Huffman coding the run-length stream.
//
// The compressed form is an Artifact: the bit string plus the code table
// needed to read it back.  The table cannot be recovered from the bits, so
// the two must travel together.
//
package rlehuffman
