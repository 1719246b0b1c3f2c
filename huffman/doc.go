// Package huffman implements Huffman codes over an arbitrary ordered
// alphabet, together with the helpers needed to use them on in-memory data:
// frequency analysis, tree construction, code table flattening, and
// encoding/decoding between symbol sequences and bit strings.
//
// Ties between equal weights are always broken by symbol order, so the same
// frequencies always produce the same code table.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
