// Package rle implements a textual run-length encoding.
//
// Each maximal run of a repeated character is written as the character
// followed by the length of the run in decimal, so "aaabbbccd" becomes
// "a3b3c2d1".  Counts may have any number of digits; since a run's character
// is never itself a digit, the next non-digit always starts the next run.
// The price is that decimal digits cannot appear in the input.
//
package rle
