// SPDX-License-Identifier: MIT

// Package cell provides Cell, a single value holder backed by one canonical
// text representation.
//
// What:
//
//   - A Cell stores exactly one string. That string is the source of truth.
//   - Typed views (Int, Float, Rune, Bool, Ints) are derived from the text at
//     access time; nothing is cached.
//   - Typed constructors (FromInt, FromFloat, ...) and setters (SetInt, ...)
//     format the value into its canonical text and replace the old one.
//
// Why:
//
//   - A grid of Cells can mix numbers, flags and words without a tagged union.
//   - Equality is plain text equality, so "1" and "1.0" are different cells.
//
// Stream interface:
//
//   - WriteTo writes the text verbatim (no quoting, no delimiter).
//   - Scan (fmt.Scanner) reads one whitespace-delimited token.
//   - Text containing spaces does not survive WriteTo followed by Scan; only
//     the first token is read back. This is a known limitation.
//
// Errors:
//
//   - ErrFormat: Int/Float on text that does not parse.
//   - ErrEmptyCell: Rune on an empty cell.
//
// Complexity:
//
//   - Constructors and accessors are O(len(text)).
package cell
