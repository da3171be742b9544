// SPDX-License-Identifier: MIT

// Package cell - Cell type, typed constructors and setters.
//
// Purpose:
//   - Hold one canonical string; every typed value is formatted into it.
//   - Keep construction total: no constructor or setter can fail.

package cell

import (
	"strconv"
	"strings"
)

// Canonical spellings of boolean values. Bool() is true only for boolTrue.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

// intsSep follows every element written by FromInts/SetInts.
const intsSep = " "

// Cell is a single value holder. The zero value is the empty cell.
// Cells are plain values: assigning one Cell to another copies its text.
type Cell struct {
	val string // canonical text, the only state
}

// Empty returns the empty cell. Equivalent to Cell{}.
func Empty() Cell { return Cell{} }

// FromInt returns a cell holding the decimal text of v.
func FromInt(v int) Cell { return Cell{val: strconv.Itoa(v)} }

// FromFloat returns a cell holding the shortest text that parses back to v.
func FromFloat(v float64) Cell { return Cell{val: formatFloat(v)} }

// FromRune returns a cell holding the single character r.
func FromRune(r rune) Cell { return Cell{val: string(r)} }

// FromBool returns a cell holding "true" or "false".
func FromBool(v bool) Cell { return Cell{val: formatBool(v)} }

// FromString returns a cell holding s verbatim.
func FromString(s string) Cell { return Cell{val: s} }

// FromInts returns a cell holding every element of vs, each followed by a
// single space ("1 2 3 "). Ints() reads the sequence back in order.
func FromInts(vs []int) Cell { return Cell{val: formatInts(vs)} }

// SetInt replaces the text with the decimal form of v.
func (c *Cell) SetInt(v int) { c.val = strconv.Itoa(v) }

// SetFloat replaces the text with the shortest round-trip form of v.
func (c *Cell) SetFloat(v float64) { c.val = formatFloat(v) }

// SetRune replaces the text with the single character r.
func (c *Cell) SetRune(r rune) { c.val = string(r) }

// SetBool replaces the text with "true" or "false".
func (c *Cell) SetBool(v bool) { c.val = formatBool(v) }

// SetString replaces the text with s.
func (c *Cell) SetString(s string) { c.val = s }

// SetInts replaces the text with the space-terminated elements of vs.
func (c *Cell) SetInts(vs []int) { c.val = formatInts(vs) }

// Assign replaces the text with the text of other.
func (c *Cell) Assign(other Cell) { c.val = other.val }

// Reset makes c the empty cell.
func (c *Cell) Reset() { c.val = "" }

// Text returns the canonical text.
func (c Cell) Text() string { return c.val }

// IsEmpty reports whether the canonical text is "".
func (c Cell) IsEmpty() bool { return c.val == "" }

// Equal reports whether both cells hold the same canonical text.
// No numeric normalization happens: "1" and "1.0" are not equal.
func (c Cell) Equal(other Cell) bool { return c.val == other.val }

// EqualString reports whether the canonical text equals s.
func (c Cell) EqualString(s string) bool { return c.val == s }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return boolTrue
	}

	return boolFalse
}

func formatInts(vs []int) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(intsSep)
	}

	return b.String()
}
