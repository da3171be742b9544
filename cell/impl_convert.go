// SPDX-License-Identifier: MIT

// Package cell - typed accessors.
//
// Purpose:
//   - Derive typed views from the canonical text on every call.
//   - Report unparsable text as ErrFormat instead of converting silently.

package cell

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// method tags used in error wrappers
const (
	ctxInt   = "Int"
	ctxFloat = "Float"
	ctxRune  = "Rune"
)

// Int parses the text (surrounding whitespace ignored) as a base-10 integer.
// Returns ErrFormat when the text is not a valid int.
func (c Cell) Int() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(c.val))
	if err != nil {
		return 0, cellErrorf(ctxInt, c.val, ErrFormat)
	}

	return v, nil
}

// Float parses the text (surrounding whitespace ignored) as a float64.
// Returns ErrFormat when the text is not a valid float.
func (c Cell) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.val), 64)
	if err != nil {
		return 0, cellErrorf(ctxFloat, c.val, ErrFormat)
	}

	return v, nil
}

// Rune returns the first character of the text.
// Returns ErrEmptyCell when the cell is empty.
func (c Cell) Rune() (rune, error) {
	if c.val == "" {
		return 0, cellErrorf(ctxRune, c.val, ErrEmptyCell)
	}
	r, _ := utf8.DecodeRuneInString(c.val)

	return r, nil
}

// Bool reports whether the text is exactly "true".
// Every other text, including "TRUE", "1" and "", yields false.
func (c Cell) Bool() bool { return c.val == boolTrue }

// String returns the canonical text. It makes Cell a fmt.Stringer.
func (c Cell) String() string { return c.val }

// Ints splits the text on whitespace and parses each field as an integer.
// Parsing stops at the first field that is not an integer; the values read
// so far are returned. An empty or non-numeric text yields an empty slice.
func (c Cell) Ints() []int {
	fields := strings.Fields(c.val)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			break // read while parseable
		}
		out = append(out, v)
	}

	return out
}
