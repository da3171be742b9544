// SPDX-License-Identifier: MIT
// Package sheet: sentinel error set.
// Every public method returns these sentinels, wrapped with the method name
// and the offending indices; callers match them via errors.Is. No method
// panics on user-triggered conditions.

package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a row or column index outside the current bounds.
	// Raised at the violating call; indices are never clamped.
	ErrOutOfRange = errors.New("sheet: index out of range")

	// ErrBadShape indicates a negative row or column count.
	ErrBadShape = errors.New("sheet: invalid shape")

	// ErrNonRectangular indicates literal rows of differing lengths.
	ErrNonRectangular = errors.New("sheet: all rows must have the same length")

	// ErrStaleView indicates a Line used after a structural operation on its sheet.
	ErrStaleView = errors.New("sheet: line view invalidated by a structural change")
)

// sheetErrorf wraps err with "Sheet.<method>(row,col)" context.
func sheetErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sheet.%s(%d,%d): %w", method, row, col, err)
}

// indexErrorf wraps err for single-index methods: "Sheet.<method>(idx)".
func indexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Sheet.%s(%d): %w", method, idx, err)
}
