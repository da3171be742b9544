// SPDX-License-Identifier: MIT
// Package cell: sentinel error set.
// Accessors return these sentinels wrapped with method context; callers
// match them via errors.Is.

package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when the canonical text does not parse as the
	// requested numeric type (Int, Float).
	ErrFormat = errors.New("cell: text is not a valid value of the requested type")

	// ErrEmptyCell is returned by Rune when the canonical text is empty.
	ErrEmptyCell = errors.New("cell: cell is empty")
)

// cellErrorf wraps a sentinel with the accessor name and the offending text.
func cellErrorf(method, text string, err error) error {
	return fmt.Errorf("Cell.%s(%q): %w", method, text, err)
}
