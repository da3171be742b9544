// SPDX-License-Identifier: MIT

package sheet

import (
	"fmt"

	"github.com/katalvlaran/sheetgrid/cell"
)

// lineErrorf wraps err with "Line(row).<method>(col)" context.
func lineErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Line(%d).%s(%d): %w", row, method, col, err)
}

// Valid reports whether the line still matches its sheet's layout.
func (l *Line) Valid() bool { return l.gen == l.s.gen }

// Row returns the row index the line was taken for.
func (l *Line) Row() int { return l.row }

// Len returns the number of cells in the line, or 0 when stale.
func (l *Line) Len() int {
	if !l.Valid() {
		return 0
	}

	return l.s.c
}

// offset validates the line and col, returning the flat offset into l.s.data.
func (l *Line) offset(method string, col int) (int, error) {
	if !l.Valid() {
		return 0, lineErrorf(method, l.row, col, ErrStaleView)
	}
	if col < 0 || col >= l.s.c {
		return 0, lineErrorf(method, l.row, col, ErrOutOfRange)
	}

	return l.row*l.s.c + col, nil
}

// At returns a copy of cell col of the line.
// Errors: ErrStaleView, ErrOutOfRange.
func (l *Line) At(col int) (cell.Cell, error) {
	off, err := l.offset(ctxAt, col)
	if err != nil {
		return cell.Cell{}, err
	}

	return l.s.data[off], nil
}

// Set writes v into cell col of the line (write-through to the sheet).
// Errors: ErrStaleView, ErrOutOfRange.
func (l *Line) Set(col int, v cell.Cell) error {
	off, err := l.offset(ctxSet, col)
	if err != nil {
		return err
	}
	l.s.data[off] = v

	return nil
}

// Cells returns a copy of the line's cells.
// Errors: ErrStaleView.
func (l *Line) Cells() ([]cell.Cell, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("Line(%d).Cells: %w", l.row, ErrStaleView)
	}
	base := l.row * l.s.c
	out := make([]cell.Cell, l.s.c)
	copy(out, l.s.data[base:base+l.s.c])

	return out, nil
}
