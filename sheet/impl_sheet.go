// SPDX-License-Identifier: MIT

// Package sheet - row-major storage, constructors & safe accessors.
//
// Purpose:
//   - Keep every cell in one flat buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the rectangle invariant structural: len(data) == rows*cols at all times.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set: O(1); Clone/Equal/Clear/String: O(r*c); Move: O(1).

package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sheetgrid/cell"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxLine     = "Line"
)

// ---------- Formatting literals ----------

const (
	_fmtCellSep = " "
	_fmtRowEnd  = "\n"
)

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Sheet)(nil)
	_ io.WriterTo  = (*Sheet)(nil)
)

// New creates a rows×cols sheet of empty cells.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; 0 is a valid count on either axis.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate the flat buffer; make() fills it with empty cells.
//   - Stage 3: resolve options over the defaults.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Sheet, error) {
	if rows < 0 || cols < 0 {
		return nil, sheetErrorf(ctxNew, rows, cols, ErrBadShape)
	}

	return &Sheet{
		r:    rows,
		c:    cols,
		data: make([]cell.Cell, rows*cols),
		opts: gatherOptions(opts...),
	}, nil
}

// NewSquare creates an n×n sheet of empty cells.
// Errors: ErrBadShape when n < 0.
func NewSquare(n int, opts ...Option) (*Sheet, error) {
	return New(n, n, opts...)
}

// FromRows builds a sheet from literal rows, copying every cell.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and small tables.
//
// Implementation:
//   - Stage 1: the column count is len(rows[0]); every row must match it.
//   - Stage 2: copy rows into the flat buffer in order.
//
// Behavior highlights:
//   - An empty input yields a 0×0 sheet; N empty rows yield N×0.
//
// Errors:
//   - ErrNonRectangular, wrapped with the index of the first ragged row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]cell.Cell, opts ...Option) (*Sheet, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, indexErrorf(ctxFromRows, i, ErrNonRectangular)
		}
	}

	s, err := New(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		copy(s.data[i*c:(i+1)*c], rows[i])
	}

	return s, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (s *Sheet) Rows() int { return s.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (s *Sheet) Cols() int { return s.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (s *Sheet) Shape() (rows, cols int) { return s.r, s.c }

// Options returns the resolved configuration of s.
// The zero Sheet reports the defaults.
func (s *Sheet) Options() Options {
	if !s.opts.resolved {
		return defaultOptions()
	}

	return s.opts
}

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; public methods wrap it with context.
func (s *Sheet) indexOf(row, col int) (int, error) {
	if row < 0 || row >= s.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= s.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*s.c + col, nil
}

// At returns a copy of the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (s *Sheet) At(row, col int) (cell.Cell, error) {
	off, err := s.indexOf(row, col)
	if err != nil {
		return cell.Cell{}, sheetErrorf(ctxAt, row, col, err)
	}

	return s.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Set does not invalidate Lines.
// Complexity: O(1).
func (s *Sheet) Set(row, col int, v cell.Cell) error {
	off, err := s.indexOf(row, col)
	if err != nil {
		return sheetErrorf(ctxSet, row, col, err)
	}
	s.data[off] = v

	return nil
}

// Line returns a view over row i, valid until the next structural change.
// MAIN DESCRIPTION:
//   - Two-step indexing: s.Line(i) then Line.At(j) / Line.Set(j, v).
//
// Behavior highlights:
//   - The index addresses a row and is checked against Rows().
//   - The view never owns memory; writes go straight to s.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Sheet) Line(i int) (*Line, error) {
	if i < 0 || i >= s.r {
		return nil, indexErrorf(ctxLine, i, ErrOutOfRange)
	}

	return &Line{s: s, row: i, gen: s.gen}, nil
}

// Clear resets every cell to empty. Shape and Lines are kept.
// Complexity: O(r*c).
func (s *Sheet) Clear() {
	clear(s.data)
}

// Clone returns a deep copy with the same options.
// Lines taken from s stay bound to s.
// Complexity: O(r*c).
func (s *Sheet) Clone() *Sheet {
	cp := make([]cell.Cell, len(s.data))
	copy(cp, s.data)

	return &Sheet{
		r:    s.r,
		c:    s.c,
		data: cp,
		opts: s.Options(),
	}
}

// Move transfers the storage of s into a new sheet and leaves s as an
// empty 0×0 sheet. Lines taken from s become stale.
// Complexity: O(1).
func (s *Sheet) Move() *Sheet {
	out := &Sheet{
		r:    s.r,
		c:    s.c,
		data: s.data,
		opts: s.Options(),
	}
	s.r, s.c, s.data = 0, 0, nil
	s.touch()

	return out
}

// Equal reports whether both sheets have the same shape and equal cells.
// Stops at the first mismatch. Two nil sheets are equal.
// Complexity: O(r*c) worst case.
func (s *Sheet) Equal(other *Sheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.r != other.r || s.c != other.c {
		return false
	}
	for k := range s.data {
		if !s.data[k].Equal(other.data[k]) {
			return false
		}
	}

	return true
}

// Do visits each cell in row-major order and calls f(i, j, c).
// f receives copies; write back through Set.
func (s *Sheet) Do(f func(i, j int, c cell.Cell)) {
	var i, j int
	for i = 0; i < s.r; i++ {
		base := i * s.c
		for j = 0; j < s.c; j++ {
			f(i, j, s.data[base+j])
		}
	}
}

// String renders one line per row. Each cell is right-aligned to the
// configured width and followed by a single space.
// Complexity: O(r*c).
func (s *Sheet) String() string {
	var b strings.Builder
	s.render(&b)

	return b.String()
}

// WriteTo writes the String form of s to w.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())

	return int64(n), err
}

// render writes the display form into b.
func (s *Sheet) render(b *strings.Builder) {
	width := s.Options().CellWidth()
	var i, j, base int
	for i = 0; i < s.r; i++ {
		base = i * s.c
		for j = 0; j < s.c; j++ {
			fmt.Fprintf(b, "%*s", width, s.data[base+j].Text())
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(_fmtRowEnd)
	}
}

// touch records a structural change so outstanding Lines go stale.
func (s *Sheet) touch() { s.gen++ }
