// SPDX-License-Identifier: MIT

// Package sheet - structural edits and index-set extraction.
//
// Purpose:
//   - Remove rows/columns with element relocation on the flat buffer.
//   - Grow or shrink either axis; new cells are empty, dropped cells are lost.
//   - Gather an arbitrary (row, col) cross product into a new sheet (Slice).
//
// Every operation validates all inputs before mutating, so a failing call
// leaves the sheet and its Lines untouched.

package sheet

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sheetgrid/cell"
)

// ---------- error context tags ----------

const (
	ctxRemoveRow  = "RemoveRow"
	ctxRemoveRows = "RemoveRows"
	ctxRemoveCol  = "RemoveCol"
	ctxRemoveCols = "RemoveCols"
	ctxResizeRows = "ResizeRows"
	ctxResizeCols = "ResizeCols"
	ctxResize     = "Resize"
	ctxSlice      = "Slice"
)

// RemoveRow deletes row i; rows below move up by one.
// Errors: ErrOutOfRange when i ∉ [0, Rows()).
// Complexity: O((r-i)*c).
func (s *Sheet) RemoveRow(i int) error {
	if i < 0 || i >= s.r {
		return indexErrorf(ctxRemoveRow, i, ErrOutOfRange)
	}
	s.removeRow(i)
	s.touch()

	return nil
}

// RemoveRows deletes several rows. How indices are read depends on the
// sheet's RemovalMode:
//   - RemoveSequential (default): one RemoveRow per index, in list order;
//     each index refers to the layout after the previous removal.
//     RemoveRows(2, 4) on rows 0..5 removes original rows 2 and 5.
//   - RemoveOriginal: every index refers to the layout before the call.
//
// All indices are validated first; on ErrOutOfRange nothing is removed.
func (s *Sheet) RemoveRows(idx ...int) error {
	plan, err := s.removalPlan(ctxRemoveRows, s.r, idx)
	if err != nil {
		return err
	}
	for _, i := range plan {
		s.removeRow(i)
	}
	if len(plan) > 0 {
		s.touch()
	}

	return nil
}

// RemoveCol deletes column j; columns to its right move left by one.
// Errors: ErrOutOfRange when j ∉ [0, Cols()).
// Complexity: O(r*c).
func (s *Sheet) RemoveCol(j int) error {
	if j < 0 || j >= s.c {
		return indexErrorf(ctxRemoveCol, j, ErrOutOfRange)
	}
	s.removeCol(j)
	s.touch()

	return nil
}

// RemoveCols deletes several columns under the same RemovalMode rules as
// RemoveRows. On ErrOutOfRange nothing is removed.
func (s *Sheet) RemoveCols(idx ...int) error {
	plan, err := s.removalPlan(ctxRemoveCols, s.c, idx)
	if err != nil {
		return err
	}
	for _, j := range plan {
		s.removeCol(j)
	}
	if len(plan) > 0 {
		s.touch()
	}

	return nil
}

// removalPlan validates idx against an axis of length n and returns the
// single-removal order.
// MAIN DESCRIPTION:
//   - Sequential: index k must be < n-k (the axis shrinks after each step).
//   - Original: every index must be < n; result is deduplicated, descending.
//
// Complexity:
//   - Sequential O(len(idx)); Original O(len(idx) log len(idx)).
func (s *Sheet) removalPlan(method string, n int, idx []int) ([]int, error) {
	switch s.Options().RemovalMode() {
	case RemoveOriginal:
		for _, v := range idx {
			if v < 0 || v >= n {
				return nil, indexErrorf(method, v, ErrOutOfRange)
			}
		}
		plan := slices.Clone(idx)
		slices.Sort(plan)
		plan = slices.Compact(plan)
		slices.Reverse(plan)

		return plan, nil
	default:
		for k, v := range idx {
			if v < 0 || v >= n-k {
				return nil, indexErrorf(method, v, ErrOutOfRange)
			}
		}

		return idx, nil
	}
}

// removeRow shifts rows i+1.. up by one and drops the last row.
func (s *Sheet) removeRow(i int) {
	copy(s.data[i*s.c:], s.data[(i+1)*s.c:])
	end := (s.r - 1) * s.c
	clear(s.data[end:]) // release dropped text
	s.data = s.data[:end]
	s.r--
}

// removeCol compacts every row in place, skipping column j.
// Writes never overtake reads, so one forward pass is enough.
func (s *Sheet) removeCol(j int) {
	nc := s.c - 1
	var i, k, dst int
	for i = 0; i < s.r; i++ {
		base := i * s.c
		for k = 0; k < s.c; k++ {
			if k == j {
				continue
			}
			s.data[dst] = s.data[base+k]
			dst++
		}
	}
	clear(s.data[dst:])
	s.data = s.data[:s.r*nc]
	s.c = nc
}

// ResizeRows sets the row count to n. Trailing rows are dropped when
// shrinking; empty rows are appended when growing. Dropped content is not
// restored by growing again.
// Errors: ErrBadShape when n < 0.
// Complexity: O(|n-r|*c) plus a possible reallocation.
func (s *Sheet) ResizeRows(n int) error {
	if n < 0 {
		return indexErrorf(ctxResizeRows, n, ErrBadShape)
	}
	s.resizeRows(n)

	return nil
}

// ResizeCols sets the column count to n, truncating or padding every row
// with empty cells.
// Errors: ErrBadShape when n < 0.
// Complexity: O(r*n).
func (s *Sheet) ResizeCols(n int) error {
	if n < 0 {
		return indexErrorf(ctxResizeCols, n, ErrBadShape)
	}
	s.resizeCols(n)

	return nil
}

// Resize applies ResizeRows(rows) then ResizeCols(cols).
// Both counts are validated before either axis changes.
// Errors: ErrBadShape when rows < 0 or cols < 0.
func (s *Sheet) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return sheetErrorf(ctxResize, rows, cols, ErrBadShape)
	}
	s.resizeRows(rows)
	s.resizeCols(cols)

	return nil
}

func (s *Sheet) resizeRows(n int) {
	if n == s.r {
		return
	}
	size := n * s.c
	if n < s.r {
		clear(s.data[size:])
		s.data = s.data[:size]
	} else {
		s.data = append(s.data, make([]cell.Cell, size-len(s.data))...)
	}
	s.r = n
	s.touch()
}

func (s *Sheet) resizeCols(n int) {
	if n == s.c {
		return
	}
	keep := min(n, s.c)
	out := make([]cell.Cell, s.r*n)
	var i int
	for i = 0; i < s.r; i++ {
		copy(out[i*n:i*n+keep], s.data[i*s.c:i*s.c+keep])
	}
	s.data = out
	s.c = n
	s.touch()
}

// Slice materializes a new sheet from explicit index lists.
// MAIN DESCRIPTION:
//   - Result is len(rows)×len(cols); cell (a, b) is s(rows[a], cols[b]).
//
// Behavior highlights:
//   - Indices may repeat and appear in any order.
//   - The result owns its cells; s is not modified and its Lines stay valid.
//   - Options of s carry over.
//
// Errors:
//   - ErrOutOfRange for the first index outside the current bounds.
//
// Complexity:
//   - Time O(len(rows)*len(cols)), Space O(len(rows)*len(cols)).
func (s *Sheet) Slice(rows, cols []int) (*Sheet, error) {
	for _, ri := range rows {
		if ri < 0 || ri >= s.r {
			return nil, fmt.Errorf("Sheet.%s: row index %d: %w", ctxSlice, ri, ErrOutOfRange)
		}
	}
	for _, cj := range cols {
		if cj < 0 || cj >= s.c {
			return nil, fmt.Errorf("Sheet.%s: col index %d: %w", ctxSlice, cj, ErrOutOfRange)
		}
	}

	rp, cp := len(rows), len(cols)
	res := &Sheet{
		r:    rp,
		c:    cp,
		data: make([]cell.Cell, rp*cp),
		opts: s.Options(),
	}
	var i, j int
	for i = 0; i < rp; i++ {
		src := rows[i] * s.c
		dst := i * cp
		for j = 0; j < cp; j++ {
			res.data[dst+j] = s.data[src+cols[j]]
		}
	}

	return res, nil
}
