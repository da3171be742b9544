// SPDX-License-Identifier: MIT

// Package sheet: domain types. Behavior lives in the impl_*.go files.
package sheet

import "github.com/katalvlaran/sheetgrid/cell"

// Sheet is a rectangular grid of cells in row-major order.
//   - r,c hold dimensions (rows, cols); both >= 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - gen counts structural changes; Lines compare it to detect staleness.
//
// The zero value is an empty 0×0 sheet with default options.
type Sheet struct {
	r, c int         // row and column counts
	data []cell.Cell // contiguous row-major storage (len == r*c)
	gen  uint64      // bumped by every layout-changing operation
	opts Options     // display and removal policy
}

// Line is a non-owning handle over one row of a Sheet.
// It stays valid until the next structural operation on that sheet
// (transform, removal, resize, Move); afterwards every access returns
// ErrStaleView. Cell writes through Set and Sheet.Clear keep it valid.
type Line struct {
	s   *Sheet // sheet that owns the storage
	row int    // row index at creation time
	gen uint64 // s.gen at creation time
}
