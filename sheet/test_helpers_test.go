// SPDX-License-Identifier: MIT
// Package sheet_test contains test helpers.
//
// Purpose:
//   • Build small deterministic sheets from string literals.
//   • Snapshot sheets as [][]string for require/cmp comparisons.

package sheet_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/sheetgrid/cell"
	"github.com/katalvlaran/sheetgrid/sheet"
	"github.com/stretchr/testify/require"
)

// mustSheet builds a sheet from literal text rows or fails the test.
func mustSheet(t testing.TB, rows [][]string, opts ...sheet.Option) *sheet.Sheet {
	t.Helper()
	cells := make([][]cell.Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]cell.Cell, len(row))
		for j, v := range row {
			cells[i][j] = cell.FromString(v)
		}
	}
	s, err := sheet.FromRows(cells, opts...)
	require.NoError(t, err)

	return s
}

// seqSheet returns an r×c sheet holding 1..r*c in row-major order.
func seqSheet(t testing.TB, r, c int, opts ...sheet.Option) *sheet.Sheet {
	t.Helper()
	s, err := sheet.New(r, c, opts...)
	require.NoError(t, err)
	n := 1
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, s.Set(i, j, cell.FromInt(n)))
			n++
		}
	}

	return s
}

// texts snapshots s row by row.
func texts(s *sheet.Sheet) [][]string {
	out := make([][]string, s.Rows())
	for i := range out {
		out[i] = make([]string, s.Cols())
	}
	s.Do(func(i, j int, c cell.Cell) { out[i][j] = c.Text() })

	return out
}

// flat snapshots s in row-major order.
func flat(s *sheet.Sheet) []string {
	out := make([]string, 0, s.Rows()*s.Cols())
	s.Do(func(_, _ int, c cell.Cell) { out = append(out, c.Text()) })

	return out
}

// ints renders 1..n as decimal strings.
func ints(vs ...int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}

	return out
}
