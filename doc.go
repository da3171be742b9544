// Package sheetgrid is a small in-memory tabular container: a rectangular
// grid of text-backed cells plus geometric transforms and structural edits.
//
// Everything is organized under two subpackages:
//
//	cell/  : Cell, one canonical text value with typed views
//	         (Int, Float, Rune, Bool, String, Ints)
//	sheet/ : Sheet, a row-major grid of Cells: mirror, rotate, transpose,
//	         remove rows/cols, resize, slice, line views
//
// Quick ASCII example (Rotate(1) on a 3×3 sheet):
//
//	1 2 3        7 4 1
//	4 5 6   →    8 5 2
//	7 8 9        9 6 3
//
// Non-goals: no formulas, no sparse storage, no file formats, no locking.
//
//	go get github.com/katalvlaran/sheetgrid
package sheetgrid
