// SPDX-License-Identifier: MIT

// Package sheet - geometric transforms.
//
// Purpose:
//   - Mirror and rotate the grid in place on the flat buffer.
//   - Work on every shape: transposes swap the dimension counts.
//
// Every transform invalidates outstanding Lines, including no-op turns such
// as Rotate(4).

package sheet

import "github.com/katalvlaran/sheetgrid/cell"

// MirrorH reverses the cell order within each row (left-right flip).
// Complexity: O(r*c).
func (s *Sheet) MirrorH() {
	s.mirrorH()
	s.touch()
}

// MirrorV reverses the row order (top-bottom flip).
// Complexity: O(r*c).
func (s *Sheet) MirrorV() {
	var i, j int
	for i = 0; i < s.r/2; i++ {
		top := i * s.c
		bottom := (s.r - 1 - i) * s.c
		for j = 0; j < s.c; j++ {
			s.data[top+j], s.data[bottom+j] = s.data[bottom+j], s.data[top+j]
		}
	}
	s.touch()
}

// MirrorD transposes the sheet about its main diagonal.
// An R×C sheet becomes C×R; cell (i, j) moves to (j, i).
// Complexity: Time O(r*c), Space O(r*c) for non-square sheets, O(1) for square ones.
func (s *Sheet) MirrorD() {
	s.transpose()
	s.touch()
}

// MirrorSD turns the sheet by 180 degrees; same result as Rotate(2).
func (s *Sheet) MirrorSD() {
	s.Rotate(2)
}

// Rotate applies k quarter turns. k is reduced modulo 4 into [0, 4), so
// negative counts wrap (Rotate(-1) == Rotate(3)). Each turn is a transpose
// followed by MirrorH; on the 3×3 grid 1..9 one turn yields 7 4 1 / 8 5 2 / 9 6 3.
// Complexity: O(r*c) per turn, at most three turns.
func (s *Sheet) Rotate(k int) {
	k %= 4
	if k < 0 {
		k += 4
	}
	for ; k > 0; k-- {
		s.transpose()
		s.mirrorH()
	}
	s.touch()
}

// mirrorH is MirrorH without the generation bump.
func (s *Sheet) mirrorH() {
	var i, j int
	for i = 0; i < s.r; i++ {
		base := i * s.c
		for j = 0; j < s.c/2; j++ {
			a, b := base+j, base+s.c-1-j
			s.data[a], s.data[b] = s.data[b], s.data[a]
		}
	}
}

// transpose is MirrorD without the generation bump.
// Square sheets swap in place; other shapes gather into a new buffer.
func (s *Sheet) transpose() {
	if s.r == s.c {
		n := s.r
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				a, b := i*n+j, j*n+i
				s.data[a], s.data[b] = s.data[b], s.data[a]
			}
		}

		return
	}

	out := make([]cell.Cell, len(s.data))
	var i, j int
	for i = 0; i < s.r; i++ {
		for j = 0; j < s.c; j++ {
			out[j*s.r+i] = s.data[i*s.c+j] // (i,j) in R×C -> (j,i) in C×R
		}
	}
	s.r, s.c = s.c, s.r
	s.data = out
}
