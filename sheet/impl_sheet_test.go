// Package sheet_test contains unit tests for Sheet construction, access,
// copying, equality and display.
package sheet_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/sheetgrid/cell"
	"github.com/katalvlaran/sheetgrid/sheet"
	"github.com/stretchr/testify/require"
)

// TestNewShape verifies dimensions and empty cells for several shapes, zero included.
func TestNewShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {3, 0}, {1, 1}, {3, 4}, {5, 2}} {
		s, err := sheet.New(dims[0], dims[1])
		require.NoError(t, err)
		require.Equal(t, dims[0], s.Rows())
		require.Equal(t, dims[1], s.Cols())

		count := 0
		s.Do(func(_, _ int, c cell.Cell) {
			require.True(t, c.Equal(cell.Empty()))
			count++
		})
		require.Equal(t, dims[0]*dims[1], count)
	}
}

// TestNewSquare checks the square constructor.
func TestNewSquare(t *testing.T) {
	s, err := sheet.NewSquare(4)
	require.NoError(t, err)
	r, c := s.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
}

// TestNewBadShape ensures negative dimensions are rejected.
func TestNewBadShape(t *testing.T) {
	_, err := sheet.New(-1, 2)
	require.ErrorIs(t, err, sheet.ErrBadShape)

	_, err = sheet.New(2, -1)
	require.ErrorIs(t, err, sheet.ErrBadShape)

	_, err = sheet.NewSquare(-3)
	require.ErrorIs(t, err, sheet.ErrBadShape)
}

// TestZeroValueSheet checks the zero Sheet is a usable 0×0 sheet with defaults.
func TestZeroValueSheet(t *testing.T) {
	var s sheet.Sheet
	require.Equal(t, 0, s.Rows())
	require.Equal(t, 0, s.Cols())
	require.Equal(t, sheet.DefaultCellWidth, s.Options().CellWidth())
	require.Equal(t, "", s.String())

	empty, err := sheet.New(0, 0)
	require.NoError(t, err)
	require.True(t, s.Equal(empty))

	require.NoError(t, s.Resize(1, 2))
	require.Equal(t, [][]string{{"", ""}}, texts(&s))
}

// TestFromRows covers literal construction and the ragged-row failure.
func TestFromRows(t *testing.T) {
	s := mustSheet(t, [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}})
	require.Equal(t, 3, s.Rows())
	require.Equal(t, 2, s.Cols())
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, flat(s))

	_, err := sheet.FromRows([][]cell.Cell{{cell.FromInt(1)}, {}})
	require.ErrorIs(t, err, sheet.ErrNonRectangular)

	z, err := sheet.FromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, z.Rows())
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	s := seqSheet(t, 2, 3)

	_, err := s.At(-1, 0)
	require.ErrorIs(t, err, sheet.ErrOutOfRange)
	_, err = s.At(2, 0)
	require.ErrorIs(t, err, sheet.ErrOutOfRange)
	_, err = s.At(0, 3)
	require.ErrorIs(t, err, sheet.ErrOutOfRange)

	err = s.Set(0, -1, cell.FromInt(1))
	require.ErrorIs(t, err, sheet.ErrOutOfRange)
	err = s.Set(5, 5, cell.FromInt(1))
	require.ErrorIs(t, err, sheet.ErrOutOfRange)
	require.EqualError(t, err, "Sheet.Set(5,5): sheet: index out of range")
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	s, err := sheet.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, s.Set(1, 2, cell.FromFloat(7.5)))
	got, err := s.At(1, 2)
	require.NoError(t, err)
	f, err := got.Float()
	require.NoError(t, err)
	require.Equal(t, 7.5, f)
}

// TestClear resets cells and keeps the shape.
func TestClear(t *testing.T) {
	s := seqSheet(t, 2, 3)
	s.Clear()
	require.Equal(t, 2, s.Rows())
	require.Equal(t, 3, s.Cols())
	require.Equal(t, [][]string{{"", "", ""}, {"", "", ""}}, texts(s))
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	s := seqSheet(t, 2, 2, sheet.WithCellWidth(3))
	cp := s.Clone()
	require.True(t, s.Equal(cp))
	require.Equal(t, 3, cp.Options().CellWidth())

	require.NoError(t, cp.Set(0, 0, cell.FromString("changed")))
	orig, err := s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "1", orig.Text())
	require.False(t, s.Equal(cp))

	require.NoError(t, cp.RemoveRow(0))
	require.Equal(t, 2, s.Rows())
}

// TestMoveLeavesEmptySource checks Move transfers contents and empties the source.
func TestMoveLeavesEmptySource(t *testing.T) {
	s := seqSheet(t, 2, 3)
	want := s.Clone()
	line, err := s.Line(1)
	require.NoError(t, err)

	moved := s.Move()
	require.True(t, moved.Equal(want))
	require.Equal(t, 0, s.Rows())
	require.Equal(t, 0, s.Cols())

	_, err = line.At(0)
	require.ErrorIs(t, err, sheet.ErrStaleView)
}

// TestEqual covers shape mismatch, single-cell mismatch and nil handling.
func TestEqual(t *testing.T) {
	a := seqSheet(t, 2, 3)
	b := seqSheet(t, 2, 3)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	require.NoError(t, b.Set(1, 2, cell.FromString("6.0")))
	require.False(t, a.Equal(b))

	c := seqSheet(t, 3, 2)
	require.False(t, a.Equal(c))

	var n1, n2 *sheet.Sheet
	require.True(t, n1.Equal(n2))
	require.False(t, a.Equal(nil))
}

// TestStringOutput checks String right-aligns cells to the configured width.
func TestStringOutput(t *testing.T) {
	s := mustSheet(t, [][]string{{"1", "22"}, {"abc", ""}})
	expected := "       1       22 \n     abc          \n"
	require.Equal(t, expected, s.String())

	narrow := mustSheet(t, [][]string{{"1", "22"}, {"abcd", ""}}, sheet.WithCellWidth(3))
	require.Equal(t, "  1  22 \nabcd     \n", narrow.String()) // wide text is not truncated

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(expected)), n)
	require.Equal(t, expected, buf.String())
}
