// Package sheet provides Sheet, a rectangular grid of cell.Cell values with
// geometric transforms and structural edits.
//
// What:
//
//   - Sheet owns one flat row-major buffer of Rows()*Cols() cells
//     (offset = i*Cols() + j). Every row always has Cols() cells.
//   - Transforms: MirrorH, MirrorV, MirrorD (transpose), MirrorSD, Rotate.
//   - Structural edits: RemoveRow(s), RemoveCol(s), ResizeRows, ResizeCols,
//     Resize, Clear.
//   - Derivations: Clone (deep copy), Slice (index-set gather), Move.
//   - Line(i) returns a non-owning handle over row i.
//
// Views and lifetime:
//
//   - A Line is bound to the layout of its sheet at the moment it was taken.
//     Any transform, removal, resize or Move invalidates it; later accesses
//     return ErrStaleView. Set and Clear keep existing Lines valid.
//
// Shapes:
//
//   - 0×0, 0×N and N×0 are all legal. The zero Sheet is a usable 0×0 sheet.
//   - MirrorD and Rotate work on any shape: an R×C sheet becomes C×R after a
//     transpose or an odd number of quarter turns.
//
// Removing several indices:
//
//   - RemoveRows/RemoveCols apply single removals in list order by default
//     (RemoveSequential). Each index refers to the layout left by the
//     previous removal, so RemoveRows(2, 4) removes original rows 2 and 5.
//   - WithRemovalMode(RemoveOriginal) interprets every index against the
//     layout before the call; duplicates collapse.
//   - Both modes validate every index before removing anything.
//
// Errors:
//
//   - ErrOutOfRange: any row/column index outside the current bounds.
//   - ErrBadShape: negative dimensions.
//   - ErrNonRectangular: FromRows input with ragged rows.
//   - ErrStaleView: access through an invalidated Line.
//
// Concurrency:
//
//   - A Sheet is not safe for concurrent use. Guard it externally.
//
// Complexity:
//
//   - At/Set/Line: O(1). Transforms, resizes, Clone, Equal: O(R*C).
//   - RemoveRow: O((R-i)*C). RemoveCol: O(R*C). Slice: O(len(rows)*len(cols)).
package sheet
