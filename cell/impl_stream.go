// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"io"
)

// Compile-time assertions for the stream interfaces.
var (
	_ io.WriterTo  = Cell{}
	_ fmt.Scanner  = (*Cell)(nil)
	_ fmt.Stringer = Cell{}
)

// WriteTo writes the canonical text to w verbatim, with no delimiter.
func (c Cell) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.val)

	return int64(n), err
}

// Scan implements fmt.Scanner. It skips leading space, reads one
// whitespace-delimited token and makes it the new text. On end of input
// with no token the cell is left unchanged and io.EOF is returned.
//
// Text with embedded spaces written by WriteTo reads back as its first
// token only.
func (c *Cell) Scan(state fmt.ScanState, _ rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.EOF
	}
	c.val = string(tok) // Token's buffer is reused by fmt; copy it

	return nil
}
