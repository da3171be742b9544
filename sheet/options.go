// SPDX-License-Identifier: MIT

// Package sheet: functional configuration for display and multi-index
// removal. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options are carried into sheets derived by Clone, Slice and Move.
package sheet

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the minimum field width of one cell in String/WriteTo.
	// Cells are right-aligned in the field and followed by one space.
	DefaultCellWidth = 8

	// DefaultRemovalMode keeps the reference semantics of RemoveRows/RemoveCols:
	// each index is read against the layout left by the previous removal.
	DefaultRemovalMode = RemoveSequential
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellWidthInvalid   = "sheet: WithCellWidth: width must be non-negative"
	panicRemovalModeInvalid = "sheet: WithRemovalMode: unknown mode"
)

// RemovalMode selects how RemoveRows/RemoveCols read their index lists.
type RemovalMode int

const (
	// RemoveSequential removes indices one by one in list order; every index
	// refers to the layout after the previous removal.
	RemoveSequential RemovalMode = iota

	// RemoveOriginal reads every index against the layout before the call.
	// Duplicates collapse; removal proceeds from the highest index down.
	RemoveOriginal
)

// String returns the mode name.
func (m RemovalMode) String() string {
	switch m {
	case RemoveSequential:
		return "sequential"
	case RemoveOriginal:
		return "original"
	default:
		return fmt.Sprintf("RemovalMode(%d)", int(m))
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration of a Sheet.
// Fields are unexported; build it through Option values.
type Options struct {
	cellWidth int         // display field width, >= 0
	removal   RemovalMode // RemoveRows/RemoveCols index policy
	resolved  bool        // false only for the zero Options of a zero Sheet
}

// CellWidth returns the display field width.
func (o Options) CellWidth() int { return o.cellWidth }

// RemovalMode returns the multi-index removal policy.
func (o Options) RemovalMode() RemovalMode { return o.removal }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		cellWidth: DefaultCellWidth,
		removal:   DefaultRemovalMode,
		resolved:  true,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithCellWidth sets the display field width. Panics if w < 0.
func WithCellWidth(w int) Option {
	if w < 0 {
		panic(panicCellWidthInvalid)
	}

	return func(o *Options) { o.cellWidth = w }
}

// WithRemovalMode sets how RemoveRows/RemoveCols interpret their indices.
// Panics on a mode other than RemoveSequential or RemoveOriginal.
func WithRemovalMode(m RemovalMode) Option {
	if m != RemoveSequential && m != RemoveOriginal {
		panic(panicRemovalModeInvalid)
	}

	return func(o *Options) { o.removal = m }
}
