// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/dfrg/parleygo/textpos"

// LineItemKind distinguishes a text-run slice from an inline box placed
// within a line.
type LineItemKind int32

const (
	LineItemTextRun LineItemKind = iota
	LineItemInlineBox
)

// LineItem is a run slice (or inline box) belonging to a committed line.
type LineItem struct {
	Kind                  LineItemKind
	Index                 int // index into Layout.Runs (or Layout.InlineBoxes)
	BidiLevel             uint8
	ClusterRange          textpos.Range
	TextRange             textpos.Range
	Advance               float32
	IsWhitespace          bool
	HasTrailingWhitespace bool
}

// LineMetrics holds the measurements computed for a line by
// [BreakLines.Finish].
type LineMetrics struct {
	// Advance is the line's content width, excluding any hung trailing
	// whitespace.
	Advance float32
	// TrailingWhitespace is the advance of whitespace hung past Advance
	// rather than counted against MaxAdvance.
	TrailingWhitespace float32
	Ascent             float32
	Descent            float32
	Leading            float32
	// Offset is the horizontal shift applied to this line's content for
	// its alignment (zero for Start and Justified).
	Offset float32
	// Baseline is this line's baseline position measured from the top
	// of the paragraph.
	Baseline float32
}

// Size returns the total vertical extent the line occupies: the sum of
// the (rounded) ascent, descent, and leading used to advance the layout
// cursor from one baseline to the next.
func (m LineMetrics) Size() float32 {
	return m.Ascent + m.Descent + m.Leading
}

// Line is a single committed line of a paragraph.
type Line struct {
	RunRange    textpos.Range // into Layout.LineItems
	MaxAdvance  float32
	Alignment   Alignment
	BreakReason BreakReason
	NumSpaces   int
	TextRange   textpos.Range
	Metrics     LineMetrics

	// JustifyAdjustment is the per-whitespace-cluster advance increment
	// a Justified alignment pass added to this line's clusters, so that
	// unjustify can remove exactly what justify added before a line is
	// re-broken.
	JustifyAdjustment float32
}
