// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/dfrg/parleygo/shaped"

// Layout owns every buffer produced while laying out a single paragraph:
// the reduced per-run styles, inline boxes, shaped runs and clusters, and
// the committed lines and line items. It is cleared and refilled on each
// build; see [RangedBuilder] and [TreeBuilder].
type Layout struct {
	Styles      []Style
	InlineBoxes []shaped.InlineBox
	Runs        []shaped.Run
	Clusters    []shaped.Cluster
	Lines       []Line
	LineItems   []LineItem

	Width     float32
	FullWidth float32
	Height    float32
	Scale     float32
	TextLen   int
	HasBidi   bool
	BaseLevel uint8
}

// clear resets every buffer and scalar field to its zero value, keeping
// underlying array capacity where Go's append semantics allow it.
func (l *Layout) clear() {
	l.Styles = l.Styles[:0]
	l.InlineBoxes = l.InlineBoxes[:0]
	l.Runs = l.Runs[:0]
	l.Clusters = l.Clusters[:0]
	l.Lines = l.Lines[:0]
	l.LineItems = l.LineItems[:0]
	l.Width = 0
	l.FullWidth = 0
	l.Height = 0
	l.Scale = 0
	l.TextLen = 0
	l.HasBidi = false
	l.BaseLevel = 0
}

// lineHeight looks up the line-height multiplier for the run a line item
// belongs to.
func (l *Layout) lineHeight(item *LineItem) float32 {
	run := l.Runs[item.Index]
	return l.Styles[run.StyleIndex].LineHeight
}
