// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/dfrg/parleygo/textpos"
)

// commitLine materializes the line items for the run span recorded in
// line, appends a new Line built from it, and reports whether the
// commit succeeded. itemsStart is the length lines.lineItems had when
// this line began accumulating. A BreakRegular commit saturating-
// decrements numSpaces by one: the space at the boundary where the line
// broke doesn't belong to this line's own content.
func commitLine(layout *Layout, lines *lineBuffers, itemsStart int, line *lineState, maxAdvance float32, alignment Alignment, reason BreakReason) bool {
	for runIdx := line.runs.Start; runIdx < line.runs.End && runIdx < len(layout.Runs); runIdx++ {
		run := layout.Runs[runIdx]
		cr := run.ClusterRange.Intersect(line.clusters)
		if cr.IsEmpty() {
			continue
		}
		item := LineItem{
			Kind:         LineItemTextRun,
			Index:        runIdx,
			BidiLevel:    run.BidiLevel,
			ClusterRange: cr,
		}
		first := layout.Clusters[cr.Start]
		last := layout.Clusters[cr.End-1]
		item.TextRange = textpos.Range{Start: first.TextRange.Start, End: last.TextRange.End}

		allWhitespace := true
		var advance float32
		for ci := cr.Start; ci < cr.End; ci++ {
			c := layout.Clusters[ci]
			advance += c.Advance
			if !c.Info.Whitespace.IsWhitespace() {
				allWhitespace = false
			}
		}
		item.Advance = advance
		item.IsWhitespace = allWhitespace
		lines.lineItems = append(lines.lineItems, item)
	}

	numSpaces := line.numSpaces
	if reason == BreakRegular && numSpaces > 0 {
		numSpaces--
	}
	newLine := Line{
		RunRange:    textpos.Range{Start: itemsStart, End: len(lines.lineItems)},
		MaxAdvance:  maxAdvance,
		Alignment:   alignment,
		BreakReason: reason,
		NumSpaces:   numSpaces,
		Metrics:     LineMetrics{Advance: line.x},
	}
	if !line.clusters.IsEmpty() {
		first := layout.Clusters[line.clusters.Start]
		last := layout.Clusters[line.clusters.End-1]
		newLine.TextRange = textpos.Range{Start: first.TextRange.Start, End: last.TextRange.End}
	}
	lines.lines = append(lines.lines, newLine)
	return true
}

// classifyTrailingWhitespace marks the logically-trailing run of
// whitespace items in a line (the real, un-reordered append order, since
// "trailing" is a property of the text, not of its visual placement) and
// returns the combined advance to hang rather than count toward the
// line's content width.
func classifyTrailingWhitespace(items []LineItem) float32 {
	var trailing float32
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].IsWhitespace {
			break
		}
		items[i].HasTrailingWhitespace = true
		trailing += items[i].Advance
	}
	return trailing
}

// reorderLineItems applies the UAX #9 L2 rule: visit levels from the
// highest found down to the lowest odd level present, reversing each
// maximal run of items whose bidi level is at least the current level.
func reorderLineItems(items []LineItem) {
	if len(items) < 2 {
		return
	}
	maxLevel := 0
	minOdd := -1
	for _, it := range items {
		lvl := int(it.BidiLevel)
		if lvl > maxLevel {
			maxLevel = lvl
		}
		if lvl%2 == 1 && (minOdd == -1 || lvl < minOdd) {
			minOdd = lvl
		}
	}
	if minOdd == -1 {
		return
	}
	for level := maxLevel; level >= minOdd; level-- {
		i := 0
		for i < len(items) {
			if int(items[i].BidiLevel) >= level {
				j := i
				for j < len(items) && int(items[j].BidiLevel) >= level {
					j++
				}
				reverseItems(items[i:j])
				i = j
			} else {
				i++
			}
		}
	}
}

func reverseItems(items []LineItem) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// applyAlignment distributes the line's free space (maxAdvance minus its
// content advance) according to its alignment. Justified alignment
// mutates the advances of exactly NumSpaces of the line's whitespace
// clusters -- iterating forward within an LTR run and backward within an
// RTL one -- and records the per-cluster delta in line.JustifyAdjustment
// so a later unjustify pass can remove exactly what was added; the other
// alignments only set Metrics.Offset, a non-destructive paint-time
// shift.
func applyAlignment(layout *Layout, line *Line, items []LineItem) {
	if math.IsInf(float64(line.MaxAdvance), 0) {
		return
	}
	free := line.MaxAdvance - line.Metrics.Advance
	if free <= 0 {
		return
	}
	switch line.Alignment {
	case End:
		line.Metrics.Offset = free
	case Middle:
		line.Metrics.Offset = free / 2
	case Justified:
		if line.NumSpaces == 0 || line.BreakReason == BreakNone {
			return
		}
		delta := free / float32(line.NumSpaces)
		applied := 0
		for _, item := range items {
			if applied == line.NumSpaces {
				break
			}
			if item.Kind != LineItemTextRun {
				continue
			}
			if item.BidiLevel&1 != 0 {
				for ci := item.ClusterRange.End - 1; ci >= item.ClusterRange.Start; ci-- {
					if applied == line.NumSpaces {
						break
					}
					c := &layout.Clusters[ci]
					if c.Info.Whitespace.IsSpaceOrNbsp() {
						c.Advance += delta
						applied++
					}
				}
			} else {
				for ci := item.ClusterRange.Start; ci < item.ClusterRange.End; ci++ {
					if applied == line.NumSpaces {
						break
					}
					c := &layout.Clusters[ci]
					if c.Info.Whitespace.IsSpaceOrNbsp() {
						c.Advance += delta
						applied++
					}
				}
			}
		}
		line.JustifyAdjustment = delta
		line.Metrics.Advance += delta * float32(line.NumSpaces)
	}
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// finishLines computes final per-line metrics (content advance, hung
// trailing whitespace, rounded vertical extents, baseline), visually
// reorders each line's items for bidi, and then applies alignment over
// the reordered items (the order unjustify later walks them in).
func finishLines(layout *Layout, lines []Line, lineItems []LineItem) {
	var y float32
	for li := range lines {
		line := &lines[li]
		items := lineItems[line.RunRange.Start:line.RunRange.End]

		line.Metrics.TrailingWhitespace = classifyTrailingWhitespace(items)
		// Whitespace clusters at the end of the last non-whitespace item
		// (such as a space hung by a BreakRegular commit) trail as well.
		for i := len(items) - 1; i >= 0; i-- {
			if it := &items[i]; !it.IsWhitespace {
				for ci := it.ClusterRange.End - 1; it.Kind == LineItemTextRun && ci >= it.ClusterRange.Start && layout.Clusters[ci].Info.Whitespace.IsWhitespace(); ci-- {
					it.HasTrailingWhitespace = true
					line.Metrics.TrailingWhitespace += layout.Clusters[ci].Advance
				}
				break
			}
		}

		var contentAdvance float32
		for _, item := range items {
			contentAdvance += item.Advance
		}
		contentAdvance -= line.Metrics.TrailingWhitespace
		line.Metrics.Advance = contentAdvance

		// Ignore a run of trailing whitespace-only items when computing
		// vertical extent, matching their exclusion from Advance above.
		var ascent, descent, leading float32
		haveMetrics := false
		for i := len(items) - 1; i >= 0; i-- {
			item := items[i]
			if !haveMetrics && item.IsWhitespace {
				continue
			}
			haveMetrics = true
			switch item.Kind {
			case LineItemTextRun:
				run := layout.Runs[item.Index]
				lh := layout.lineHeight(&item)
				if lh <= 0 {
					lh = 1
				}
				if a := run.Ascent * lh; a > ascent {
					ascent = a
				}
				if d := run.Descent * lh; d > descent {
					descent = d
				}
				if lead := run.Leading * lh; lead > leading {
					leading = lead
				}
			case LineItemInlineBox:
				box := layout.InlineBoxes[item.Index]
				if box.Height > ascent {
					ascent = box.Height
				}
			}
		}

		if !haveMetrics && len(items) > 0 && items[0].Kind == LineItemTextRun {
			// A whitespace-only line takes the metrics of its first run.
			run := layout.Runs[items[0].Index]
			lh := layout.lineHeight(&items[0])
			if lh <= 0 {
				lh = 1
			}
			ascent, descent, leading = run.Ascent*lh, run.Descent*lh, run.Leading*lh
		}
		if ascent == 0 && descent == 0 && leading == 0 {
			// A line with no line items (such as the single line of an
			// empty paragraph, whose run the builder truncates to no
			// clusters) or with all-zero run metrics: keep the paragraph
			// from collapsing to zero height.
			ascent = 1
		}
		line.Metrics.Ascent = roundf(ascent)
		line.Metrics.Descent = roundf(descent)
		line.Metrics.Leading = roundf(leading*0.5) * 2

		reorderLineItems(items)

		applyAlignment(layout, line, items)

		above := roundf(line.Metrics.Ascent + line.Metrics.Leading*0.5)
		below := roundf(line.Metrics.Descent + line.Metrics.Leading*0.5)
		line.Metrics.Baseline = y + above
		y = line.Metrics.Baseline + below
	}
}

// unjustify reverses any justification a previous Finish pass applied,
// restoring the original advances of the affected whitespace clusters
// before a new breaking pass reads them. It must walk exactly the same
// NumSpaces clusters, in the same per-run direction, that applyAlignment
// adjusted -- not every whitespace cluster in the line -- since a line's
// NumSpaces can be smaller than its physical space count.
func unjustify(layout *Layout) {
	for i := range layout.Lines {
		line := &layout.Lines[i]
		if line.JustifyAdjustment == 0 {
			continue
		}
		delta := line.JustifyAdjustment
		applied := 0
		for ii := line.RunRange.Start; ii < line.RunRange.End; ii++ {
			if applied == line.NumSpaces {
				break
			}
			item := layout.LineItems[ii]
			if item.Kind != LineItemTextRun {
				continue
			}
			if item.BidiLevel&1 != 0 {
				for ci := item.ClusterRange.End - 1; ci >= item.ClusterRange.Start; ci-- {
					if applied == line.NumSpaces {
						break
					}
					c := &layout.Clusters[ci]
					if c.Info.Whitespace.IsSpaceOrNbsp() {
						c.Advance -= delta
						applied++
					}
				}
			} else {
				for ci := item.ClusterRange.Start; ci < item.ClusterRange.End; ci++ {
					if applied == line.NumSpaces {
						break
					}
					c := &layout.Clusters[ci]
					if c.Info.Whitespace.IsSpaceOrNbsp() {
						c.Advance -= delta
						applied++
					}
				}
			}
		}
		line.JustifyAdjustment = 0
	}
}

// writeBack installs the finalized line buffers into layout and updates
// its aggregate width and height.
func writeBack(layout *Layout, lines []Line, lineItems []LineItem) {
	layout.Lines = lines
	layout.LineItems = lineItems

	var width, fullWidth, height float32
	for _, line := range lines {
		if line.Metrics.Advance > width {
			width = line.Metrics.Advance
		}
		full := line.Metrics.Advance + line.Metrics.TrailingWhitespace
		if full > fullWidth {
			fullWidth = full
		}
		height += line.Metrics.Size()
	}
	layout.Width = width
	layout.FullWidth = fullWidth
	layout.Height = height
}
