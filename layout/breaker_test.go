// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfrg/parleygo/shaped"
	"github.com/dfrg/parleygo/textpos"
)

type testCluster struct {
	advance  float32
	ws       shaped.Whitespace
	boundary shaped.BoundaryClass
	ligCont  bool
}

// buildTestLayout assembles a single-run, single-style Layout from a flat
// cluster spec, one byte per cluster, so tests can drive the breaker
// without going through analysis or shaping.
func buildTestLayout(specs []testCluster) *Layout {
	l := &Layout{
		Styles: []Style{{LineHeight: 1}},
	}
	clusters := make([]shaped.Cluster, len(specs))
	for i, sp := range specs {
		clusters[i] = shaped.Cluster{
			Advance: sp.advance,
			Info: shaped.ClusterInfo{
				Boundary:        sp.boundary,
				Whitespace:      sp.ws,
				IsLigatureStart: false,
			},
			TextRange: textpos.Range{Start: i, End: i + 1},
		}
	}
	l.Clusters = clusters
	l.Runs = []shaped.Run{{
		StyleIndex:   0,
		ClusterRange: textpos.Range{Start: 0, End: len(clusters)},
		TextRange:    textpos.Range{Start: 0, End: len(clusters)},
		BidiLevel:    0,
		Ascent:       10,
		Descent:      2,
		Leading:      1,
	}}
	l.TextLen = len(clusters)
	return l
}

func spaceAfterWord(word string, trailingBoundary shaped.BoundaryClass) []testCluster {
	var out []testCluster
	for range word {
		out = append(out, testCluster{advance: 1, ws: shaped.WhitespaceNotSpace})
	}
	return out
}

func helloWorldClusters() []testCluster {
	cs := spaceAfterWord("hello", shaped.BoundaryNone)
	cs = append(cs, testCluster{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine})
	cs = append(cs, spaceAfterWord("world", shaped.BoundaryNone)...)
	return cs
}

func TestBreakLinesUnconstrainedSingleLine(t *testing.T) {
	l := buildTestLayout(helloWorldClusters())
	bl := NewBreakLines(l)
	bl.BreakRemaining(float32(math.Inf(1)), Start)

	assert.Len(t, l.Lines, 1)
	assert.Equal(t, BreakNone, l.Lines[0].BreakReason)
	assert.Equal(t, 1, l.Lines[0].NumSpaces)
	assert.InDelta(t, 11, l.Lines[0].Metrics.Advance, 0.001)
}

func TestBreakLinesWrapsAtSpace(t *testing.T) {
	l := buildTestLayout(helloWorldClusters())
	bl := NewBreakLines(l)
	bl.BreakRemaining(5, Start)

	assert.Len(t, l.Lines, 2)
	assert.Equal(t, BreakRegular, l.Lines[0].BreakReason)
	assert.Equal(t, 0, l.Lines[0].NumSpaces)
	assert.InDelta(t, 5, l.Lines[0].Metrics.Advance, 0.001)
	assert.True(t, l.Lines[0].Metrics.TrailingWhitespace > 0)

	assert.Equal(t, BreakNone, l.Lines[1].BreakReason)
	assert.Equal(t, 0, l.Lines[1].NumSpaces)
	assert.InDelta(t, 5, l.Lines[1].Metrics.Advance, 0.001)
}

func TestBreakLinesMandatoryBreak(t *testing.T) {
	specs := []testCluster{
		{advance: 1, ws: shaped.WhitespaceNotSpace},
		{advance: 1, ws: shaped.WhitespaceOther, boundary: shaped.BoundaryMandatory},
		{advance: 1, ws: shaped.WhitespaceNotSpace},
	}
	l := buildTestLayout(specs)
	bl := NewBreakLines(l)
	bl.BreakRemaining(float32(math.Inf(1)), Start)

	assert.Len(t, l.Lines, 2)
	assert.Equal(t, BreakExplicit, l.Lines[0].BreakReason)
	assert.Equal(t, BreakNone, l.Lines[1].BreakReason)
}

func TestBreakLinesEmergencyBreakOnUnbreakableCluster(t *testing.T) {
	specs := []testCluster{
		{advance: 100, ws: shaped.WhitespaceNotSpace},
	}
	l := buildTestLayout(specs)
	bl := NewBreakLines(l)
	bl.BreakRemaining(5, Start)

	assert.Len(t, l.Lines, 1)
	assert.Equal(t, BreakEmergency, l.Lines[0].BreakReason)
}

func TestBreakLinesJustifyDistributesFreeSpace(t *testing.T) {
	// "a b c d", broken at the space before 'd' because 'd' itself
	// doesn't fit: line 1 ends up as "a b c" via a boundary revert, with
	// two interior spaces tallied, one of which a BreakRegular commit
	// saturating-decrements away, leaving exactly one space to justify
	// against one unit of free space (maxAdvance 6 - content 5).
	specs := []testCluster{
		{advance: 1, ws: shaped.WhitespaceNotSpace},                            // a
		{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine}, // sp
		{advance: 1, ws: shaped.WhitespaceNotSpace},                            // b
		{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine}, // sp
		{advance: 1, ws: shaped.WhitespaceNotSpace},                            // c
		{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine}, // sp
		{advance: 1, ws: shaped.WhitespaceNotSpace},                            // d
	}
	l := buildTestLayout(specs)
	bl := NewBreakLines(l)
	bl.BreakRemaining(6, Justified)

	assert.True(t, len(l.Lines) >= 1)
	line1 := l.Lines[0]
	assert.Equal(t, BreakRegular, line1.BreakReason)
	assert.Equal(t, 1, line1.NumSpaces)
	assert.InDelta(t, 1, line1.JustifyAdjustment, 0.001)
	assert.InDelta(t, 6, line1.Metrics.Advance, 0.001)
	// Only the first NumSpaces (1) interior space is adjusted, even
	// though the line's clusters still contain a second, uncounted one.
	assert.InDelta(t, 2, l.Clusters[1].Advance, 0.001)
	assert.InDelta(t, 1, l.Clusters[3].Advance, 0.001)
}

func TestUnjustifyRestoresClusterAdvances(t *testing.T) {
	// Same "a b c d" shape as TestBreakLinesJustifyDistributesFreeSpace,
	// where line 1 keeps exactly one space (after the Regular-break
	// saturating decrement) to justify.
	specs := []testCluster{
		{advance: 1, ws: shaped.WhitespaceNotSpace},
		{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine},
		{advance: 1, ws: shaped.WhitespaceNotSpace},
		{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine},
		{advance: 1, ws: shaped.WhitespaceNotSpace},
		{advance: 1, ws: shaped.WhitespaceSpace, boundary: shaped.BoundaryLine},
		{advance: 1, ws: shaped.WhitespaceNotSpace},
	}
	l := buildTestLayout(specs)
	NewBreakLines(l).BreakRemaining(6, Justified)
	assert.InDelta(t, 2, l.Clusters[1].Advance, 0.001)

	// Re-breaking must see the original, unjustified advances.
	NewBreakLines(l).BreakRemaining(6, Justified)
	assert.InDelta(t, 2, l.Clusters[1].Advance, 0.001)
}

func TestBreakLinesEmergencyCommitsFitThenRetriesOversizedCluster(t *testing.T) {
	specs := []testCluster{
		{advance: 3, ws: shaped.WhitespaceNotSpace},
		{advance: 100, ws: shaped.WhitespaceNotSpace},
	}
	l := buildTestLayout(specs)
	bl := NewBreakLines(l)
	bl.BreakRemaining(5, Start)

	assert.Len(t, l.Lines, 2)
	assert.Equal(t, BreakEmergency, l.Lines[0].BreakReason)
	assert.InDelta(t, 3, l.Lines[0].Metrics.Advance, 0.001)
	assert.Equal(t, BreakEmergency, l.Lines[1].BreakReason)
	assert.InDelta(t, 100, l.Lines[1].Metrics.Advance, 0.001)
}

func TestBreakLinesRevertRestoresPriorState(t *testing.T) {
	l := buildTestLayout(helloWorldClusters())
	bl := NewBreakLines(l)

	_, _, ok := bl.BreakNext(5, Start)
	assert.True(t, ok)
	linesAfterFirst := len(bl.lines.lines)

	_, _, ok = bl.BreakNext(5, Start)
	assert.True(t, ok)

	assert.True(t, bl.Revert())
	assert.Len(t, bl.lines.lines, linesAfterFirst)

	_, _, ok = bl.BreakNext(5, Start)
	assert.True(t, ok)
}

func TestBreakLinesEmptyLayoutProducesOneLine(t *testing.T) {
	l := buildTestLayout(nil)
	bl := NewBreakLines(l)
	bl.BreakRemaining(float32(math.Inf(1)), Start)

	assert.Len(t, l.Lines, 1)
	assert.Equal(t, BreakNone, l.Lines[0].BreakReason)
	assert.Equal(t, 0, l.Lines[0].RunRange.Len())
}
