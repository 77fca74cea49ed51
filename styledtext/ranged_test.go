// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styledtext

import (
	"testing"

	"github.com/dfrg/parleygo/rich"
	"github.com/dfrg/parleygo/textpos"
	"github.com/stretchr/testify/assert"
)

func assertCoversExactly(t *testing.T, styles []RangedStyle, textLen int) {
	t.Helper()
	cursor := 0
	for _, s := range styles {
		assert.False(t, s.Range.IsEmpty(), "ranges must be non-empty")
		assert.Equal(t, cursor, s.Range.Start, "ranges must be contiguous")
		cursor = s.Range.End
	}
	assert.Equal(t, textLen, cursor, "ranges must cover [0, textLen)")
}

func TestRangedBuilderNoOverrides(t *testing.T) {
	r := rich.NewResolver()
	b := NewBuilder(r, nil, 1)
	b.PushDefault(rich.WeightProperty(400))
	out := b.Finish(11)
	assertCoversExactly(t, out, 11)
	assert.Len(t, out, 1)
	assert.Equal(t, float32(400), out[0].Style.Weight)
}

func TestRangedBuilderOverlapLaterWins(t *testing.T) {
	r := rich.NewResolver()
	b := NewBuilder(r, nil, 1)
	b.PushDefault(rich.WeightProperty(400))
	b.Push(rich.WeightProperty(700), textpos.Range{0, 8})
	b.Push(rich.SlantProperty(rich.Italic), textpos.Range{4, 11})
	out := b.Finish(11)
	assertCoversExactly(t, out, 11)

	// [0,4): weight 700, normal
	// [4,8): weight 700, italic
	// [8,11): weight 400, italic
	assert.Len(t, out, 3)
	assert.Equal(t, textpos.Range{0, 4}, out[0].Range)
	assert.Equal(t, float32(700), out[0].Style.Weight)
	assert.Equal(t, rich.Normal, out[0].Style.Slant)

	assert.Equal(t, textpos.Range{4, 8}, out[1].Range)
	assert.Equal(t, float32(700), out[1].Style.Weight)
	assert.Equal(t, rich.Italic, out[1].Style.Slant)

	assert.Equal(t, textpos.Range{8, 11}, out[2].Range)
	assert.Equal(t, float32(400), out[2].Style.Weight)
	assert.Equal(t, rich.Italic, out[2].Style.Slant)
}

func TestRangedBuilderCollapsesIdenticalAdjacent(t *testing.T) {
	r := rich.NewResolver()
	b := NewBuilder(r, nil, 1)
	b.PushDefault(rich.WeightProperty(400))
	// Two pushes of the same property over adjacent ranges must collapse
	// back into a single segment.
	b.Push(rich.WeightProperty(700), textpos.Range{0, 5})
	b.Push(rich.WeightProperty(700), textpos.Range{5, 10})
	out := b.Finish(10)
	assertCoversExactly(t, out, 10)
	assert.Len(t, out, 1)
}

func TestRangedBuilderBeginResets(t *testing.T) {
	r := rich.NewResolver()
	b := NewBuilder(r, nil, 1)
	b.PushDefault(rich.WeightProperty(700))
	b.Push(rich.SlantProperty(rich.Italic), textpos.Range{0, 5})
	b.Finish(5)

	b.Begin()
	b.PushDefault(rich.WeightProperty(400))
	out := b.Finish(5)
	assert.Len(t, out, 1)
	assert.Equal(t, float32(400), out[0].Style.Weight)
	assert.Equal(t, rich.Normal, out[0].Style.Slant)
}
