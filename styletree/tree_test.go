// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styletree

import (
	"testing"

	"github.com/dfrg/parleygo/rich"
	"github.com/stretchr/testify/assert"
)

func TestTreeBuilderFlatNesting(t *testing.T) {
	root := rich.ResolvedStyle{Weight: 400}
	bold := rich.ResolvedStyle{Weight: 700}

	b := NewBuilder()
	b.Begin(root)
	b.PushText(4) // "The "
	b.PushStyleSpan(bold)
	b.PushText(4) // "lazy"
	b.PopStyleSpan()
	b.PushText(6) // " stuff"
	out := b.Finish()

	assert.Len(t, out, 3)
	assert.Equal(t, 0, out[0].Range.Start)
	assert.Equal(t, 4, out[0].Range.End)
	assert.Equal(t, float32(400), out[0].Style.Weight)

	assert.Equal(t, 4, out[1].Range.Start)
	assert.Equal(t, 8, out[1].Range.End)
	assert.Equal(t, float32(700), out[1].Style.Weight)

	assert.Equal(t, 8, out[2].Range.Start)
	assert.Equal(t, 14, out[2].Range.End)
	assert.Equal(t, float32(400), out[2].Style.Weight)
}

func TestTreeBuilderModificationSpan(t *testing.T) {
	root := rich.ResolvedStyle{Weight: 400, Slant: rich.Normal}
	b := NewBuilder()
	b.Begin(root)
	b.PushText(3)
	b.PushStyleModificationSpan([]rich.ResolvedProperty{
		{Kind: rich.PropSlant, Slant: rich.Italic},
	})
	b.PushText(3)
	b.PopStyleSpan()
	out := b.Finish()

	assert.Len(t, out, 2)
	assert.Equal(t, rich.Normal, out[0].Style.Slant)
	assert.Equal(t, float32(400), out[0].Style.Weight, "modification span must preserve unmentioned fields")
	assert.Equal(t, rich.Italic, out[1].Style.Slant)
	assert.Equal(t, float32(400), out[1].Style.Weight)
}

func TestTreeBuilderNestedSpans(t *testing.T) {
	root := rich.ResolvedStyle{Weight: 400}
	a := rich.ResolvedStyle{Weight: 700}
	c := rich.ResolvedStyle{Weight: 900}

	b := NewBuilder()
	b.Begin(root)
	b.PushStyleSpan(a)
	b.PushText(2)
	b.PushStyleSpan(c)
	b.PushText(2)
	b.PopStyleSpan()
	b.PushText(2)
	b.PopStyleSpan()
	out := b.Finish()

	assert.Len(t, out, 3)
	assert.Equal(t, float32(700), out[0].Style.Weight)
	assert.Equal(t, float32(900), out[1].Style.Weight)
	assert.Equal(t, float32(700), out[2].Style.Weight)
}

func TestTreeBuilderPopRootPanics(t *testing.T) {
	b := NewBuilder()
	b.Begin(rich.ResolvedStyle{})
	assert.Panics(t, func() {
		b.PopStyleSpan()
	})
}

func TestTreeBuilderBeginResets(t *testing.T) {
	b := NewBuilder()
	b.Begin(rich.ResolvedStyle{Weight: 400})
	b.PushText(5)
	b.Finish()

	b.Begin(rich.ResolvedStyle{Weight: 200})
	b.PushText(3)
	out := b.Finish()
	assert.Len(t, out, 1)
	assert.Equal(t, float32(200), out[0].Style.Weight)
	assert.Equal(t, 0, out[0].Range.Start)
	assert.Equal(t, 3, out[0].Range.End)
}
