// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontStackIntern(t *testing.T) {
	r := NewResolver()
	a := r.ResolveProperty(nil, FontStackProperty(FontStack{"Inter", "sans-serif"}), 1)
	b := r.ResolveProperty(nil, FontStackProperty(FontStack{"Inter", "sans-serif"}), 1)
	c := r.ResolveProperty(nil, FontStackProperty(FontStack{"Georgia", "serif"}), 1)
	assert.Equal(t, a.FontStack, b.FontStack)
	assert.NotEqual(t, a.FontStack, c.FontStack)

	stack, ok := r.Stack(a.FontStack)
	assert.True(t, ok)
	assert.Equal(t, FontStack{"Inter", "sans-serif"}, stack)
}

func TestResolveEntireStyleSet(t *testing.T) {
	r := NewResolver()
	ts := DefaultTextStyle()
	ts.Size = 10
	ts.Underline = ResolvedDecoration{Enabled: true, Offset: 2, Size: 1}
	resolved := r.ResolveEntireStyleSet(nil, ts, 2)
	assert.Equal(t, float32(20), resolved.Size)
	assert.Equal(t, float32(4), resolved.Underline.Offset)
	assert.Equal(t, float32(2), resolved.Underline.Size)
}

func TestResolvedStyleApply(t *testing.T) {
	r := NewResolver()
	base := r.ResolveEntireStyleSet(nil, DefaultTextStyle(), 1)
	modified := base
	modified.Apply(r.ResolveProperty(nil, WeightProperty(700), 1))
	modified.Apply(r.ResolveProperty(nil, SlantProperty(Italic), 1))
	assert.Equal(t, float32(700), modified.Weight)
	assert.Equal(t, Italic, modified.Slant)
	assert.Equal(t, float32(400), base.Weight, "Apply must not mutate the source style")
}

func TestResolvedStyleEqualIgnoresBrush(t *testing.T) {
	a := ResolvedStyle{Weight: 400, Brush: "red"}
	b := ResolvedStyle{Weight: 400, Brush: "blue"}
	assert.True(t, a.Equal(b))
	b.Weight = 700
	assert.False(t, a.Equal(b))
}
