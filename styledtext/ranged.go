// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styledtext implements the ranged style builder: it accepts
// (property, range) pairs and flattens them into a non-overlapping
// sequence of [RangedStyle] values covering the whole paragraph.
package styledtext

import (
	"sort"

	"github.com/dfrg/parleygo/rich"
	"github.com/dfrg/parleygo/textpos"
)

// RangedStyle pairs a resolved style with the contiguous byte range of
// text it applies to.
type RangedStyle struct {
	Range textpos.Range
	Style rich.ResolvedStyle
}

type rangedPush struct {
	prop  rich.ResolvedProperty
	Range textpos.Range
}

// Builder accepts (property, range) pairs and flattens them into the
// sequence of [RangedStyle] values required by [layout.Layout]. It is
// reusable across paragraphs; call [Builder.Begin] before each new one.
type Builder struct {
	resolver *rich.Resolver
	fcx      rich.FontContext
	scale    float32

	defaults rich.ResolvedStyle
	pushes   []rangedPush
}

// NewBuilder returns a builder backed by resolver, resolving properties
// at the given device scale.
func NewBuilder(resolver *rich.Resolver, fcx rich.FontContext, scale float32) *Builder {
	b := &Builder{resolver: resolver, fcx: fcx, scale: scale}
	b.Begin()
	return b
}

// Begin resets the builder for a new paragraph.
func (b *Builder) Begin() {
	b.defaults = rich.ResolvedStyle{}
	b.pushes = b.pushes[:0]
}

// PushDefault sets property for the entire paragraph. Its order relative
// to [Builder.Push] calls does not matter: defaults are always the base
// that ranged pushes are overlaid onto at [Builder.Finish].
func (b *Builder) PushDefault(prop rich.StyleProperty) {
	resolved := b.resolver.ResolveProperty(b.fcx, prop, b.scale)
	b.defaults.Apply(resolved)
}

// Push overrides property over byte range rng. Later pushes override
// earlier ones on overlap.
func (b *Builder) Push(prop rich.StyleProperty, rng textpos.Range) {
	if rng.IsEmpty() {
		return
	}
	resolved := b.resolver.ResolveProperty(b.fcx, prop, b.scale)
	b.pushes = append(b.pushes, rangedPush{prop: resolved, Range: rng})
}

// Finish flattens the pushed properties into the ranged sequence required
// by [RangedStyle]'s invariants: contiguous, disjoint, ordered, and
// covering exactly [0, textLen).
func (b *Builder) Finish(textLen int) []RangedStyle {
	if textLen <= 0 {
		return nil
	}

	boundarySet := map[int]struct{}{0: {}, textLen: {}}
	for _, p := range b.pushes {
		start := clamp(p.Range.Start, 0, textLen)
		end := clamp(p.Range.End, 0, textLen)
		boundarySet[start] = struct{}{}
		boundarySet[end] = struct{}{}
	}
	boundaries := make([]int, 0, len(boundarySet))
	for at := range boundarySet {
		boundaries = append(boundaries, at)
	}
	sort.Ints(boundaries)

	out := make([]RangedStyle, 0, len(boundaries))
	for i := 0; i+1 < len(boundaries); i++ {
		seg := textpos.Range{Start: boundaries[i], End: boundaries[i+1]}
		style := b.defaults
		for _, p := range b.pushes {
			pr := textpos.Range{Start: clamp(p.Range.Start, 0, textLen), End: clamp(p.Range.End, 0, textLen)}
			if pr.Start <= seg.Start && pr.End >= seg.End {
				style.Apply(p.prop)
			}
		}
		out = append(out, RangedStyle{Range: seg, Style: style})
	}

	return collapseAdjacent(out)
}

// collapseAdjacent merges adjacent segments whose styles compare equal
// under [rich.ResolvedStyle.Equal], so each emitted segment is maximal.
// The merged segment keeps the first segment's style.
func collapseAdjacent(in []RangedStyle) []RangedStyle {
	if len(in) == 0 {
		return in
	}
	out := make([]RangedStyle, 0, len(in))
	cur := in[0]
	for _, next := range in[1:] {
		if cur.Style.Equal(next.Style) {
			cur.Range.End = next.Range.End
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
