// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// TextStyle is the user-facing, unresolved style a caller assembles before
// handing it to a [Resolver]. Numeric fields are in the caller's own
// units; [Resolver.ResolveEntireStyleSet] scales them into layout units.
type TextStyle struct {
	FontStack     FontStack
	Weight        float32
	Slant         FontSlant
	Stretch       float32
	Size          float32
	Brush         Brush
	LineHeight    float32
	WordSpacing   float32
	LetterSpacing float32
	Features      []FontFeature
	Underline     ResolvedDecoration
	Strikethrough ResolvedDecoration
}

// DefaultTextStyle returns the style used as the root of a paragraph when
// the caller has not overridden a field. It matches common CSS defaults:
// a sans-serif stack at weight 400, size 16, with a line-height multiplier
// of 1.2 and no decorations.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontStack:  FontStack{"sans-serif"},
		Weight:     400,
		Slant:      Normal,
		Stretch:    100,
		Size:       16,
		LineHeight: 1.2,
	}
}

// ResolvedStyle is the complete visual state at a point in text: every
// numeric field is finite, and every field except the decoration offsets
// is non-negative.
type ResolvedStyle struct {
	FontStack     FontStackID
	Weight        float32
	Slant         FontSlant
	Stretch       float32
	Size          float32
	Brush         Brush
	LineHeight    float32
	WordSpacing   float32
	LetterSpacing float32
	Features      []FontFeature
	Underline     ResolvedDecoration
	Strikethrough ResolvedDecoration
}

// DecorationBrush returns the brush a decoration should be painted with:
// its own brush if it has one, otherwise the owning style's brush.
func (s *ResolvedStyle) DecorationBrush(d ResolvedDecoration) Brush {
	if d.HasBrush {
		return d.Brush
	}
	return s.Brush
}

// Clone returns a value copy of s. Brush and Features are shared (a Brush
// is opaque and never mutated in place by this package; Features is
// treated as immutable once attached to a style).
func (s ResolvedStyle) Clone() ResolvedStyle {
	return s
}

// Equal reports whether two resolved styles are identical in every field
// other than their brushes. It is used by the ranged builder to collapse
// adjacent segments that resolved to the same style.
//
// Brush values are never compared (the core treats a Brush as opaque and
// only ever clones it), so two styles that differ only in brush identity
// are still considered equal here.
func (s ResolvedStyle) Equal(o ResolvedStyle) bool {
	if s.FontStack != o.FontStack ||
		s.Weight != o.Weight ||
		s.Slant != o.Slant ||
		s.Stretch != o.Stretch ||
		s.Size != o.Size ||
		s.LineHeight != o.LineHeight ||
		s.WordSpacing != o.WordSpacing ||
		s.LetterSpacing != o.LetterSpacing ||
		!s.Underline.equalIgnoringBrush(o.Underline) ||
		!s.Strikethrough.equalIgnoringBrush(o.Strikethrough) {
		return false
	}
	if len(s.Features) != len(o.Features) {
		return false
	}
	for i := range s.Features {
		if s.Features[i] != o.Features[i] {
			return false
		}
	}
	return true
}

func (d ResolvedDecoration) equalIgnoringBrush(o ResolvedDecoration) bool {
	return d.Enabled == o.Enabled &&
		d.HasBrush == o.HasBrush &&
		d.Offset == o.Offset &&
		d.Size == o.Size
}
