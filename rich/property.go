// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// PropertyKind identifies which field of a style a [StyleProperty] or
// [ResolvedProperty] touches.
type PropertyKind int32

const (
	PropFontStack PropertyKind = iota
	PropWeight
	PropSlant
	PropStretch
	PropSize
	PropBrush
	PropLineHeight
	PropWordSpacing
	PropLetterSpacing
	PropFeatures
	PropUnderline
	PropUnderlineBrush
	PropUnderlineOffset
	PropUnderlineSize
	PropStrikethrough
	PropStrikethroughBrush
	PropStrikethroughOffset
	PropStrikethroughSize
)

// StyleProperty is a single, unresolved style override as supplied by a
// caller of [styledtext.Builder] or [styletree.Builder]. Exactly the
// field matching Kind is meaningful; the rest are ignored.
type StyleProperty struct {
	Kind      PropertyKind
	FontStack FontStack
	Float     float32
	Slant     FontSlant
	Brush     Brush
	Features  []FontFeature
	Bool      bool
}

// ResolvedProperty is a [StyleProperty] after font-stack interning and
// scale application.
type ResolvedProperty struct {
	Kind      PropertyKind
	FontStack FontStackID
	Float     float32
	Slant     FontSlant
	Brush     Brush
	Features  []FontFeature
	Bool      bool
}

// Constructors for the common property kinds. These exist so callers
// don't need to remember which generic field a given Kind reads from.

func FontStackProperty(stack FontStack) StyleProperty {
	return StyleProperty{Kind: PropFontStack, FontStack: stack}
}

func WeightProperty(weight float32) StyleProperty {
	return StyleProperty{Kind: PropWeight, Float: weight}
}

func SlantProperty(slant FontSlant) StyleProperty {
	return StyleProperty{Kind: PropSlant, Slant: slant}
}

func StretchProperty(stretch float32) StyleProperty {
	return StyleProperty{Kind: PropStretch, Float: stretch}
}

func SizeProperty(size float32) StyleProperty {
	return StyleProperty{Kind: PropSize, Float: size}
}

func BrushProperty(brush Brush) StyleProperty {
	return StyleProperty{Kind: PropBrush, Brush: brush}
}

func LineHeightProperty(multiplier float32) StyleProperty {
	return StyleProperty{Kind: PropLineHeight, Float: multiplier}
}

func WordSpacingProperty(spacing float32) StyleProperty {
	return StyleProperty{Kind: PropWordSpacing, Float: spacing}
}

func LetterSpacingProperty(spacing float32) StyleProperty {
	return StyleProperty{Kind: PropLetterSpacing, Float: spacing}
}

func FeaturesProperty(features []FontFeature) StyleProperty {
	return StyleProperty{Kind: PropFeatures, Features: features}
}

func UnderlineProperty(enabled bool) StyleProperty {
	return StyleProperty{Kind: PropUnderline, Bool: enabled}
}

func UnderlineBrushProperty(brush Brush) StyleProperty {
	return StyleProperty{Kind: PropUnderlineBrush, Brush: brush, Bool: true}
}

func UnderlineOffsetProperty(offset float32) StyleProperty {
	return StyleProperty{Kind: PropUnderlineOffset, Float: offset}
}

func UnderlineSizeProperty(size float32) StyleProperty {
	return StyleProperty{Kind: PropUnderlineSize, Float: size}
}

func StrikethroughProperty(enabled bool) StyleProperty {
	return StyleProperty{Kind: PropStrikethrough, Bool: enabled}
}

func StrikethroughBrushProperty(brush Brush) StyleProperty {
	return StyleProperty{Kind: PropStrikethroughBrush, Brush: brush, Bool: true}
}

func StrikethroughOffsetProperty(offset float32) StyleProperty {
	return StyleProperty{Kind: PropStrikethroughOffset, Float: offset}
}

func StrikethroughSizeProperty(size float32) StyleProperty {
	return StyleProperty{Kind: PropStrikethroughSize, Float: size}
}
