// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// FontContext stands in for the (out-of-scope) font collection and
// fallback component: a real implementation would let the resolver
// normalize generic family names against installed fonts. The core only
// threads it through to keep the signature compatible with a concrete
// font-fallback collaborator; it is never dereferenced here.
type FontContext any

// Resolver turns user-supplied [StyleProperty]/[TextStyle] values into
// their resolved, numeric form. It owns the font-stack intern table, so
// resolution is pure given the font context: the only side effect is an
// insertion into that table.
type Resolver struct {
	intern *FontStackIntern
}

// NewResolver returns a resolver with an empty font-stack intern table.
func NewResolver() *Resolver {
	return &Resolver{intern: NewFontStackIntern()}
}

// Stack returns the font stack previously interned under id.
func (r *Resolver) Stack(id FontStackID) (FontStack, bool) {
	return r.intern.Stack(id)
}

// ResolveProperty resolves a single style property, interning its font
// stack (if any) and scaling any size-like field by scale.
func (r *Resolver) ResolveProperty(fcx FontContext, prop StyleProperty, scale float32) ResolvedProperty {
	out := ResolvedProperty{
		Kind:     prop.Kind,
		Slant:    prop.Slant,
		Brush:    prop.Brush,
		Features: prop.Features,
		Bool:     prop.Bool,
	}
	switch prop.Kind {
	case PropFontStack:
		out.FontStack = r.intern.Intern(prop.FontStack)
	case PropSize, PropUnderlineOffset, PropUnderlineSize, PropStrikethroughOffset, PropStrikethroughSize:
		out.Float = prop.Float * scale
	default:
		out.Float = prop.Float
	}
	return out
}

// ResolveEntireStyleSet resolves every field of style at once, producing
// a complete [ResolvedStyle]. Size and decoration offsets/sizes are
// scaled by scale; weight, stretch, line-height multiplier, word-spacing,
// and letter-spacing are not (they are already expressed in
// absolute or relative units that scale has no bearing on, matching the
// scaling rules applied field-by-field in [Resolver.ResolveProperty]).
func (r *Resolver) ResolveEntireStyleSet(fcx FontContext, style TextStyle, scale float32) ResolvedStyle {
	resolved := ResolvedStyle{
		FontStack:     r.intern.Intern(style.FontStack),
		Weight:        style.Weight,
		Slant:         style.Slant,
		Stretch:       style.Stretch,
		Size:          style.Size * scale,
		Brush:         style.Brush,
		LineHeight:    style.LineHeight,
		WordSpacing:   style.WordSpacing,
		LetterSpacing: style.LetterSpacing,
		Features:      style.Features,
		Underline:     style.Underline,
		Strikethrough: style.Strikethrough,
	}
	resolved.Underline.Offset *= scale
	resolved.Underline.Size *= scale
	resolved.Strikethrough.Offset *= scale
	resolved.Strikethrough.Size *= scale
	return resolved
}

// Apply mutates s by overlaying the single resolved property p, matching
// the semantics used by [styletree.Builder] when it opens a
// modification span: a copy of the current style has each requested
// property delta applied in turn.
func (s *ResolvedStyle) Apply(p ResolvedProperty) {
	switch p.Kind {
	case PropFontStack:
		s.FontStack = p.FontStack
	case PropWeight:
		s.Weight = p.Float
	case PropSlant:
		s.Slant = p.Slant
	case PropStretch:
		s.Stretch = p.Float
	case PropSize:
		s.Size = p.Float
	case PropBrush:
		s.Brush = p.Brush
	case PropLineHeight:
		s.LineHeight = p.Float
	case PropWordSpacing:
		s.WordSpacing = p.Float
	case PropLetterSpacing:
		s.LetterSpacing = p.Float
	case PropFeatures:
		s.Features = p.Features
	case PropUnderline:
		s.Underline.Enabled = p.Bool
	case PropUnderlineBrush:
		s.Underline.HasBrush = true
		s.Underline.Brush = p.Brush
	case PropUnderlineOffset:
		s.Underline.Offset = p.Float
	case PropUnderlineSize:
		s.Underline.Size = p.Float
	case PropStrikethrough:
		s.Strikethrough.Enabled = p.Bool
	case PropStrikethroughBrush:
		s.Strikethrough.HasBrush = true
		s.Strikethrough.Brush = p.Brush
	case PropStrikethroughOffset:
		s.Strikethrough.Offset = p.Float
	case PropStrikethroughSize:
		s.Strikethrough.Size = p.Float
	}
}
