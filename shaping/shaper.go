// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaping

import (
	"github.com/dfrg/parleygo/rich"
	"github.com/dfrg/parleygo/shaped"
	"github.com/dfrg/parleygo/styledtext"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
)

// FontHandle is the opaque font resource a [FontQuery] hands back to the
// shaper. It wraps go-text/typesetting's font.Face, the same handle a
// real HarfBuzz-backed shaper consumes; this module never dereferences
// it, only carries it through from query to shaper.
type FontHandle struct {
	Face gotextfont.Face
}

// FontQuery maps a resolved font stack and style attributes to a font
// resource. Font collection and fallback are explicitly out of scope for
// this module; FontQuery is the seam a caller plugs a real implementation
// into.
type FontQuery interface {
	Resolve(stack rich.FontStackID, weight float32, slant rich.FontSlant, stretch float32) (FontHandle, bool)
}

// Input is everything a [Shaper] needs to produce runs and clusters for a
// paragraph.
type Input struct {
	Text string

	// Styles is the flattened, non-overlapping style sequence covering
	// the whole paragraph.
	Styles []styledtext.RangedStyle

	// InlineBoxes are sorted by Index (stably) before shaping.
	InlineBoxes []shaped.InlineBox

	// StyleIndex holds one entry per byte of Text: the index into
	// Styles governing that byte. The layout builders fill it from the
	// flattened styles in order.
	StyleIndex []uint16

	// BidiLevels holds one entry per character of Text.
	BidiLevels []uint8

	// CharInfo holds one entry per character of Text, carrying the
	// line-break boundary class and whitespace classification a
	// [TextAnalyzer] computed. A [Shaper] uses it to stamp
	// [shaped.ClusterInfo] onto the clusters it produces.
	CharInfo []CharInfo

	// Language and Script are carried through opaquely for a real
	// shaper to key font and feature selection on; this module neither
	// parses nor validates them.
	Language language.Language
	Script   language.Script

	Query FontQuery
}

// Shaper turns analyzed, styled text into runs and clusters. A real
// implementation wraps a shaping engine (e.g. HarfBuzz via
// go-text/typesetting/shaping); this module depends only on the
// contract.
type Shaper interface {
	Shape(input Input) (runs []shaped.Run, clusters []shaped.Cluster)
}
