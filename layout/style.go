// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/dfrg/parleygo/rich"

// Decoration is a resolved underline or strikethrough: the owning
// style's brush has already been substituted in if the decoration didn't
// specify its own.
type Decoration struct {
	Brush  rich.Brush
	Offset float32
	Size   float32
}

// Style is the reduced per-run visual state a [Layout] keeps after
// shaping: the parts of a [rich.ResolvedStyle] still needed for painting
// and metrics (brush, decorations, line-height multiplier), with
// everything that only mattered for font selection and shaping
// (font stack, weight, slant, stretch, features, spacing) already baked
// into the shaped runs and clusters.
type Style struct {
	Brush         rich.Brush
	Underline     *Decoration
	Strikethrough *Decoration
	LineHeight    float32
}

// styleFromResolved reduces a fully resolved style down to the subset a
// Layout retains post-shaping, inheriting each decoration's brush from
// the owning style when the decoration didn't specify its own.
func styleFromResolved(rs rich.ResolvedStyle) Style {
	s := Style{Brush: rs.Brush, LineHeight: rs.LineHeight}
	if rs.Underline.Enabled {
		s.Underline = &Decoration{
			Brush:  rs.DecorationBrush(rs.Underline),
			Offset: rs.Underline.Offset,
			Size:   rs.Underline.Size,
		}
	}
	if rs.Strikethrough.Enabled {
		s.Strikethrough = &Decoration{
			Brush:  rs.DecorationBrush(rs.Strikethrough),
			Offset: rs.Strikethrough.Offset,
			Size:   rs.Strikethrough.Size,
		}
	}
	return s
}
