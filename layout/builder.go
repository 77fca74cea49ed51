// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"log/slog"
	"sort"

	"github.com/go-text/typesetting/language"

	"github.com/dfrg/parleygo/rich"
	"github.com/dfrg/parleygo/shaped"
	"github.com/dfrg/parleygo/shaping"
	"github.com/dfrg/parleygo/styledtext"
	"github.com/dfrg/parleygo/styletree"
	"github.com/dfrg/parleygo/textpos"
)

// RangedBuilder assembles a [Layout] from a fixed text string and a flat
// set of byte-range style overrides, following the same begin/push/finish
// shape as [styledtext.Builder] that it wraps.
type RangedBuilder struct {
	text        string
	styles      *styledtext.Builder
	inlineBoxes []shaped.InlineBox
	language    language.Language
	script      language.Script
	scale       float32
}

// NewRangedBuilder starts a ranged build over text, scaled by scale
// (typically a device pixel ratio).
func NewRangedBuilder(resolver *rich.Resolver, fcx rich.FontContext, text string, scale float32) *RangedBuilder {
	b := styledtext.NewBuilder(resolver, fcx, scale)
	b.Begin()
	return &RangedBuilder{text: text, styles: b, scale: scale}
}

// PushDefault sets a property on the builder's base style, applying to
// any byte not covered by a later, narrower Push.
func (b *RangedBuilder) PushDefault(prop rich.StyleProperty) { b.styles.PushDefault(prop) }

// Push overrides a property over a byte range of the builder's text.
func (b *RangedBuilder) Push(prop rich.StyleProperty, rng textpos.Range) { b.styles.Push(prop, rng) }

// PushInlineBox records an inline box anchored at the given byte offset
// into the builder's text.
func (b *RangedBuilder) PushInlineBox(box shaped.InlineBox, atByte int) {
	box.Index = atByte
	b.inlineBoxes = append(b.inlineBoxes, box)
}

// SetLanguage records the dominant language for shaping and analysis.
func (b *RangedBuilder) SetLanguage(l language.Language) { b.language = l }

// SetScript records the dominant script for shaping and analysis.
func (b *RangedBuilder) SetScript(s language.Script) { b.script = s }

// BuildInto runs analysis and shaping and installs the result into an
// existing Layout, reusing its buffers where Go's append semantics
// allow it.
func (b *RangedBuilder) BuildInto(layout *Layout, analyzer shaping.TextAnalyzer, shaper shaping.Shaper, query shaping.FontQuery) {
	// Finish needs a non-zero length to emit even one style segment;
	// buildIntoLayout performs the matching text substitution for a
	// genuinely empty paragraph.
	finishLen := len(b.text)
	if finishLen == 0 {
		finishLen = 1
	}
	styles := b.styles.Finish(finishLen)
	buildIntoLayout(layout, b.text, styles, b.inlineBoxes, b.language, b.script, analyzer, shaper, query, b.scale)
}

// Build runs analysis and shaping and returns a freshly allocated
// Layout.
func (b *RangedBuilder) Build(analyzer shaping.TextAnalyzer, shaper shaping.Shaper, query shaping.FontQuery) *Layout {
	layout := &Layout{}
	b.BuildInto(layout, analyzer, shaper, query)
	return layout
}

// TreeBuilder assembles a [Layout] from a sequence of nested style spans
// interleaved with text, following the same shape as [styletree.Builder]
// that it wraps. Unlike RangedBuilder, the text itself is supplied
// incrementally via PushText rather than known up front.
type TreeBuilder struct {
	resolver    *rich.Resolver
	fcx         rich.FontContext
	scale       float32
	tree        *styletree.Builder
	text        []byte
	inlineBoxes []shaped.InlineBox
	language    language.Language
	script      language.Script
}

// NewTreeBuilder starts a tree build rooted at rootStyle, scaled by
// scale.
func NewTreeBuilder(resolver *rich.Resolver, fcx rich.FontContext, scale float32, rootStyle rich.TextStyle) *TreeBuilder {
	root := resolver.ResolveEntireStyleSet(fcx, rootStyle, scale)
	tree := styletree.NewBuilder()
	tree.Begin(root)
	return &TreeBuilder{resolver: resolver, fcx: fcx, scale: scale, tree: tree}
}

// PushStyleSpan opens a span that fully overrides the current style for
// its extent.
func (b *TreeBuilder) PushStyleSpan(style rich.TextStyle) {
	resolved := b.resolver.ResolveEntireStyleSet(b.fcx, style, b.scale)
	b.tree.PushStyleSpan(resolved)
}

// PushStyleModificationSpan opens a span that overrides only the given
// properties, inheriting everything else from the enclosing span.
func (b *TreeBuilder) PushStyleModificationSpan(props []rich.StyleProperty) {
	resolved := make([]rich.ResolvedProperty, len(props))
	for i, p := range props {
		resolved[i] = b.resolver.ResolveProperty(b.fcx, p, b.scale)
	}
	b.tree.PushStyleModificationSpan(resolved)
}

// PopStyleSpan closes the most recently opened span.
func (b *TreeBuilder) PopStyleSpan() { b.tree.PopStyleSpan() }

// PushText appends s to the builder's text under the current span.
func (b *TreeBuilder) PushText(s string) {
	b.text = append(b.text, s...)
	b.tree.PushText(len(s))
}

// PushInlineBox records an inline box anchored at the current end of the
// builder's text.
func (b *TreeBuilder) PushInlineBox(box shaped.InlineBox) {
	box.Index = len(b.text)
	b.inlineBoxes = append(b.inlineBoxes, box)
}

// SetLanguage records the dominant language for shaping and analysis.
func (b *TreeBuilder) SetLanguage(l language.Language) { b.language = l }

// SetScript records the dominant script for shaping and analysis.
func (b *TreeBuilder) SetScript(s language.Script) { b.script = s }

// BuildInto runs analysis and shaping and installs the result into an
// existing Layout.
func (b *TreeBuilder) BuildInto(layout *Layout, analyzer shaping.TextAnalyzer, shaper shaping.Shaper, query shaping.FontQuery) {
	if len(b.text) == 0 {
		// Mirror RangedBuilder.BuildInto: force one flattened segment so
		// an empty paragraph still gets a default style to shape its
		// substituted space with.
		b.tree.PushText(1)
	}
	text := string(b.text)
	styles := b.tree.Finish()
	buildIntoLayout(layout, text, styles, b.inlineBoxes, b.language, b.script, analyzer, shaper, query, b.scale)
}

// Build runs analysis and shaping and returns a freshly allocated
// Layout.
func (b *TreeBuilder) Build(analyzer shaping.TextAnalyzer, shaper shaping.Shaper, query shaping.FontQuery) *Layout {
	layout := &Layout{}
	b.BuildInto(layout, analyzer, shaper, query)
	return layout
}

// buildIntoLayout is the shared glue between RangedBuilder and
// TreeBuilder: it maps flattened styles onto a per-byte style index,
// runs bidi and cluster analysis, shapes the result, and installs
// everything into layout. An empty text is shaped as a single space so
// the pipeline always has at least one cluster to anchor an (empty)
// line to, then the substitution is unwound before returning.
func buildIntoLayout(
	layout *Layout,
	text string,
	styles []styledtext.RangedStyle,
	inlineBoxes []shaped.InlineBox,
	lang language.Language,
	script language.Script,
	analyzer shaping.TextAnalyzer,
	shaper shaping.Shaper,
	query shaping.FontQuery,
	scale float32,
) {
	layout.clear()
	wasEmpty := len(text) == 0
	if wasEmpty {
		text = " "
	}

	slog.Debug("layout: building", "textLen", len(text), "styleRanges", len(styles), "inlineBoxes", len(inlineBoxes))

	bidi, charInfo := analyzer.Analyze(text)

	styleIndex := make([]uint16, len(text))
	for i, rs := range styles {
		for pos := rs.Range.Start; pos < rs.Range.End; pos++ {
			styleIndex[pos] = uint16(i)
		}
	}

	layout.Styles = make([]Style, len(styles))
	for i, rs := range styles {
		layout.Styles[i] = styleFromResolved(rs.Style)
	}

	boxes := append([]shaped.InlineBox(nil), inlineBoxes...)
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Index < boxes[j].Index })
	layout.InlineBoxes = boxes

	input := shaping.Input{
		Text:        text,
		Styles:      styles,
		InlineBoxes: boxes,
		StyleIndex:  styleIndex,
		BidiLevels:  bidi.Levels,
		CharInfo:    charInfo,
		Language:    lang,
		Script:      script,
		Query:       query,
	}
	runs, clusters := shaper.Shape(input)
	layout.Runs = runs
	layout.Clusters = clusters
	layout.Scale = scale
	layout.TextLen = len(text)
	layout.HasBidi = bidi.HasBidi()
	layout.BaseLevel = bidi.BaseLevel

	if wasEmpty {
		layout.TextLen = 0
		layout.Clusters = layout.Clusters[:0]
		if len(layout.Runs) > 0 {
			layout.Runs[0].ClusterRange.End = 0
			layout.Runs[0].TextRange.End = 0
		}
	}
}
