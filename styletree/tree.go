// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styletree implements the hierarchical tree-based style builder:
// callers open and close nested spans carrying full or partial style
// overrides, attach text to whichever span is open, and the builder
// flattens the result into the same [styledtext.RangedStyle] sequence
// produced by the ranged builder.
package styletree

import (
	"github.com/dfrg/parleygo/internal/errutil"
	"github.com/dfrg/parleygo/rich"
	"github.com/dfrg/parleygo/styledtext"
)

// noParent marks the root span, which has no parent to pop to.
const noParent = -1

type span struct {
	parent int
	style  rich.ResolvedStyle
}

// Builder accepts a tree of style spans and flattens it into a ranged
// style sequence. Its cursor is implemented as parent indices into a flat
// slice rather than owning child pointers, which avoids cyclic
// references and makes the whole builder trivially copyable. It is
// reusable across paragraphs; call [Builder.Begin] before each new one.
type Builder struct {
	spans            []span
	flattened        []styledtext.RangedStyle
	currentSpan      int
	totalTextLen     int
	textLastPushedAt int
	began            bool
}

// NewBuilder returns an empty tree builder. Call [Builder.Begin] before
// use.
func NewBuilder() *Builder {
	return &Builder{currentSpan: noParent}
}

// Begin prepares the builder for a new paragraph rooted at rootStyle,
// clearing any tree and flattened output left over from a previous
// paragraph.
func (b *Builder) Begin(rootStyle rich.ResolvedStyle) {
	b.spans = b.spans[:0]
	b.flattened = b.flattened[:0]
	b.spans = append(b.spans, span{parent: noParent, style: rootStyle})
	b.currentSpan = 0
	b.totalTextLen = 0
	b.textLastPushedAt = 0
	b.began = true
}

func (b *Builder) currentStyle() rich.ResolvedStyle {
	return b.spans[b.currentSpan].style
}

// flushPendingText emits the ranged style for any text attached since the
// last flush, under the style of the span that is current right now. This
// is the single rule that makes the flattener correct for arbitrary
// nesting: it runs whenever a span opens, is modified-opened, is popped,
// or the tree is finished.
func (b *Builder) flushPendingText() {
	if b.totalTextLen > b.textLastPushedAt {
		b.flattened = append(b.flattened, styledtext.RangedStyle{
			Range: rangeOf(b.textLastPushedAt, b.totalTextLen),
			Style: b.currentStyle(),
		})
		b.textLastPushedAt = b.totalTextLen
	}
}

// PushStyleSpan opens a child span carrying a fully replaced style.
func (b *Builder) PushStyleSpan(style rich.ResolvedStyle) {
	b.flushPendingText()
	b.spans = append(b.spans, span{parent: b.currentSpan, style: style})
	b.currentSpan = len(b.spans) - 1
}

// PushStyleModificationSpan opens a child span whose style is the
// current span's style with each of props applied in turn.
func (b *Builder) PushStyleModificationSpan(props []rich.ResolvedProperty) {
	newStyle := b.currentStyle()
	for _, p := range props {
		newStyle.Apply(p)
	}
	b.flushPendingText()
	b.spans = append(b.spans, span{parent: b.currentSpan, style: newStyle})
	b.currentSpan = len(b.spans) - 1
}

// PopStyleSpan closes the current span, moving the cursor back to its
// parent. Popping the root span is a programmer error and panics (via
// [errutil.Must]), per this package's infallible-by-construction contract.
func (b *Builder) PopStyleSpan() {
	b.flushPendingText()
	parent := b.spans[b.currentSpan].parent
	if parent == noParent {
		errutil.Must(errPoppedRoot)
	}
	b.currentSpan = parent
}

// PushText attaches len bytes of text to the currently open span,
// extending the running total text length. A zero length is a no-op.
func (b *Builder) PushText(length int) {
	if length <= 0 {
		return
	}
	b.totalTextLen += length
}

// Finish closes all remaining open spans and returns the flattened
// ranged style sequence, satisfying the same contiguous/disjoint/covering
// invariant as [styledtext.Builder.Finish].
func (b *Builder) Finish() []styledtext.RangedStyle {
	if !b.began {
		return nil
	}
	for b.spans[b.currentSpan].parent != noParent {
		b.PopStyleSpan()
	}
	b.flushPendingText()
	out := make([]styledtext.RangedStyle, len(b.flattened))
	copy(out, b.flattened)
	return out
}
