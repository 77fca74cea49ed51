// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaping defines the contracts for the two external
// collaborators this layout engine depends on but does not implement:
// the Unicode text analyzer (bidi + break analysis) and the glyph
// shaper. Concrete implementations live outside this module.
package shaping

import "github.com/dfrg/parleygo/shaped"

// BidiInfo is the bidi analysis of a full paragraph: a base embedding
// level and one resolved level per character.
type BidiInfo struct {
	BaseLevel uint8
	Levels    []uint8
}

// HasBidi reports whether any character in the paragraph has a non-zero
// bidi level, i.e. whether the paragraph contains any right-to-left runs.
func (b BidiInfo) HasBidi() bool {
	for _, l := range b.Levels {
		if l != 0 {
			return true
		}
	}
	return false
}

// CharInfo is the per-character output of text analysis: where a line
// break is permitted or required, and whether the character is
// whitespace.
type CharInfo struct {
	Boundary   shaped.BoundaryClass
	Whitespace shaped.Whitespace
}

// TextAnalyzer produces bidi levels and break/whitespace classification
// for a full paragraph of text. A real implementation runs the Unicode
// Bidirectional Algorithm (UAX #9) and line-breaking analysis (UAX #14);
// this module only depends on the contract.
type TextAnalyzer interface {
	Analyze(text string) (BidiInfo, []CharInfo)
}
