// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped holds the data types produced by text analysis and
// shaping and consumed by the line breaker: clusters, runs, and inline
// boxes. It has no behavior of its own beyond small accessors; the
// breaking and finalization algorithms live in package layout.
package shaped

import "github.com/dfrg/parleygo/textpos"

// BoundaryClass is a hint from text analysis indicating where line breaks
// are permitted or required.
type BoundaryClass int32

const (
	BoundaryNone BoundaryClass = iota
	BoundaryLine
	BoundaryMandatory
)

// Whitespace classifies a cluster (or, pre-shaping, a character) as a
// breakable space, a non-breaking space, some other whitespace, or
// non-whitespace content.
type Whitespace int32

const (
	WhitespaceNotSpace Whitespace = iota
	WhitespaceSpace
	WhitespaceNbsp
	WhitespaceOther
)

// IsSpaceOrNbsp reports whether w is an ordinary space or a non-breaking
// space -- the two kinds that participate in hanging-whitespace and
// justification logic.
func (w Whitespace) IsSpaceOrNbsp() bool {
	return w == WhitespaceSpace || w == WhitespaceNbsp
}

// IsWhitespace reports whether w is any whitespace kind at all.
func (w Whitespace) IsWhitespace() bool {
	return w != WhitespaceNotSpace
}

// ClusterInfo carries the boundary and whitespace classification and the
// ligature flags for a single cluster.
type ClusterInfo struct {
	Boundary               BoundaryClass
	Whitespace             Whitespace
	IsLigatureStart        bool
	IsLigatureContinuation bool
}

// Cluster is a shaped grapheme-like unit, possibly spanning multiple code
// points when it is part of a ligature.
type Cluster struct {
	Advance   float32
	Info      ClusterInfo
	TextRange textpos.Range
}
