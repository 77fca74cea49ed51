// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout implements the line breaker and finalizer: it walks
// shaped runs and clusters, decides where to break, commits lines with
// explicit/regular/emergency semantics, then reorders, measures, and
// aligns each committed line.
package layout

// Alignment selects how a line's free space (max advance minus content
// advance) is distributed.
type Alignment int32

const (
	Start Alignment = iota
	End
	Middle
	Justified
)

// BreakReason records why a line ended.
type BreakReason int32

const (
	// BreakNone marks the final line of a paragraph, ended by running out
	// of text rather than by any break decision.
	BreakNone BreakReason = iota
	// BreakExplicit marks a line ended by a mandatory break (e.g. '\n').
	BreakExplicit
	// BreakRegular marks a line ended by a soft wrap at a line-break
	// opportunity, or by hanging a single overflowing space.
	BreakRegular
	// BreakEmergency marks a line ended by force, because no break
	// opportunity was available before content overflowed max advance.
	BreakEmergency
)
