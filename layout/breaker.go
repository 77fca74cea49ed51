// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/dfrg/parleygo/shaped"
	"github.com/dfrg/parleygo/textpos"
)

type lineState struct {
	x                  float32
	runs               textpos.Range
	clusters           textpos.Range
	skipMandatoryBreak bool
	numSpaces          int
}

type prevBoundaryState struct {
	runIdx     int
	clusterIdx int
	state      lineState
}

// breakerState is the full, copyable iteration state of a [BreakLines],
// captured before every [BreakLines.BreakNext] call so a single
// [BreakLines.Revert] can undo it.
type breakerState struct {
	items      int
	lines      int
	runIdx     int
	clusterIdx int
	line       lineState
	prevBoundary *prevBoundaryState
}

func (s breakerState) clone() breakerState {
	clone := s
	if s.prevBoundary != nil {
		pb := *s.prevBoundary
		clone.prevBoundary = &pb
	}
	return clone
}

type lineBuffers struct {
	lines     []Line
	lineItems []LineItem
}

// BreakLines performs greedy line breaking over a built [Layout]. It
// takes exclusive ownership of the layout's line and line-item buffers
// for its entire lifetime -- the layout must not be read until
// [BreakLines.Finish] or [BreakLines.BreakRemaining] writes the results
// back. This mirrors the Rust original's borrow-checked exclusive
// `&mut LayoutData` plus its move-in/move-out of the line buffers on
// construction and drop; Go has no destructor, so the write-back happens
// explicitly in Finish.
type BreakLines struct {
	layout    *Layout
	lines     lineBuffers
	state     breakerState
	prevState *breakerState
	done      bool
}

// NewBreakLines begins a breaking pass over layout, first undoing any
// justification left over from a previous pass.
func NewBreakLines(layout *Layout) *BreakLines {
	unjustify(layout)
	layout.Width = 0
	layout.Height = 0

	bl := &BreakLines{layout: layout}
	bl.lines.lines = layout.Lines[:0]
	bl.lines.lineItems = layout.LineItems[:0]
	layout.Lines = nil
	layout.LineItems = nil
	bl.state.line = lineState{
		runs:     textpos.Range{Start: 0, End: 0},
		clusters: textpos.Range{Start: 0, End: 0},
	}
	return bl
}

// startNewLine snapshots the current committed-buffer lengths and resets
// the in-progress line state to begin accumulating at the current
// run/cluster position. It deliberately drops numSpaces and
// skipMandatoryBreak from the line just committed -- both are
// per-line, not carried across a break.
func (bl *BreakLines) startNewLine() (float32, float32, bool) {
	bl.state.items = len(bl.lines.lineItems)
	bl.state.lines = len(bl.lines.lines)
	bl.state.line = lineState{
		runs:     textpos.Range{Start: bl.state.runIdx, End: bl.state.runIdx},
		clusters: textpos.Range{Start: bl.state.clusterIdx, End: bl.state.clusterIdx},
	}
	return bl.lastLineData()
}

func (bl *BreakLines) lastLineData() (float32, float32, bool) {
	if len(bl.lines.lines) == 0 {
		return 0, 0, false
	}
	line := bl.lines.lines[len(bl.lines.lines)-1]
	return line.Metrics.Advance, line.Metrics.Size(), true
}

// BreakNext computes the next line in the paragraph, breaking content
// that would otherwise exceed maxAdvance. Pass math.Inf(1) for
// maxAdvance to lay out the whole paragraph as a single unconstrained
// line. BreakNext returns the advance and size (width and height, for
// horizontal layouts) of the line, and false once the paragraph is
// exhausted. The advance is the line's extent as committed, including
// any hung space; vertical metrics are computed only by
// [BreakLines.Finish], so the size returned here is 0.
func (bl *BreakLines) BreakNext(maxAdvance float32, alignment Alignment) (advance float32, size float32, ok bool) {
	if bl.done {
		return 0, 0, false
	}
	prev := bl.state.clone()
	bl.prevState = &prev

	tryCommit := func(reason BreakReason) bool {
		return commitLine(bl.layout, &bl.lines, bl.state.items, &bl.state.line, maxAdvance, alignment, reason)
	}

	runCount := len(bl.layout.Runs)
	for bl.state.runIdx < runCount {
		run := bl.layout.Runs[bl.state.runIdx]
		clusterEnd := run.ClusterRange.End

		for bl.state.clusterIdx < clusterEnd {
			cluster := bl.layout.Clusters[bl.state.clusterIdx]
			isLigatureContinuation := cluster.Info.IsLigatureContinuation
			isSpace := cluster.Info.Whitespace.IsSpaceOrNbsp()

			switch cluster.Info.Boundary {
			case shaped.BoundaryMandatory:
				if !bl.state.line.skipMandatoryBreak {
					bl.state.prevBoundary = nil
					bl.state.line.runs.End = bl.state.runIdx + 1
					bl.state.line.clusters.End = bl.state.clusterIdx

					bl.state.line.skipMandatoryBreak = true
					bl.state.clusterIdx++

					if tryCommit(BreakExplicit) {
						a, s, _ := bl.startNewLine()
						return a, s, true
					}
				}
			case shaped.BoundaryLine:
				if !isLigatureContinuation {
					lineCopy := bl.state.line
					bl.state.prevBoundary = &prevBoundaryState{
						runIdx:     bl.state.runIdx,
						clusterIdx: bl.state.clusterIdx,
						state:      lineCopy,
					}
				}
			}

			bl.state.line.skipMandatoryBreak = false

			clusterAdvance := cluster.Advance
			if cluster.Info.IsLigatureStart {
				for bl.state.clusterIdx+1 < clusterEnd {
					next := bl.layout.Clusters[bl.state.clusterIdx+1]
					if !next.Info.IsLigatureContinuation {
						break
					}
					clusterAdvance += next.Advance
					bl.state.clusterIdx++
				}
			}

			nextX := bl.state.line.x + clusterAdvance

			if nextX <= maxAdvance {
				bl.state.line.runs.End = bl.state.runIdx + 1
				bl.state.line.clusters.End = bl.state.clusterIdx + 1
				bl.state.line.x = nextX
				bl.state.clusterIdx++
				if isSpace {
					bl.state.line.numSpaces++
				}
			} else {
				if isSpace {
					// Hang the overflowing whitespace.
					bl.state.line.runs.End = bl.state.runIdx + 1
					bl.state.line.clusters.End = bl.state.clusterIdx + 1
					bl.state.line.x = nextX
					if tryCommit(BreakRegular) {
						bl.state.prevBoundary = nil
						bl.state.clusterIdx++
						a, s, _ := bl.startNewLine()
						return a, s, true
					}
				} else if bl.state.prevBoundary != nil {
					prev := bl.state.prevBoundary
					bl.state.prevBoundary = nil
					if prev.state.x == 0 {
						// Rewrapping to this boundary would loop forever;
						// accept the overflowing fragment instead.
						bl.state.line.runs.End = bl.state.runIdx + 1
						bl.state.line.clusters.End = bl.state.clusterIdx + 1
						bl.state.line.x = nextX
						bl.state.clusterIdx++

						if tryCommit(BreakEmergency) {
							bl.state.prevBoundary = nil
							a, s, _ := bl.startNewLine()
							return a, s, true
						}
					} else {
						bl.state.line = prev.state
						if tryCommit(BreakRegular) {
							bl.state.runIdx = prev.runIdx
							bl.state.clusterIdx = prev.clusterIdx
							a, s, _ := bl.startNewLine()
							return a, s, true
						}
					}
				} else {
					// The line has no boundary to fall back to. If it's
					// still empty, this cluster doesn't fit anywhere by
					// itself either: force it onto its own line rather
					// than loop forever. Otherwise, commit what fit so
					// far and retry this same cluster against a fresh
					// line.
					forcedSolo := false
					if bl.state.line.x == 0 {
						bl.state.line.runs.End = bl.state.runIdx + 1
						bl.state.line.clusters.End = bl.state.clusterIdx + 1
						bl.state.line.x = nextX
						forcedSolo = true
					}
					if tryCommit(BreakEmergency) {
						bl.state.prevBoundary = nil
						if forcedSolo {
							bl.state.clusterIdx++
						}
						a, s, _ := bl.startNewLine()
						return a, s, true
					}
				}
			}
		}
		bl.state.runIdx++
	}

	if bl.state.line.clusters.IsEmpty() && len(bl.lines.lines) > 0 {
		// Everything was already committed by an earlier call (the last
		// commit consumed exactly up to the end of the paragraph); there
		// is no trailing empty line to emit.
		bl.done = true
		return 0, 0, false
	}

	if bl.state.line.runs.End == 0 {
		bl.state.line.runs.End = 1
	}
	if tryCommit(BreakNone) {
		bl.done = true
		a, s, _ := bl.startNewLine()
		return a, s, true
	}

	return 0, 0, false
}

// Revert undoes the last [BreakLines.BreakNext] call, restoring the
// breaker to the state it had immediately before that call. It returns
// false if there is nothing to revert (no call yet, or a prior Revert
// already consumed the snapshot).
func (bl *BreakLines) Revert() bool {
	if bl.prevState == nil {
		return false
	}
	bl.state = *bl.prevState
	bl.prevState = nil
	bl.lines.lines = bl.lines.lines[:bl.state.lines]
	bl.lines.lineItems = bl.lines.lineItems[:bl.state.items]
	bl.done = false
	return true
}

// BreakRemaining breaks all remaining lines with the given max advance
// and alignment, then finalizes the layout. It consumes the breaker.
func (bl *BreakLines) BreakRemaining(maxAdvance float32, alignment Alignment) {
	for {
		if _, _, ok := bl.BreakNext(maxAdvance, alignment); !ok {
			break
		}
	}
	bl.Finish()
}

// Finish finalizes all line computations -- reordering, metrics,
// alignment -- and writes the committed lines and line items back into
// the layout this breaker was constructed from. It consumes the breaker;
// calling any other method on it afterward is a programmer error.
func (bl *BreakLines) Finish() {
	finishLines(bl.layout, bl.lines.lines, bl.lines.lineItems)
	writeBack(bl.layout, bl.lines.lines, bl.lines.lineItems)
}
