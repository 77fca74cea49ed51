// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos holds the half-open range type shared by every byte,
// cluster, and run range in the layout engine.
package textpos

import "fmt"

// Range is a half-open [Start, End) range over byte indices into text,
// or indices into a cluster or run array, depending on context.
type Range struct {
	Start int
	End   int
}

// NewRange returns a Range covering [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of elements covered by the range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range contains no elements.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Contains returns true if i falls within [Start, End).
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Intersect returns the overlap of r and o. The result may be empty
// (Start >= End) if the two ranges do not overlap.
func (r Range) Intersect(o Range) Range {
	start := r.Start
	if o.Start > start {
		start = o.Start
	}
	end := r.End
	if o.End < end {
		end = o.End
	}
	return Range{Start: start, End: end}
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
