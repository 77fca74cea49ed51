// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import "github.com/dfrg/parleygo/textpos"

// Run is a maximal shaped cluster sequence sharing style, font, and bidi
// level.
type Run struct {
	StyleIndex   int
	ClusterRange textpos.Range
	TextRange    textpos.Range
	BidiLevel    uint8
	Ascent       float32
	Descent      float32
	Leading      float32
}

// InlineBox is an opaque, caller-sized box embedded in the text flow at a
// given byte offset. Multiple boxes may share an Index; their relative
// order among equal indices is preserved by a stable sort on Index.
type InlineBox struct {
	ID     int
	Index  int
	Width  float32
	Height float32
}
