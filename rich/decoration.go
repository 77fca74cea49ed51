// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// ResolvedDecoration describes an underline or strikethrough after
// resolution. When Enabled is true and HasBrush is false, the decoration
// inherits the owning style's brush at flattening time (see
// [ResolvedStyle.DecorationBrush]).
type ResolvedDecoration struct {
	Enabled  bool
	HasBrush bool
	Brush    Brush
	Offset   float32
	Size     float32
}
