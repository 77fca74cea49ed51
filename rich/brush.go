// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich implements the style resolution pipeline: resolving user
// style properties into [ResolvedStyle] values with numeric fields, and
// interning font stacks into opaque IDs.
package rich

// Brush is an opaque, user-supplied paint value. The layout engine only
// ever stores and copies a Brush; it never inspects or compares one.
type Brush any
