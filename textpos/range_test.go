// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 5, Range{0, 5}.Len())
	assert.Equal(t, 0, Range{5, 5}.Len())
	assert.Equal(t, 0, Range{5, 2}.Len())
	assert.True(t, Range{5, 5}.IsEmpty())
	assert.False(t, Range{0, 1}.IsEmpty())
}

func TestRangeContains(t *testing.T) {
	r := Range{3, 7}
	assert.False(t, r.Contains(2))
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(6))
	assert.False(t, r.Contains(7))
}

func TestRangeIntersect(t *testing.T) {
	assert.Equal(t, Range{3, 5}, Range{0, 5}.Intersect(Range{3, 10}))
	assert.True(t, Range{0, 2}.Intersect(Range{4, 6}).IsEmpty())
}
