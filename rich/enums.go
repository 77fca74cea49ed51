// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// FontSlant selects the upright, italic, or oblique form of a font.
type FontSlant int32

const (
	Normal FontSlant = iota
	Italic
	Oblique
)

// String implements fmt.Stringer.
func (s FontSlant) String() string {
	switch s {
	case Italic:
		return "italic"
	case Oblique:
		return "oblique"
	default:
		return "normal"
	}
}

// FontFeature is a single OpenType feature tag and its value, e.g. "liga"
// enabled or "ss01" set to a specific alternate.
type FontFeature struct {
	Tag   [4]byte
	Value uint32
}
