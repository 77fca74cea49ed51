// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styletree

import (
	"errors"

	"github.com/dfrg/parleygo/textpos"
)

// errPoppedRoot is logged and panicked with (via errutil.Must) when a
// caller pops the root style span, which has no parent to return to.
var errPoppedRoot = errors.New("styletree: popped root style span")

func rangeOf(start, end int) textpos.Range {
	return textpos.Range{Start: start, End: end}
}
