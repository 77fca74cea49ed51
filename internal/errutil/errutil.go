// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errutil provides a small set of error handling helpers used
// throughout this module, extending the standard library errors package.
package errutil

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the given error if it is non-nil and returns it unchanged.
// The intended usage is:
//
//	errutil.Log(myFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 returns v if err is nil, and logs err and returns the zero value
// of T if err is non-nil.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
		var zero T
		return zero
	}
	return v
}

// Must panics if err is non-nil. It is used for conditions that indicate
// programmer misuse of an API rather than recoverable runtime errors.
func Must(err error) {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
		panic(err)
	}
}

// Must1 returns v if err is nil, and panics if err is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
		panic(err)
	}
	return v
}

// Ignore1 discards the error return of a (T, error) pair, allowing direct
// use of the value when the caller has already established it cannot fail.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns information about the caller of the function that
// called CallerInfo, for inclusion in log messages.
func CallerInfo() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
