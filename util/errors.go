// Copyright (c) 2021-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"context"
	"fmt"

	errs "github.com/pkg/errors"
)

// stackTracer represents the stack trace functionality for an error from
// pkg/errors.
type stackTracer interface {
	StackTrace() errs.StackTrace
}

// StackTrace returns the stack trace for a pkg/errors error. The returned bool
// indicates whether the provided error carries a pkg/errors stack. Stack
// traces are not available for stdlib errors.
func StackTrace(err error) (string, bool) {
	var e stackTracer
	if !errs.As(err, &e) {
		return "", false
	}
	return fmt.Sprintf("%+v\n", e.StackTrace()), true
}

// IsContextErr returns whether the error was caused by a canceled or expired
// context.
func IsContextErr(err error) bool {
	return errs.Is(err, context.Canceled) ||
		errs.Is(err, context.DeadlineExceeded)
}
