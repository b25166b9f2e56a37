// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package assert

import (
	"fmt"

	"github.com/CeresDB/dbc/pkg/dbc"
)

// KindAssert marks violations raised by this package.
const KindAssert dbc.Kind = "ASSERT"

// Assertf panics and prints the appended message if the cond is false.
// Unlike the dbc checks it is kept in release builds.
func Assertf(cond bool, format string, a ...any) {
	if !cond {
		assertf(2, format, a...)
	}
}

// Assert panics with a generic message if the cond is false.
func Assert(cond bool) {
	if !cond {
		assertf(2, "unexpected case")
	}
}

// assertf reports at the frame skip levels above its caller.
func assertf(skip int, format string, a ...any) {
	dbc.Report(KindAssert, skip, fmt.Sprintf(format, a...))
}
