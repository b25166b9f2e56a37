// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package coderr

import "net/http"

type Code int

const (
	Invalid       Code = -1
	InvalidParams Code = http.StatusBadRequest
	Internal      Code = http.StatusInternalServerError
	NotFound      Code = http.StatusNotFound

	// HTTPCodeUpperBound is a bound under which any Code should have the same meaning with the http status code.
	HTTPCodeUpperBound = Code(1000)
	PrintHelpUsage     = Code(1001)
)

// ToExitCode converts the Code to the exit status of a command line program.
// Bad input exits with 2 as flag parsing does, help requests exit cleanly and
// everything else exits with 1.
func (c Code) ToExitCode() int {
	switch c {
	case PrintHelpUsage:
		return 0
	case InvalidParams, NotFound:
		return 2
	default:
		return 1
	}
}
