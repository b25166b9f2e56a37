// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

// Package dbc provides design-by-contract checks.
//
// A check is given a condition, an optional message and any number of
// values. When the condition is false the check panics with a diagnostic
// naming the contract kind, the call site and every value as name=value:
//
//	REQUIRE:
//	file: example/main.go:45
//	vars:
//	msg="This is a test" a=3
//
// Value names are read from the caller's source. Use V to name a value
// explicitly when the source is not available at runtime.
//
// Checks are compiled out when building with the release tag.
package dbc

// Kind identifies the contract that was violated.
type Kind string

const (
	KindRequire   Kind = "REQUIRE"
	KindEnsure    Kind = "ENSURE"
	KindInvariant Kind = "INVARIANT"
)

// funcNames maps a kind to the exported function performing the check. It is
// used to find the call expression in the caller's source.
var funcNames = map[Kind]string{
	KindRequire:   "Require",
	KindEnsure:    "Ensure",
	KindInvariant: "Invariant",
}

// Enabled reports whether Require, Ensure and Invariant are compiled in.
func Enabled() bool {
	return enabled
}

// Require checks a precondition. args[0] is the message, the rest are values
// to report.
func Require(cond bool, args ...any) {
	if enabled && !cond {
		violate(KindRequire, 1, args)
	}
}

// Ensure checks a postcondition. args[0] is the message, the rest are values
// to report.
func Ensure(cond bool, args ...any) {
	if enabled && !cond {
		violate(KindEnsure, 1, args)
	}
}

// Invariant checks a condition that must hold for the whole lifetime of a
// value. args[0] is the message, the rest are values to report.
func Invariant(cond bool, args ...any) {
	if enabled && !cond {
		violate(KindInvariant, 1, args)
	}
}

// Report panics with a diagnostic of the given kind. It is meant for
// assertion helpers built on top of this package, and is never compiled out.
// skip is the number of frames between the caller of Report and the call
// site that should appear in the diagnostic. Values in args other than the
// message are named argN unless passed as Var.
func Report(kind Kind, skip int, args ...any) {
	violate(kind, skip+1, args)
}
