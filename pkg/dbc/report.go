// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package dbc

import (
	"strings"

	"github.com/CeresDB/dbc/pkg/log"
	"go.uber.org/zap"
)

// violate logs and panics with the diagnostic of a failed check. skip is the
// number of frames between the caller of violate and the call site.
func violate(kind Kind, skip int, args []any) {
	s := callSite(skip + 1)

	var vars string
	if len(args) > 0 {
		// The check's own arguments are the condition followed by args.
		names := argSources(s, funcNames[kind], len(args)+1)
		vars = formatCheckArgs(names, args)
	}

	// The log entry's caller is the call site, not this function.
	log.GetLogger().WithOptions(zap.AddCallerSkip(skip+1)).Error("contract violated",
		zap.String("kind", string(kind)),
		zap.String("file", s.File()),
		zap.Int("line", s.line),
		zap.String("vars", vars))

	panic(diagnostic(kind, s, vars))
}

// diagnostic renders the panic message of a failed check.
func diagnostic(kind Kind, s site, vars string) string {
	var b strings.Builder
	b.WriteString(string(kind))
	b.WriteString(":\nfile: ")
	b.WriteString(s.String())
	if len(vars) > 0 {
		b.WriteString("\nvars:\n")
		b.WriteString(vars)
	}
	return b.String()
}
