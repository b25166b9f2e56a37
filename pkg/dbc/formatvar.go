// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package dbc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Var is a value with an explicit name.
type Var struct {
	Name  string
	Value any
}

// V names a value explicitly, overriding the name read from the source.
func V(name string, value any) Var {
	return Var{Name: name, Value: value}
}

const msgName = "msg"

var spewConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// formatValue renders string kinds, byte slices and errors quoted, everything
// else with spew. Panics raised by Error or String methods, including those of
// typed nil receivers, are rendered instead of propagated.
func formatValue(v any) string {
	if err, ok := v.(error); ok {
		return fmt.Sprintf("%q", err)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return strconv.Quote(rv.String())
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return strconv.Quote(string(rv.Bytes()))
	default:
		return spewConfig.Sprintf("%+v", v)
	}
}

// Formatvar renders every value as name=value separated by spaces. Names are
// the argument expressions as written at the call site:
//
//	a, msg := 34, "My message"
//	dbc.Formatvar(msg, a) // msg="My message" a=34
//
// Values whose expression cannot be recovered are named argN.
func Formatvar(args ...any) string {
	names := argSources(callSite(1), "Formatvar", len(args))

	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		name := fmt.Sprintf("arg%d", i+1)
		if names != nil && names[i] != "" {
			name = names[i]
		}
		writeVar(&b, name, arg)
	}
	return b.String()
}

// formatCheckArgs renders the arguments of a failed check. args[0] is the
// message, named msg. names holds the source text of all check arguments,
// the condition included.
func formatCheckArgs(names []string, args []any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		var name string
		switch {
		case i == 0:
			name = msgName
		case names != nil && names[i+1] != "":
			name = names[i+1]
		default:
			name = fmt.Sprintf("arg%d", i)
		}
		writeVar(&b, name, arg)
	}
	return b.String()
}

func writeVar(b *strings.Builder, name string, v any) {
	if nv, ok := v.(Var); ok {
		name, v = nv.Name, nv.Value
	}
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(formatValue(v))
}
