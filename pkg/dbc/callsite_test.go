// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package dbc

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const callsFile = "testdata/calls.go"

func TestFindCall(t *testing.T) {
	re := require.New(t)

	sf, err := loadSource(callsFile)
	re.NoError(err)

	call := sf.findCall("Require", 6, 3)
	re.NotNil(call)
	re.Equal("a", sf.exprText(call.Args[2]))

	// Lines inside a multi-line call resolve to the enclosing call.
	for _, line := range []int{7, 9, 12} {
		call = sf.findCall("Ensure", line, 4)
		re.NotNil(call, "line:%d", line)
		re.Equal("len(xs)", sf.exprText(call.Args[3]))
	}

	re.Nil(sf.findCall("Require", 6, 2), "argument count must match")
	re.Nil(sf.findCall("Ensure", 6, 3), "function name must match")
	re.Nil(sf.findCall("Require", 13, 3), "ambiguous line")
	re.Nil(sf.findCall("Require", 17, 2), "spread call")

	call = sf.findCall("Invariant", 14, 3)
	re.NotNil(call)
	re.Equal("xs[0] + xs[1]", sf.exprText(call.Args[2]))
}

func TestArgSources(t *testing.T) {
	re := require.New(t)

	s := site{file: callsFile, line: 6, ok: true}
	re.Equal([]string{"a > 0", `"positive"`, "a"}, argSources(s, "Require", 3))
	re.Nil(argSources(s, "", 3))
	re.Nil(argSources(site{}, "Require", 3))
	re.Nil(argSources(site{file: "testdata/missing.go", line: 1, ok: true}, "Require", 3))
}

func TestLoadSourceCachesErrors(t *testing.T) {
	re := require.New(t)

	_, err := loadSource("testdata/missing.go")
	re.Error(err)
	_, err2 := loadSource("testdata/missing.go")
	re.Equal(err, err2)

	first, err := loadSource(callsFile)
	re.NoError(err)
	second, err := loadSource(callsFile)
	re.NoError(err)
	re.Same(first, second)
}

func TestSiteString(t *testing.T) {
	re := require.New(t)

	re.Equal("unknown:0", site{}.String())
	re.Equal("unknown", site{}.File())

	root := t.TempDir()
	re.NoError(os.MkdirAll(filepath.Join(root, "a", "x"), 0o755))
	re.NoError(os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/m\n"), 0o600))
	a := site{file: filepath.Join(root, "a", "x", "util.go"), line: 42, ok: true}
	b := site{file: filepath.Join(root, "b", "x", "util.go"), line: 42, ok: true}
	re.Equal("a/x/util.go:42", a.String())
	re.Equal("b/x/util.go:42", b.String())

	_, self, _, ok := runtime.Caller(0)
	re.True(ok)
	re.Equal("pkg/dbc/callsite_test.go", site{file: self, line: 1, ok: true}.File())
}

func TestSiteStringOutsideModule(t *testing.T) {
	re := require.New(t)

	// A relative path cannot be resolved against a module root.
	s := site{file: "src/pkg/dbc/callsite.go", line: 42, ok: true}
	re.Equal("dbc/callsite.go:42", s.String())
}

func TestFormatCheckArgs(t *testing.T) {
	re := require.New(t)

	names := []string{"ok", `"msg"`, "a", ""}
	re.Equal(`msg="m" a=1 arg2=2`, formatCheckArgs(names, []any{"m", 1, 2}))
	re.Equal(`msg="m" arg1=1`, formatCheckArgs(nil, []any{"m", 1}))
	re.Equal(`id=3`, formatCheckArgs(nil, []any{V("id", 3)}))
}

func TestDiagnostic(t *testing.T) {
	re := require.New(t)

	s := site{file: "src/example/main.go", line: 45, ok: true}
	re.Equal("REQUIRE:\nfile: example/main.go:45", diagnostic(KindRequire, s, ""))
	re.Equal("ENSURE:\nfile: example/main.go:45\nvars:\nmsg=\"done\"", diagnostic(KindEnsure, s, `msg="done"`))
}
