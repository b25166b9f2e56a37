// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package dbc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"golang.org/x/tools/go/ast/inspector"
)

// site is the location of a call into this package.
type site struct {
	file string
	line int
	ok   bool
}

// callSite returns the location of the frame skip levels above its caller.
func callSite(skip int) site {
	_, file, line, ok := runtime.Caller(skip + 1)
	return site{file: file, line: line, ok: ok}
}

// File renders the file relative to the root of its Go module. Files outside
// a module, or whose module cannot be found on disk, are rendered as the last
// directory plus the file name.
func (s site) File() string {
	if !s.ok {
		return "unknown"
	}
	if root := moduleRoot(filepath.Dir(s.file)); root != "" {
		if rel, err := filepath.Rel(root, s.file); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	trimmed := zapcore.EntryCaller{Defined: true, File: s.file, Line: s.line}.TrimmedPath()
	return strings.TrimSuffix(trimmed, ":"+strconv.Itoa(s.line))
}

// String renders the site as file:line.
func (s site) String() string {
	if !s.ok {
		return "unknown:0"
	}
	return s.File() + ":" + strconv.Itoa(s.line)
}

var moduleRoots sync.Map // directory -> module root, "" if none

// moduleRoot returns the closest directory at or above dir holding a go.mod.
func moduleRoot(dir string) string {
	if !filepath.IsAbs(dir) {
		return ""
	}
	if v, ok := moduleRoots.Load(dir); ok {
		return v.(string)
	}

	root := ""
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		root = dir
	} else if parent := filepath.Dir(dir); parent != dir {
		root = moduleRoot(parent)
	}
	moduleRoots.Store(dir, root)
	return root
}

// sourceFile is a parsed Go source file used to recover argument expressions.
type sourceFile struct {
	fset  *token.FileSet
	src   []byte
	calls []*ast.CallExpr
}

var sourceCache sync.Map // file path -> *sourceFile or error

func loadSource(path string) (*sourceFile, error) {
	if v, ok := sourceCache.Load(path); ok {
		if err, isErr := v.(error); isErr {
			return nil, err
		}
		return v.(*sourceFile), nil
	}

	sf, err := parseSource(path)
	if err != nil {
		sourceCache.Store(path, err)
		return nil, err
	}
	sourceCache.Store(path, sf)
	return sf, nil
}

func parseSource(path string) (*sourceFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "read source, path:%s", path)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse source, path:%s", path)
	}

	sf := &sourceFile{fset: fset, src: src}
	in := inspector.New([]*ast.File{f})
	in.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		sf.calls = append(sf.calls, n.(*ast.CallExpr))
	})
	return sf, nil
}

// calledName returns the name of the function called by call, ignoring any
// package qualifier.
func calledName(call *ast.CallExpr) string {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		return fn.Sel.Name
	default:
		return ""
	}
}

// findCall locates the call to funcName with nargs arguments made at line.
// Calls whose opening parenthesis is on the line are preferred; otherwise the
// innermost call spanning the line is used. Spread calls never match because
// their arguments cannot be attributed to individual values.
func (sf *sourceFile) findCall(funcName string, line, nargs int) *ast.CallExpr {
	var (
		exact   []*ast.CallExpr
		spanned *ast.CallExpr
	)
	for _, call := range sf.calls {
		if calledName(call) != funcName || call.Ellipsis.IsValid() || len(call.Args) != nargs {
			continue
		}
		start := sf.fset.Position(call.Lparen).Line
		end := sf.fset.Position(call.Rparen).Line
		switch {
		case start == line:
			exact = append(exact, call)
		case start < line && line <= end:
			// Preorder visits outer calls first.
			spanned = call
		}
	}

	switch len(exact) {
	case 0:
		return spanned
	case 1:
		return exact[0]
	default:
		// Several candidates on one line cannot be told apart.
		return nil
	}
}

// exprText returns the source text of expr with whitespace collapsed.
func (sf *sourceFile) exprText(expr ast.Expr) string {
	start := sf.fset.Position(expr.Pos()).Offset
	end := sf.fset.Position(expr.End()).Offset
	if start < 0 || end > len(sf.src) || start >= end {
		return ""
	}
	return strings.Join(strings.Fields(string(sf.src[start:end])), " ")
}

// argSources returns the source text of the arguments of the call to
// funcName made at s, or nil if the call cannot be found.
func argSources(s site, funcName string, nargs int) []string {
	if !s.ok || funcName == "" {
		return nil
	}
	sf, err := loadSource(s.file)
	if err != nil {
		return nil
	}
	call := sf.findCall(funcName, s.line, nargs)
	if call == nil {
		return nil
	}

	texts := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		texts = append(texts, sf.exprText(arg))
	}
	return texts
}
