package hal

import (
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Each target compiles a different file set; a name declared in a shared file and
// again in a target file only fails on that target.
func TestNoDuplicateDeclarationsPerTarget(t *testing.T) {
	targets := map[string][]string{
		"device":         {"tinygo", "baremetal"},
		"host window":    {"cgo"},
		"host no window": {},
	}

	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}

	for name, tags := range targets {
		set := map[string]bool{}
		for _, tag := range tags {
			set[tag] = true
		}

		seen := map[string]string{}
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			ok, err := fileMatches(file, set)
			if err != nil {
				t.Fatalf("%s: %v", file, err)
			}
			if !ok {
				continue
			}
			for _, decl := range topLevelNames(t, file) {
				if prev, dup := seen[decl]; dup {
					t.Fatalf("%s: %s declared in %s and %s", name, decl, prev, file)
				}
				seen[decl] = file
			}
		}
		if len(seen) == 0 {
			t.Fatalf("%s: no declarations found", name)
		}
	}
}

func TestDeviceTargetIncludesBoardFiles(t *testing.T) {
	device := map[string]bool{"tinygo": true, "baremetal": true}
	for _, file := range []string{"tinygo.go", "tinygo_common.go", "tinygo_ssd1283a.go", "gpio.go", "tcs34725.go"} {
		ok, err := fileMatches(file, device)
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		if !ok {
			t.Fatalf("%s is not part of the device build", file)
		}
	}
	for _, file := range []string{"host.go", "host_pins.go", "host_window.go"} {
		ok, err := fileMatches(file, device)
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		if ok {
			t.Fatalf("%s leaks into the device build", file)
		}
	}
}

func fileMatches(file string, tags map[string]bool) (bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			break
		}
		if !constraint.IsGoBuild(line) {
			continue
		}
		expr, err := constraint.Parse(line)
		if err != nil {
			return false, err
		}
		return expr.Eval(func(tag string) bool { return tags[tag] }), nil
	}
	return true, nil
}

// topLevelNames lists package-level identifiers; methods are keyed by receiver.
func topLevelNames(t *testing.T, file string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse %s: %v", file, err)
	}

	var names []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) == 0 {
				names = append(names, d.Name.Name)
				continue
			}
			names = append(names, receiverName(d.Recv.List[0].Type)+"."+d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						if n.Name != "_" {
							names = append(names, n.Name)
						}
					}
				}
			}
		}
	}
	return names
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr:
		return receiverName(e.X)
	}
	return "?"
}
