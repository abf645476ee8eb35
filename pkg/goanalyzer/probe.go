package goanalyzer

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"slices"
)

const probeSource = "package p\nimport \"unsafe\"\nfunc f() { x := 1 }\n"

// probeUnusedCodes type-checks a tiny package with an unused variable and an
// unused import and returns the codes go/types reported for them.
func probeUnusedCodes() []int {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "probe.go", probeSource, 0)
	if err != nil {
		return nil
	}

	var codes []int
	conf := types.Config{
		Importer: importerFunc(func(path string) (*types.Package, error) {
			return types.Unsafe, nil
		}),
		Error: func(err error) {
			if te, ok := err.(types.Error); ok {
				if code, _, _ := errorDetails(te); code != 0 && !slices.Contains(codes, code) {
					codes = append(codes, code)
				}
			}
		},
	}
	_, _ = conf.Check("p", fset, []*ast.File{f}, nil)

	slices.Sort(codes)
	return codes
}

type importerFunc func(path string) (*types.Package, error)

func (fn importerFunc) Import(path string) (*types.Package, error) {
	return fn(path)
}

// errorDetails reads the error code and span go/types keeps in unexported
// fields. Missing fields leave the zero value.
func errorDetails(e types.Error) (code int, start, end token.Pos) {
	v := reflect.ValueOf(e)
	if f := v.FieldByName("go116code"); f.IsValid() && f.CanInt() {
		code = int(f.Int())
	}
	if f := v.FieldByName("go116start"); f.IsValid() && f.CanInt() {
		start = token.Pos(f.Int())
	}
	if f := v.FieldByName("go116end"); f.IsValid() && f.CanInt() {
		end = token.Pos(f.Int())
	}
	return code, start, end
}
