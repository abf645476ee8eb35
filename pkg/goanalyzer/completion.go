package goanalyzer

import (
	"context"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"sort"

	"github.com/spf13/afero"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/types/typeutil"
)

// Completions lists the names that could stand at offset. After a selector
// those are the fields and methods of the operand (or the exported names of
// an imported package); anywhere else they are the names in scope.
func (s *Session) Completions(ctx context.Context, filename string, offset int) ([]analyzer.CompletionEntry, error) {
	f, p, err := s.lookup(ctx, filename)
	if err != nil || f == nil || p.types == nil {
		return nil, err
	}

	pos := f.pos(offset)
	path, _ := astutil.PathEnclosingInterval(f.syntax, pos, pos)
	if len(path) == 0 {
		return nil, nil
	}

	qual := qualifier(p.types)

	if sel := enclosingSelector(path); sel != nil {
		if id, ok := sel.X.(*ast.Ident); ok {
			if pn, ok := p.info.Uses[id].(*types.PkgName); ok {
				return packageMembers(pn.Imported(), qual), nil
			}
		}
		if tv, ok := p.info.Types[sel.X]; ok && tv.Type != nil {
			return typeMembers(tv.Type, qual), nil
		}
		return nil, nil
	}

	scope := p.types.Scope().Innermost(pos)
	if scope == nil {
		return nil, nil
	}
	return scopeNames(scope, pos, qual), nil
}

func enclosingSelector(path []ast.Node) *ast.SelectorExpr {
	switch n := path[0].(type) {
	case *ast.SelectorExpr:
		return n
	case *ast.Ident:
		if len(path) > 1 {
			if sel, ok := path[1].(*ast.SelectorExpr); ok && sel.Sel == n {
				return sel
			}
		}
	}
	return nil
}

func packageMembers(pkg *types.Package, qual types.Qualifier) []analyzer.CompletionEntry {
	var out []analyzer.CompletionEntry
	for _, name := range pkg.Scope().Names() {
		obj := pkg.Scope().Lookup(name)
		if obj.Exported() {
			out = append(out, entry(obj, qual))
		}
	}
	return out
}

func typeMembers(t types.Type, qual types.Qualifier) []analyzer.CompletionEntry {
	seen := map[string]bool{}
	var out []analyzer.CompletionEntry

	base := t
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		base = ptr.Elem()
	}
	if st, ok := base.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			fld := st.Field(i)
			if !seen[fld.Name()] {
				seen[fld.Name()] = true
				out = append(out, entry(fld, qual))
			}
		}
	}

	for _, sel := range typeutil.IntuitiveMethodSet(t, nil) {
		obj := sel.Obj()
		if !seen[obj.Name()] {
			seen[obj.Name()] = true
			out = append(out, entry(obj, qual))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// scopeNames walks outward from scope; inner declarations shadow outer ones.
// Local names only count once declared.
func scopeNames(scope *types.Scope, pos token.Pos, qual types.Qualifier) []analyzer.CompletionEntry {
	seen := map[string]bool{}
	var out []analyzer.CompletionEntry

	for sc := scope; sc != nil; sc = sc.Parent() {
		local := sc != types.Universe && sc.Parent() != types.Universe
		for _, name := range sc.Names() {
			if seen[name] || name == "_" {
				continue
			}
			obj := sc.Lookup(name)
			if local && obj.Pos().IsValid() && obj.Pos() > pos {
				continue
			}
			seen[name] = true
			out = append(out, entry(obj, qual))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func entry(obj types.Object, qual types.Qualifier) analyzer.CompletionEntry {
	e := analyzer.CompletionEntry{Name: obj.Name()}
	switch o := obj.(type) {
	case *types.Var:
		e.Kind = "var"
		if o.IsField() {
			e.Kind = "field"
		}
	case *types.Const:
		e.Kind = "const"
	case *types.TypeName:
		e.Kind = "type"
	case *types.Func:
		e.Kind = "func"
		if sig, ok := o.Type().(*types.Signature); ok && sig.Recv() != nil {
			e.Kind = "method"
		}
	case *types.PkgName:
		e.Kind = "package"
		e.Detail = o.Imported().Path()
		return e
	case *types.Builtin:
		e.Kind = "func"
		return e
	case *types.Nil:
		e.Kind = "var"
		return e
	}
	if obj.Type() != nil {
		e.Detail = types.TypeString(obj.Type(), qual)
	}
	return e
}

// Emit returns the gofmt output of filename.
func (s *Session) Emit(ctx context.Context, filename string) (string, error) {
	data, err := afero.ReadFile(s.fs, filename)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", filename, err)
	}
	out, err := format.Source(data)
	if err != nil {
		return "", errors.Errorf("formatting %s: %w", filename, err)
	}
	return string(out), nil
}
