package goanalyzer

import (
	"context"
	"go/ast"
	"go/types"
	"strings"

	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/directive"
	"golang.org/x/tools/go/ast/astutil"
)

func (s *Session) HoverInfo(ctx context.Context, filename string, offset int) (*analyzer.Hover, error) {
	f, p, err := s.lookup(ctx, filename)
	if err != nil || f == nil || p.info == nil {
		return nil, err
	}

	id := identAt(f, offset)
	if id == nil {
		return nil, nil
	}
	obj := p.info.ObjectOf(id)
	if obj == nil {
		return nil, nil
	}

	text := types.ObjectString(obj, qualifier(p.types))
	if c, ok := obj.(*types.Const); ok && c.Val() != nil {
		text += " = " + c.Val().ExactString()
	}

	return &analyzer.Hover{Text: text, Docs: s.docFor(obj)}, nil
}

// docFor returns the doc comment of obj's declaration when it was declared
// in one of the session's files.
func (s *Session) docFor(obj types.Object) string {
	if obj.Pkg() == nil || !obj.Pos().IsValid() {
		return ""
	}
	p, ok := s.byPath[obj.Pkg().Path()]
	if !ok || p.types != obj.Pkg() {
		return ""
	}

	var decl *sourceFile
	for _, f := range p.files {
		if f.syntax != nil && f.syntax.FileStart <= obj.Pos() && obj.Pos() <= f.syntax.FileEnd {
			decl = f
			break
		}
	}
	if decl == nil {
		return ""
	}

	path, _ := astutil.PathEnclosingInterval(decl.syntax, obj.Pos(), obj.Pos())
	for _, n := range path {
		var doc *ast.CommentGroup
		switch n := n.(type) {
		case *ast.Field:
			doc = n.Doc
			if doc == nil {
				doc = n.Comment
			}
			return commentText(doc)
		case *ast.ValueSpec:
			doc = n.Doc
		case *ast.TypeSpec:
			doc = n.Doc
		case *ast.GenDecl:
			doc = n.Doc
		case *ast.FuncDecl:
			if n.Name.Pos() == obj.Pos() {
				doc = n.Doc
			}
			return commentText(doc)
		}
		if doc != nil {
			return commentText(doc)
		}
	}
	return ""
}

// commentText drops marker and directive lines; they sit right above the
// code they annotate, where go/ast takes them for doc comments.
func commentText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	kept := &ast.CommentGroup{}
	for _, c := range doc.List {
		if len(directive.Scan(c.Text)) > 0 {
			continue
		}
		kept.List = append(kept.List, c)
	}
	return strings.TrimSpace(kept.Text())
}

// qualifier drops the package of names declared in pkg and uses the package
// name, not the import path, for everything else.
func qualifier(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		return other.Name()
	}
}
