package goanalyzer

import (
	"context"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/position"
	"github.com/walteh/gotwoslash/pkg/vfs"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/mod/modfile"
)

var (
	_ analyzer.Analyzer = (*Session)(nil)
	_ analyzer.Emitter  = (*Session)(nil)
)

type sourceFile struct {
	name    string
	content string
	// header is the length of the hidden package clause prepended to content.
	header    int
	syntax    *ast.File
	tokens    *token.File
	parseErrs scanner.ErrorList
}

// offset maps a position to an offset into the user visible content.
func (f *sourceFile) offset(pos token.Pos) int {
	return f.tokens.Offset(pos) - f.header
}

func (f *sourceFile) pos(offset int) token.Pos {
	off := offset + f.header
	if off > f.tokens.Size() {
		off = f.tokens.Size()
	}
	return f.tokens.Pos(off)
}

type checkState int

const (
	unchecked checkState = iota
	checking
	checked
)

type virtualPackage struct {
	dir   string
	path  string
	files []*sourceFile
	types *types.Package
	info  *types.Info
	errs  []types.Error
	state checkState
}

// Session holds the virtual files of one run. Files are checked lazily and
// rechecked after every CreateFile.
type Session struct {
	env   *Environment
	fs    afero.Fs
	order []string

	fset   *token.FileSet
	files  map[string]*sourceFile
	pkgs   map[string]*virtualPackage
	byPath map[string]*virtualPackage
	module string
	fresh  bool
}

func newSession(env *Environment) *Session {
	return &Session{
		env: env,
		fs:  afero.NewMemMapFs(),
	}
}

func (s *Session) CreateFile(ctx context.Context, filename, content string) error {
	if err := vfs.Mount(s.fs, []vfs.VirtualFile{{Filename: filename, Content: content}}); err != nil {
		return errors.Errorf("creating virtual file: %w", err)
	}
	for _, name := range s.order {
		if name == filename {
			s.fresh = false
			return nil
		}
	}
	s.order = append(s.order, filename)
	s.fresh = false
	return nil
}

func (s *Session) importPath(dir string) string {
	rel := strings.Trim(dir, "/")
	if rel == "" || rel == "." {
		return s.module
	}
	return s.module + "/" + rel
}

func (s *Session) modulePath() string {
	data, err := afero.ReadFile(s.fs, "/go.mod")
	if err == nil {
		if mod := modfile.ModulePath(data); mod != "" {
			return mod
		}
	}
	return s.env.settings.Module
}

// check parses and type-checks every Go file unless nothing changed since
// the last call.
func (s *Session) check(ctx context.Context) error {
	if s.fresh {
		return nil
	}

	s.fset = token.NewFileSet()
	s.files = map[string]*sourceFile{}
	s.pkgs = map[string]*virtualPackage{}
	s.byPath = map[string]*virtualPackage{}
	s.module = s.modulePath()

	for _, name := range s.order {
		if path.Ext(name) != ".go" {
			continue
		}
		data, err := afero.ReadFile(s.fs, name)
		if err != nil {
			return errors.Errorf("reading %s: %w", name, err)
		}

		dir := path.Dir(name)
		p, ok := s.pkgs[dir]
		if !ok {
			p = &virtualPackage{dir: dir, path: s.importPath(dir)}
			s.pkgs[dir] = p
			s.byPath[p.path] = p
		}
		p.files = append(p.files, &sourceFile{name: name, content: string(data)})
	}

	var external []string
	for _, p := range s.pkgs {
		s.parsePackage(p)
		for _, f := range p.files {
			if f.syntax == nil {
				continue
			}
			for _, imp := range f.syntax.Imports {
				ip := strings.Trim(imp.Path.Value, "`\"")
				if _, ok := s.byPath[ip]; !ok && ip != "C" {
					external = append(external, ip)
				}
			}
		}
	}
	sort.Strings(external)
	s.env.imports.Preload(ctx, external)

	dirs := make([]string, 0, len(s.pkgs))
	for dir := range s.pkgs {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		if _, err := s.checkPackage(ctx, s.pkgs[dir]); err != nil {
			return err
		}
	}

	s.fresh = true
	return nil
}

// parsePackage gives files without a package clause the name used by their
// siblings, falling back to the packageName option.
func (s *Session) parsePackage(p *virtualPackage) {
	name := ""
	for _, f := range p.files {
		if n := packageClause(f.content); n != "" {
			name = n
			break
		}
	}
	if name == "" {
		name = s.env.settings.PackageName
	}

	for _, f := range p.files {
		src := f.content
		if packageClause(f.content) == "" {
			header := "package " + name + "\n"
			f.header = len(header)
			src = header + src
		}

		base := s.fset.Base()
		syntax, err := parser.ParseFile(s.fset, f.name, src, parser.ParseComments|parser.AllErrors)
		f.syntax = syntax
		f.tokens = s.fset.File(token.Pos(base))
		if el, ok := err.(scanner.ErrorList); ok {
			f.parseErrs = el
		}
		s.files[f.name] = f
	}
}

// packageClause returns the package name if src starts with a package
// clause, ignoring comments.
func packageClause(src string) string {
	fset := token.NewFileSet()
	tf := fset.AddFile("", -1, len(src))

	var sc scanner.Scanner
	sc.Init(tf, []byte(src), nil, 0)

	_, tok, _ := sc.Scan()
	if tok != token.PACKAGE {
		return ""
	}
	_, tok, lit := sc.Scan()
	if tok != token.IDENT {
		return ""
	}
	return lit
}

func (s *Session) checkPackage(ctx context.Context, p *virtualPackage) (*types.Package, error) {
	switch p.state {
	case checked:
		return p.types, nil
	case checking:
		return nil, errors.Errorf("import cycle through %s", p.path)
	}
	p.state = checking

	cfg := s.env.settings
	conf := types.Config{
		GoVersion:                cfg.GoVersion,
		Importer:                 &sessionImporter{ctx: ctx, session: s},
		Sizes:                    types.SizesFor("gc", cfg.GOARCH),
		DisableUnusedImportCheck: cfg.DisableUnusedImportCheck,
		FakeImportC:              cfg.FakeImportC,
		IgnoreFuncBodies:         cfg.IgnoreFuncBodies,
		Error: func(err error) {
			te, ok := err.(types.Error)
			if !ok {
				return
			}
			if cfg.MaxErrors > 0 && len(p.errs) >= cfg.MaxErrors {
				return
			}
			p.errs = append(p.errs, te)
		},
	}

	var syntax []*ast.File
	for _, f := range p.files {
		if f.syntax != nil {
			syntax = append(syntax, f.syntax)
		}
	}

	p.info = &types.Info{
		Types:      map[ast.Expr]types.TypeAndValue{},
		Defs:       map[*ast.Ident]types.Object{},
		Uses:       map[*ast.Ident]types.Object{},
		Implicits:  map[ast.Node]types.Object{},
		Selections: map[*ast.SelectorExpr]*types.Selection{},
		Scopes:     map[ast.Node]*types.Scope{},
	}
	p.types, _ = conf.Check(p.path, s.fset, syntax, p.info)
	p.state = checked

	zerolog.Ctx(ctx).Debug().
		Str("package", p.path).
		Int("files", len(syntax)).
		Int("errors", len(p.errs)).
		Msg("type-checked virtual package")

	return p.types, nil
}

type sessionImporter struct {
	ctx     context.Context
	session *Session
}

func (im *sessionImporter) Import(path string) (*types.Package, error) {
	if p, ok := im.session.byPath[path]; ok {
		return im.session.checkPackage(im.ctx, p)
	}
	return im.session.env.imports.Import(im.ctx, path)
}

func (s *Session) lookup(ctx context.Context, filename string) (*sourceFile, *virtualPackage, error) {
	if err := s.check(ctx); err != nil {
		return nil, nil, err
	}
	f, ok := s.files[filename]
	if !ok || f.syntax == nil {
		return nil, nil, nil
	}
	return f, s.pkgs[path.Dir(filename)], nil
}

func (s *Session) Identifiers(ctx context.Context, filename string) ([]analyzer.Identifier, error) {
	f, _, err := s.lookup(ctx, filename)
	if err != nil || f == nil {
		return nil, err
	}

	var out []analyzer.Identifier
	ast.Inspect(f.syntax, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		if start := f.offset(id.Pos()); start >= 0 {
			span := position.NewSpan(id.Name, start)
			out = append(out, analyzer.Identifier{Start: span.Offset, Length: span.Length(), Text: span.Text})
		}
		return true
	})
	return out, nil
}

// identAt finds the identifier covering the content offset.
func identAt(f *sourceFile, offset int) *ast.Ident {
	var found *ast.Ident
	ast.Inspect(f.syntax, func(n ast.Node) bool {
		if found != nil || n == nil {
			return false
		}
		if id, ok := n.(*ast.Ident); ok {
			if position.NewSpan(id.Name, f.offset(id.Pos())).Covers(offset) {
				found = id
			}
		}
		return true
	})
	return found
}
