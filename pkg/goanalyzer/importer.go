package goanalyzer

import (
	"context"
	"go/types"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// importer loads non-virtual packages from export data. Every package seen
// while loading is kept so later imports share type identities.
type importer struct {
	settings settings

	mu     sync.Mutex
	loaded map[string]*types.Package
	failed map[string]error
}

func newImporter(s settings) *importer {
	return &importer{
		settings: s,
		loaded:   map[string]*types.Package{"unsafe": types.Unsafe},
		failed:   map[string]error{},
	}
}

func (im *importer) config(ctx context.Context) *packages.Config {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     os.TempDir(),
		Env:     append(os.Environ(), "GOOS="+im.settings.GOOS, "GOARCH="+im.settings.GOARCH),
	}
	if len(im.settings.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(im.settings.BuildTags, ",")}
	}
	return cfg
}

// Preload fetches every path not already known in a single go/packages call.
func (im *importer) Preload(ctx context.Context, paths []string) {
	im.mu.Lock()
	defer im.mu.Unlock()

	var missing []string
	for _, p := range paths {
		if _, ok := im.loaded[p]; ok {
			continue
		}
		if _, ok := im.failed[p]; ok {
			continue
		}
		missing = append(missing, p)
	}
	if len(missing) == 0 {
		return
	}
	im.load(ctx, missing)
}

func (im *importer) Import(ctx context.Context, path string) (*types.Package, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if pkg, ok := im.loaded[path]; ok {
		return pkg, nil
	}
	if err, ok := im.failed[path]; ok {
		return nil, err
	}

	im.load(ctx, []string{path})

	if pkg, ok := im.loaded[path]; ok {
		return pkg, nil
	}
	return nil, im.failed[path]
}

// load must be called with mu held.
func (im *importer) load(ctx context.Context, paths []string) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Strs("paths", paths).Msg("loading packages")

	pkgs, err := packages.Load(im.config(ctx), paths...)
	if err != nil {
		for _, p := range paths {
			im.failed[p] = errors.Errorf("loading %s: %w", p, err)
		}
		return
	}

	packages.Visit(pkgs, nil, func(p *packages.Package) {
		if _, ok := im.loaded[p.PkgPath]; ok {
			return
		}
		if len(p.Errors) > 0 || p.Types == nil {
			im.failed[p.PkgPath] = errors.Errorf("could not import %s: %s", p.PkgPath, describe(p.Errors))
			return
		}
		im.loaded[p.PkgPath] = p.Types
	})

	for _, p := range paths {
		if _, ok := im.loaded[p]; ok {
			continue
		}
		if _, ok := im.failed[p]; !ok {
			im.failed[p] = errors.Errorf("could not import %s: package not found", p)
		}
	}
}

func describe(errs []packages.Error) string {
	if len(errs) == 0 {
		return "no type information"
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Msg
	}
	return strings.Join(msgs, "; ")
}
