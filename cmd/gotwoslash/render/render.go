package render

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/gotwoslash/cmd/gotwoslash/engine"
	"github.com/walteh/gotwoslash/pkg/twoslash"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type Handler struct {
	engine engine.Flags
	dir    string
	format string
	ext    string
	jobs   int
	fs     afero.Fs
}

// Rendered is one sample's output. Block is the fence index for markdown
// inputs and zero otherwise.
type Rendered struct {
	Path   string           `json:"path" yaml:"path"`
	Block  int              `json:"block" yaml:"block"`
	Line   int              `json:"line" yaml:"line"`
	Cached bool             `json:"cached" yaml:"cached"`
	Result *twoslash.Result `json:"result" yaml:"result"`
}

func NewRenderCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "render <glob>...",
		Short: "render sample files and twoslash blocks of markdown files",
		Args:  cobra.MinimumNArgs(1),
	}

	me.engine.Register(cmd)
	cmd.Flags().StringVar(&me.dir, "dir", ".", "directory the globs are matched in")
	cmd.Flags().StringVar(&me.format, "format", "json", "output format (json or yaml)")
	cmd.Flags().StringVar(&me.ext, "ext", "", "extension hint for every sample (default: from the file name or fence)")
	cmd.Flags().IntVar(&me.jobs, "jobs", runtime.NumCPU(), "samples rendered at once")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args, cmd.OutOrStdout())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, patterns []string, out io.Writer) error {
	if me.format != "json" && me.format != "yaml" {
		return errors.Errorf("unknown format %q", me.format)
	}

	dir, err := filepath.Abs(me.dir)
	if err != nil {
		return errors.Errorf("resolving %s: %w", me.dir, err)
	}

	e, err := me.engine.Build(ctx, me.fs, dir)
	if err != nil {
		return err
	}
	defer e.Close()

	paths, err := me.match(dir, patterns)
	if err != nil {
		return err
	}

	results, renderErr := me.renderAll(ctx, e, dir, paths)

	if err := me.write(out, results); err != nil {
		return multierr.Append(renderErr, err)
	}
	return renderErr
}

func (me *Handler) match(dir string, patterns []string) ([]string, error) {
	fsys := afero.NewIOFS(afero.NewBasePathFs(me.fs, dir))

	seen := map[string]bool{}
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("matching %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

type job struct {
	path  string
	block int
	line  int
	ext   string
	code  string
}

func (me *Handler) jobsFor(dir, path string) ([]job, error) {
	data, err := afero.ReadFile(me.fs, filepath.Join(dir, filepath.FromSlash(path)))
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext != "md" && ext != "markdown" {
		if me.ext != "" {
			ext = me.ext
		}
		return []job{{path: path, ext: ext, code: string(data)}}, nil
	}

	fences := Fences(string(data))
	jobs := make([]job, 0, len(fences))
	for i, f := range fences {
		lang := f.Lang
		if me.ext != "" {
			lang = me.ext
		}
		jobs = append(jobs, job{path: path, block: i, line: f.Line, ext: lang, code: f.Code})
	}
	return jobs, nil
}

func (me *Handler) renderAll(ctx context.Context, e *engine.Engine, dir string, paths []string) ([]Rendered, error) {
	logger := zerolog.Ctx(ctx)

	var jobs []job
	var errs error
	for _, p := range paths {
		js, err := me.jobsFor(dir, p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		jobs = append(jobs, js...)
	}

	var mu sync.Mutex
	results := make([]Rendered, 0, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if me.jobs > 0 {
		g.SetLimit(me.jobs)
	}
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			res, cached, err := e.Run(gctx, j.code, j.ext)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, errors.Errorf("%s (block %d, line %d): %w", j.path, j.block, j.line+1, err))
				return nil
			}
			logger.Info().Str("path", j.path).Int("block", j.block).Bool("cached", cached).Msg("rendered")
			results = append(results, Rendered{Path: j.path, Block: j.block, Line: j.line, Cached: cached, Result: res})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = multierr.Append(errs, err)
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].Path != results[b].Path {
			return results[a].Path < results[b].Path
		}
		return results[a].Block < results[b].Block
	})
	return results, errs
}

func (me *Handler) write(out io.Writer, results []Rendered) error {
	if me.format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return errors.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return errors.Errorf("encoding JSON: %w", err)
	}
	return nil
}
