// Package engine wires the Go analyzer, the project config file and the
// result cache into one engine configuration for the commands.
package engine

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/config"
	"github.com/walteh/gotwoslash/pkg/goanalyzer"
	"github.com/walteh/gotwoslash/pkg/resultcache"
	"github.com/walteh/gotwoslash/pkg/twoslash"
	"gitlab.com/tozd/go/errors"
)

type Flags struct {
	ConfigPath string
	CachePath  string
	NoCache    bool
}

func (f *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ConfigPath, "config", "", "config file (default: nearest .twoslash.hcl or .twoslash.yaml)")
	cmd.Flags().StringVar(&f.CachePath, "cache", "", "sqlite result cache path (overrides the config file)")
	cmd.Flags().BoolVar(&f.NoCache, "no-cache", false, "do not read or write the result cache")
}

type Engine struct {
	Config twoslash.Config
	// Store is nil when no cache is configured.
	Store *resultcache.Store
}

func (e *Engine) Close() error {
	if e.Store == nil {
		return nil
	}
	return e.Store.Close()
}

// Run renders one sample, through the store when there is one.
func (e *Engine) Run(ctx context.Context, code, extension string) (*twoslash.Result, bool, error) {
	if e.Store != nil {
		return e.Store.Run(ctx, code, extension, e.Config)
	}
	res, err := twoslash.Run(ctx, code, extension, e.Config)
	return res, false, err
}

// Build loads the config file (the flag, else the nearest one above dir)
// and opens the result cache.
func (f *Flags) Build(ctx context.Context, fs afero.Fs, dir string) (*Engine, error) {
	logger := zerolog.Ctx(ctx)

	e := &Engine{Config: twoslash.Config{
		Factory: goanalyzer.NewFactory(),
		Cache:   analyzer.NewCache(),
	}}

	var file *config.File
	var err error
	if f.ConfigPath != "" {
		file, err = config.Load(fs, f.ConfigPath)
	} else {
		file, err = config.Find(fs, dir)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	cachePath := f.CachePath
	if file != nil {
		if err := file.Apply(ctx, &e.Config); err != nil {
			return nil, errors.Errorf("applying %s: %w", file.Path(), err)
		}
		if cachePath == "" {
			cachePath = file.CachePath()
		}
		logger.Debug().Str("path", file.Path()).Msg("loaded config")
	}

	if cachePath != "" && !f.NoCache {
		store, err := resultcache.Open(cachePath)
		if err != nil {
			return nil, errors.Errorf("opening result cache: %w", err)
		}
		if err := store.Migrate(); err != nil {
			store.Close()
			return nil, errors.Errorf("migrating result cache: %w", err)
		}
		e.Store = store
		logger.Debug().Str("path", cachePath).Msg("using result cache")
	}

	return e, nil
}
