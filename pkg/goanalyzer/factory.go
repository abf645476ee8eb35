// Package goanalyzer type-checks Go samples with go/types.
//
// Virtual files in the same directory form one package whose import path is
// the module path joined with the directory, so samples can split code across
// packages and import them. Everything else is loaded through go/packages and
// kept for the lifetime of the environment.
package goanalyzer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/options"
)

var _ analyzer.Factory = (*Factory)(nil)

type Factory struct {
	probeOnce sync.Once
	ignored   []int
}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Schema() *options.Schema {
	return Schema
}

func (f *Factory) Defaults() options.Values {
	return Defaults()
}

// IgnoredCodes are the go/types codes for unused variables and imports.
// Samples routinely declare things only to hover them.
func (f *Factory) IgnoredCodes() []int {
	f.probeOnce.Do(func() {
		f.ignored = probeUnusedCodes()
	})
	return f.ignored
}

func (f *Factory) NewEnvironment(ctx context.Context, opts options.Values) (analyzer.Environment, error) {
	s := settingsFrom(opts)
	zerolog.Ctx(ctx).Debug().
		Str("goos", s.GOOS).
		Str("goarch", s.GOARCH).
		Str("goVersion", s.GoVersion).
		Strs("buildTags", s.BuildTags).
		Msg("creating go environment")

	return &Environment{
		settings: s,
		imports:  newImporter(s),
	}, nil
}

// Environment shares loaded dependencies between sessions.
type Environment struct {
	settings settings
	imports  *importer
}

func (e *Environment) NewSession(ctx context.Context) (analyzer.Analyzer, error) {
	return newSession(e), nil
}
