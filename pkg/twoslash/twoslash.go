/*
Package twoslash renders an annotated code sample into clean code and
positioned tokens.

	sample --> extract --> analyzer session --> collect --> Classify
	                                                           |
	Result <-- Resolve <-- ApplyRemovals <-- validate <--------+

Directives ("// @name: value") configure the analyzer and the engine,
markers ("// ^?", "// ^|", "// ^^^") point at the line above them and cut
markers ("// ---cut---") hide setup code. Every directive and marker line is
removed from the output and the tokens are moved to match.
*/
package twoslash

import (
	"context"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/extract"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/position"
	"github.com/walteh/gotwoslash/pkg/token"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"gitlab.com/tozd/go/errors"
)

type Meta struct {
	Extension       string           `json:"extension"`
	CompilerOptions options.Values   `json:"compilerOptions"`
	Handbook        options.Handbook `json:"handbookOptions"`
	// Removals are the merged ranges in the order they were cut, last first.
	Removals []position.Range `json:"removals"`
}

type Result struct {
	Code   string       `json:"code"`
	Tokens token.Tokens `json:"tokens"`
	Meta   Meta         `json:"meta"`
	// Emitted holds the analyzer output per file when @emit is set.
	Emitted map[string]string `json:"emitted,omitempty"`
}

func (r *Result) Hovers() token.Tokens      { return r.Tokens.Hovers() }
func (r *Result) Queries() token.Tokens     { return r.Tokens.Queries() }
func (r *Result) Completions() token.Tokens { return r.Tokens.Completions() }
func (r *Result) Errors() token.Tokens      { return r.Tokens.Errors() }
func (r *Result) Highlights() token.Tokens  { return r.Tokens.Highlights() }
func (r *Result) Tags() token.Tokens        { return r.Tokens.Tags() }

// Run processes one sample. extension is a hint such as "go"; it picks the
// default filename and must be listed in cfg.Extensions.
func Run(ctx context.Context, code, extension string, cfg Config) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if cfg.Factory == nil {
		return nil, errors.New("twoslash: no analyzer factory configured")
	}

	ext, err := cfg.extension(extension)
	if err != nil {
		return nil, err
	}
	defaultFilename := "main." + ext

	x, err := extract.Extract(ctx, code, extract.Config{
		Schema:          cfg.Factory.Schema(),
		Compiler:        cfg.Factory.Defaults().Merge(cfg.DefaultCompilerOptions),
		Handbook:        cfg.DefaultHandbookOptions,
		CustomTags:      cfg.CustomTags,
		DefaultFilename: defaultFilename,
		Root:            cfg.root(),
	})
	if err != nil {
		return nil, err
	}

	sess, err := session(ctx, cfg, x.Compiler)
	if err != nil {
		return nil, err
	}

	for _, f := range x.Files {
		if err := sess.CreateFile(ctx, f.Filename, f.Content); err != nil {
			return nil, errors.Errorf("creating %s: %w", f.Filename, err)
		}
	}

	c := &collector{
		doc:       code,
		x:         x,
		analyzer:  sess,
		ignored:   cfg.Factory.IgnoredCodes(),
		shouldGet: cfg.ShouldGetHoverInfo,
	}

	tokens := append([]token.Token{}, x.Tags...)
	for _, f := range x.Files {
		hovers, err := c.hovers(ctx, f)
		if err != nil {
			return nil, err
		}
		completions, err := c.completions(ctx, f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, hovers...)
		tokens = append(tokens, completions...)

		if x.Handbook.NoErrors || x.Handbook.NoErrorValidation {
			continue
		}
		diags, err := c.diagnostics(ctx, f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, diags...)
	}

	tokens = token.Classify(tokens, x.QueryOffsets(), x.HighlightRanges())

	if errs := token.Tokens(tokens).Errors(); len(errs) > 0 && !x.Handbook.NoErrorValidation {
		payloads := make([]token.Error, len(errs))
		for i, e := range errs {
			payloads[i] = *e.Error
		}
		if err := cfg.validator().Validate(ctx, x.Handbook, payloads); err != nil {
			return nil, err
		}
	}

	meta := Meta{
		Extension:       ext,
		CompilerOptions: x.Compiler,
		Handbook:        x.Handbook,
	}

	if x.Handbook.ShowEmit {
		return showEmit(ctx, sess, meta, path.Join(cfg.root(), emittedName(x.Handbook, defaultFilename)))
	}

	var emitted map[string]string
	if x.Handbook.Emit {
		emitted, err = emitAll(ctx, sess, x)
		if err != nil {
			return nil, err
		}
	}

	out, tokens, merged := token.ApplyRemovals(code, x.Removals, tokens)
	meta.Removals = merged

	if x.Handbook.NoStaticSemanticInfo {
		kept := tokens[:0:0]
		for _, t := range tokens {
			if t.Kind != token.KindHover {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	var pc *position.Converter
	if out == code {
		pc = x.Converter
	}

	result := &Result{
		Code:    out,
		Tokens:  token.Resolve(out, pc, tokens),
		Meta:    meta,
		Emitted: emitted,
	}

	logger.Debug().
		Str("extension", ext).
		Int("files", len(x.Files)).
		Int("tokens", len(result.Tokens)).
		Int("removals", len(merged)).
		Msg("twoslash run complete")

	return result, nil
}

func session(ctx context.Context, cfg Config, opts options.Values) (analyzer.Analyzer, error) {
	var env analyzer.Environment
	var err error
	if cfg.Cache != nil {
		env, err = cfg.Cache.Get(ctx, cfg.Factory, opts)
	} else {
		env, err = cfg.Factory.NewEnvironment(ctx, opts)
	}
	if err != nil {
		return nil, errors.Errorf("preparing analyzer environment: %w", err)
	}

	sess, err := env.NewSession(ctx)
	if err != nil {
		return nil, errors.Errorf("starting analyzer session: %w", err)
	}
	return sess, nil
}

func emittedName(h options.Handbook, defaultFilename string) string {
	if h.ShowEmittedFile != "" {
		return h.ShowEmittedFile
	}
	return defaultFilename
}

func emitterOf(sess analyzer.Analyzer) (analyzer.Emitter, error) {
	emitter, ok := sess.(analyzer.Emitter)
	if !ok {
		return nil, twoslasherr.New(twoslasherr.MissingEmitter,
			"Emit is not supported",
			"The configured analyzer cannot emit files.",
			"Remove @showEmit and @emit from the sample.")
	}
	return emitter, nil
}

// showEmit replaces the sample with the emitted text of one file.
func showEmit(ctx context.Context, sess analyzer.Analyzer, meta Meta, filename string) (*Result, error) {
	emitter, err := emitterOf(sess)
	if err != nil {
		return nil, err
	}
	text, err := emitter.Emit(ctx, filename)
	if err != nil {
		return nil, errors.Errorf("emitting %s: %w", filename, err)
	}

	meta.Extension = strings.TrimPrefix(path.Ext(filename), ".")
	meta.Removals = []position.Range{}
	return &Result{Code: text, Tokens: token.Tokens{}, Meta: meta}, nil
}

func emitAll(ctx context.Context, sess analyzer.Analyzer, x *extract.Extraction) (map[string]string, error) {
	emitter, err := emitterOf(sess)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(x.Files))
	for _, f := range x.Files {
		text, err := emitter.Emit(ctx, f.Filename)
		if err != nil {
			return nil, errors.Errorf("emitting %s: %w", f.Filename, err)
		}
		out[f.Filename] = text
	}
	return out, nil
}
