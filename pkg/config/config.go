// Package config loads project defaults for the engine from a .twoslash.hcl
// or .twoslash.yaml file.
package config

import (
	"bytes"
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/twoslash"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Names are the file names Find looks for, in order.
var Names = []string{".twoslash.hcl", ".twoslash.yaml", ".twoslash.yml"}

type File struct {
	Defaults *DefaultsBlock `json:"defaults,omitempty" hcl:"defaults,block" yaml:"defaults,omitempty"`

	CustomTags []string `json:"custom_tags,omitempty" hcl:"custom_tags,optional" yaml:"custom_tags,omitempty"`
	VFSRoot    string   `json:"vfs_root,omitempty" hcl:"vfs_root,optional" yaml:"vfs_root,omitempty"`
	// Cache is the path of the result database. Relative paths are taken
	// from the config file's directory.
	Cache      string            `json:"cache,omitempty" hcl:"cache,optional" yaml:"cache,omitempty"`
	Extensions map[string]string `json:"extensions,omitempty" hcl:"extensions,optional" yaml:"extensions,omitempty"`

	path string
}

type DefaultsBlock struct {
	// Compiler holds raw option values, coerced like inline directives.
	Compiler map[string]string `json:"compiler,omitempty" hcl:"compiler,optional" yaml:"compiler,omitempty"`
	Handbook *options.Handbook `json:"handbook,omitempty" hcl:"handbook,block" yaml:"handbook,omitempty"`
}

// Load reads path as YAML when it ends in .yaml or .yml and as HCL otherwise.
func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg File
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
		cfg.path = path
		return &cfg, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}
	diags = gohcl.DecodeBody(hclFile.Body, ctx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg.path = path
	return &cfg, nil
}

// Find walks up from dir and loads the first config file it meets. It
// returns nil without error when there is none.
func Find(fs afero.Fs, dir string) (*File, error) {
	dir = filepath.Clean(dir)
	for {
		for _, name := range Names {
			candidate := filepath.Join(dir, name)
			ok, err := afero.Exists(fs, candidate)
			if err != nil {
				return nil, errors.Errorf("checking %s: %w", candidate, err)
			}
			if ok {
				return Load(fs, candidate)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Path is where the file was loaded from, empty when built in code.
func (f *File) Path() string {
	return f.path
}

// CachePath resolves Cache against the config file's directory.
func (f *File) CachePath() string {
	if f.Cache == "" || filepath.IsAbs(f.Cache) || f.path == "" {
		return f.Cache
	}
	return filepath.Join(filepath.Dir(f.path), f.Cache)
}

// Apply copies the file's defaults into cfg. Compiler values are checked
// against the schema of cfg.Factory, so Factory must be set.
func (f *File) Apply(ctx context.Context, cfg *twoslash.Config) error {
	if cfg.Factory == nil {
		return errors.New("config: no analyzer factory to check compiler defaults against")
	}

	resolver := options.NewResolver(cfg.Factory.Schema(), cfg.DefaultCompilerOptions, cfg.DefaultHandbookOptions)

	if f.Defaults != nil {
		names := make([]string, 0, len(f.Defaults.Compiler))
		for name := range f.Defaults.Compiler {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if _, ok := options.HandbookSchema.Lookup(name); ok {
				return errors.Errorf("%q is a handbook option, set it in the handbook block", name)
			}
			known, err := resolver.Apply(ctx, name, f.Defaults.Compiler[name])
			if err != nil {
				return errors.Errorf("compiler option %q: %w", name, err)
			}
			if !known {
				return errors.Errorf("unknown compiler option %q", name)
			}
		}

		if f.Defaults.Handbook != nil {
			resolver.Handbook = *f.Defaults.Handbook
		}
	}

	cfg.DefaultCompilerOptions = resolver.Compiler
	cfg.DefaultHandbookOptions = resolver.Handbook

	if len(f.CustomTags) > 0 {
		cfg.CustomTags = append(append([]string{}, cfg.CustomTags...), f.CustomTags...)
	}
	if f.VFSRoot != "" {
		cfg.VFSRoot = f.VFSRoot
	}
	if len(f.Extensions) > 0 {
		exts := make(map[string]string, len(twoslash.DefaultExtensions)+len(f.Extensions))
		for k, v := range twoslash.DefaultExtensions {
			exts[k] = v
		}
		for k, v := range f.Extensions {
			exts[k] = v
		}
		cfg.Extensions = exts
	}

	return nil
}
