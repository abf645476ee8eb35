package twoslash

import (
	"sort"
	"strings"

	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"github.com/walteh/gotwoslash/pkg/validate"
)

// HoverPredicate decides whether an identifier is worth a hover request.
// start is the identifier's offset in the original document.
type HoverPredicate func(identifier string, start int, filename string) bool

type Config struct {
	Factory analyzer.Factory
	// Cache is optional; without it every run builds a fresh environment.
	Cache *analyzer.Cache

	DefaultCompilerOptions options.Values
	DefaultHandbookOptions options.Handbook
	CustomTags             []string

	// VFSRoot prefixes every virtual filename, "/" when empty.
	VFSRoot string
	// Extensions maps accepted extension hints to the canonical extension.
	// DefaultExtensions is used when nil.
	Extensions map[string]string

	ShouldGetHoverInfo HoverPredicate
	// Validator defaults to validate.ExpectedErrors.
	Validator validate.Validator
}

var DefaultExtensions = map[string]string{
	"go":     "go",
	"golang": "go",
}

func (c Config) root() string {
	if c.VFSRoot == "" {
		return "/"
	}
	return c.VFSRoot
}

func (c Config) validator() validate.Validator {
	if c.Validator == nil {
		return validate.ExpectedErrors{}
	}
	return c.Validator
}

func (c Config) extension(hint string) (string, error) {
	exts := c.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}
	if ext, ok := exts[strings.ToLower(strings.TrimPrefix(hint, "."))]; ok {
		return ext, nil
	}

	known := make([]string, 0, len(exts))
	for k := range exts {
		known = append(known, k)
	}
	sort.Strings(known)

	return "", twoslasherr.Newf(twoslasherr.UnknownExtension,
		"Unknown file extension",
		"Supported extensions: "+strings.Join(known, ", "),
		"Cannot handle the file extension: %q.", hint)
}
