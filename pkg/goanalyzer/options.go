package goanalyzer

import (
	"runtime"

	"github.com/walteh/gotwoslash/pkg/options"
)

var goosValues = enum("aix", "android", "darwin", "dragonfly", "freebsd", "illumos", "ios", "js", "linux", "netbsd", "openbsd", "plan9", "solaris", "wasip1", "windows")

var goarchValues = enum("386", "amd64", "arm", "arm64", "loong64", "mips", "mips64", "mips64le", "mipsle", "ppc64", "ppc64le", "riscv64", "s390x", "wasm")

func enum(values ...string) map[string]any {
	m := make(map[string]any, len(values))
	for _, v := range values {
		m[v] = v
	}
	return m
}

// Schema lists the compiler options a sample may set with "// @name: value".
var Schema = options.NewSchema(
	options.Declaration{Name: "goVersion", Kind: options.Scalar{Type: options.String}},
	options.Declaration{Name: "goos", Kind: options.EnumMap{Allowed: goosValues}},
	options.Declaration{Name: "goarch", Kind: options.EnumMap{Allowed: goarchValues}},
	options.Declaration{Name: "buildTags", Kind: options.List{Element: options.Scalar{Type: options.String}, Separators: ", "}},
	options.Declaration{Name: "disableUnusedImportCheck", Kind: options.Scalar{Type: options.Boolean}},
	options.Declaration{Name: "fakeImportC", Kind: options.Scalar{Type: options.Boolean}},
	options.Declaration{Name: "ignoreFuncBodies", Kind: options.Scalar{Type: options.Boolean}},
	options.Declaration{Name: "maxErrors", Kind: options.Scalar{Type: options.Number}},
	options.Declaration{Name: "packageName", Kind: options.Scalar{Type: options.String}},
	options.Declaration{Name: "module", Kind: options.Scalar{Type: options.String}},
)

// Defaults are used for every option a sample leaves alone.
func Defaults() options.Values {
	return options.Values{
		"goos":        runtime.GOOS,
		"goarch":      runtime.GOARCH,
		"packageName": "main",
		"module":      "example.com/twoslash",
	}
}

// settings is the typed view of a resolved option set.
type settings struct {
	GoVersion                string
	GOOS                     string
	GOARCH                   string
	BuildTags                []string
	DisableUnusedImportCheck bool
	FakeImportC              bool
	IgnoreFuncBodies         bool
	MaxErrors                int
	PackageName              string
	Module                   string
}

func settingsFrom(v options.Values) settings {
	v = Defaults().Merge(v)
	return settings{
		GoVersion:                v.String("goVersion"),
		GOOS:                     v.String("goos"),
		GOARCH:                   v.String("goarch"),
		BuildTags:                v.Strings("buildTags"),
		DisableUnusedImportCheck: v.Bool("disableUnusedImportCheck"),
		FakeImportC:              v.Bool("fakeImportC"),
		IgnoreFuncBodies:         v.Bool("ignoreFuncBodies"),
		MaxErrors:                v.Int("maxErrors"),
		PackageName:              v.String("packageName"),
		Module:                   v.String("module"),
	}
}
