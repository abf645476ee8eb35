package debug_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/gotwoslash/pkg/debug"
)

func TestPackageAndFunc(t *testing.T) {
	tests := []struct {
		name     string
		pkg, fun string
	}{
		{"github.com/walteh/gotwoslash/pkg/twoslash.Run", "github.com/walteh/gotwoslash/pkg/twoslash", "Run"},
		{"github.com/walteh/gotwoslash/pkg/goanalyzer.(*Session).Emit", "github.com/walteh/gotwoslash/pkg/goanalyzer", "(*Session).Emit"},
		{"main.main", "main", "main"},
		{"nodot", "nodot", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, fun := debug.PackageAndFunc(tt.name)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.fun, fun)
		})
	}
}

func TestFormatCaller(t *testing.T) {
	assert.Equal(t, "example.com/p:file.go:12", debug.FormatCaller("example.com/p", "/src/p/file.go", 12, false))
	assert.Equal(t, "p:file.go:3", debug.FormatCaller("p", "file.go", 3, false))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := debug.NewLogger(&buf, zerolog.InfoLevel, false)

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "a.md").Msg("rendered")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "debug_test.go:", "caller points at the logging line")
}
