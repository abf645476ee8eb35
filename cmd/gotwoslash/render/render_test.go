package render

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())
}

func newHandler(t *testing.T, files map[string]string) *Handler {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/work", name), []byte(content), 0o644))
	}
	return &Handler{fs: fs, dir: "/work", format: "json", jobs: 2}
}

func decode(t *testing.T, buf *bytes.Buffer) []Rendered {
	t.Helper()
	var out []Rendered
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestRenderFilesAndMarkdown(t *testing.T) {
	me := newHandler(t, map[string]string{
		"samples/a.go": "const x = 1\n//    ^?\n",
		"docs/guide.md": "# Guide\n\n```go twoslash\n// @noErrors\nvar y = 2\n```\n",
		"notes.txt":     "ignored",
	})

	var buf bytes.Buffer
	require.NoError(t, me.Run(testContext(t), []string{"**/*.go", "**/*.md"}, &buf))

	out := decode(t, &buf)
	require.Len(t, out, 2)

	assert.Equal(t, "docs/guide.md", out[0].Path)
	assert.Equal(t, 3, out[0].Line)
	assert.Equal(t, "var y = 2\n", out[0].Result.Code)
	assert.True(t, out[0].Result.Meta.Handbook.NoErrors)

	assert.Equal(t, "samples/a.go", out[1].Path)
	assert.Equal(t, "const x = 1\n", out[1].Result.Code)
	require.Len(t, out[1].Result.Queries(), 1)
	assert.Equal(t, "const x untyped int = 1", out[1].Result.Queries()[0].Hover.Text)
}

func TestRenderReportsFailuresAndKeepsGoing(t *testing.T) {
	me := newHandler(t, map[string]string{
		"good.go": "var a = 1\n",
		"bad.go":  "// @frobnicate\nvar b = 1\n",
	})

	var buf bytes.Buffer
	err := me.Run(testContext(t), []string{"*.go"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.go")

	out := decode(t, &buf)
	require.Len(t, out, 1)
	assert.Equal(t, "good.go", out[0].Path)
}

func TestRenderNoMatch(t *testing.T) {
	me := newHandler(t, map[string]string{"a.go": "var a = 1\n"})

	err := me.Run(testContext(t), []string{"*.rs"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")
}

func TestRenderYAML(t *testing.T) {
	me := newHandler(t, map[string]string{"a.go": "var a = 1\n"})
	me.format = "yaml"

	var buf bytes.Buffer
	require.NoError(t, me.Run(testContext(t), []string{"a.go"}, &buf))

	var out []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "a.go", out[0]["path"])
}

func TestRenderUsesResultCache(t *testing.T) {
	me := newHandler(t, map[string]string{"a.go": "var a = 1\n"})
	me.engine.CachePath = filepath.Join(t.TempDir(), "results.db")

	var first, second bytes.Buffer
	require.NoError(t, me.Run(testContext(t), []string{"a.go"}, &first))
	require.NoError(t, me.Run(testContext(t), []string{"a.go"}, &second))

	assert.False(t, decode(t, &first)[0].Cached)
	assert.True(t, decode(t, &second)[0].Cached)
}

func TestRenderConfigFile(t *testing.T) {
	me := newHandler(t, map[string]string{
		".twoslash.yaml": "defaults:\n  handbook:\n    noErrors: true\n",
		"a.go":           "var a int = \"nope\"\n",
	})

	var buf bytes.Buffer
	require.NoError(t, me.Run(testContext(t), []string{"a.go"}, &buf))
	out := decode(t, &buf)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Result.Errors())
}
