package resultcache_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotwoslash/gen/mockery"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/diff"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/resultcache"
	"github.com/walteh/gotwoslash/pkg/token"
	"github.com/walteh/gotwoslash/pkg/twoslash"
)

func newTestStore(t *testing.T) *resultcache.Store {
	t.Helper()
	s, err := resultcache.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())
}

func sampleResult() *twoslash.Result {
	return &twoslash.Result{
		Code: "var a = 1\n",
		Tokens: token.Tokens{
			{Kind: token.KindHover, Start: 4, Length: 1, Line: 0, Character: 4, Hover: &token.Hover{Target: "a", Text: "var a int"}},
		},
		Meta: twoslash.Meta{Extension: "go", CompilerOptions: options.Values{"goos": "linux"}},
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate())
}

func TestGetMiss(t *testing.T) {
	s := newTestStore(t)
	res, err := s.Get(testContext(t), "nope")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestPutGet(t *testing.T) {
	ctx := testContext(t)
	s := newTestStore(t)

	want := sampleResult()
	require.NoError(t, s.Put(ctx, "k", want))
	require.NoError(t, s.Put(ctx, "k", want), "replacing is fine")

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Code, got.Code)
	diff.RequireKnownValueEqual(t, want.Tokens, got.Tokens)
	assert.Equal(t, want.Meta.CompilerOptions, got.Meta.CompilerOptions)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPrune(t *testing.T) {
	ctx := testContext(t)
	s := newTestStore(t)
	require.NoError(t, s.Put(ctx, "old", sampleResult()))

	n, err := s.Prune(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Prune(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestKey(t *testing.T) {
	base := twoslash.Config{DefaultCompilerOptions: options.Values{"goos": "linux"}, CustomTags: []string{"a", "b"}}
	key := resultcache.Key("code", "go", base)

	assert.Len(t, key, 64)
	assert.Equal(t, key, resultcache.Key("code", "go", twoslash.Config{
		DefaultCompilerOptions: options.Values{"goos": "linux"},
		CustomTags:             []string{"b", "a"},
	}), "tag order does not matter")

	assert.NotEqual(t, key, resultcache.Key("code2", "go", base))
	assert.NotEqual(t, key, resultcache.Key("code", "golang", base))

	other := base
	other.DefaultCompilerOptions = options.Values{"goos": "darwin"}
	assert.NotEqual(t, key, resultcache.Key("code", "go", other))

	other = base
	other.DefaultHandbookOptions.NoErrors = true
	assert.NotEqual(t, key, resultcache.Key("code", "go", other))

	other = base
	other.Extensions = twoslash.DefaultExtensions
	assert.Equal(t, key, resultcache.Key("code", "go", other), "nil extensions mean the defaults")

	other.Extensions = map[string]string{"go": "go", "golang": "go", "gotmpl": "go"}
	assert.NotEqual(t, key, resultcache.Key("code", "go", other))
}

func TestRunCachesResults(t *testing.T) {
	ctx := testContext(t)
	s := newTestStore(t)

	sess := mockery.NewMockAnalyzer_analyzer(t)
	sess.EXPECT().CreateFile(mock.Anything, "/main.go", "var a = 1\n").Return(nil).Once()
	sess.EXPECT().Identifiers(mock.Anything, "/main.go").Return([]analyzer.Identifier{{Start: 4, Length: 1, Text: "a"}}, nil).Once()
	sess.EXPECT().HoverInfo(mock.Anything, "/main.go", 4).Return(&analyzer.Hover{Text: "var a int"}, nil).Once()
	sess.EXPECT().Diagnostics(mock.Anything, "/main.go").Return(nil, nil).Once()

	env := mockery.NewMockEnvironment_analyzer(t)
	env.EXPECT().NewSession(mock.Anything).Return(sess, nil).Once()

	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().Schema().Return(options.NewSchema()).Maybe()
	factory.EXPECT().Defaults().Return(options.Values{}).Maybe()
	factory.EXPECT().IgnoredCodes().Return(nil).Maybe()
	factory.EXPECT().NewEnvironment(mock.Anything, mock.Anything).Return(env, nil).Once()

	cfg := twoslash.Config{Factory: factory}

	first, hit, err := s.Run(ctx, "var a = 1\n", "go", cfg)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, first.Tokens, 1)

	second, hit, err := s.Run(ctx, "var a = 1\n", "go", cfg)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Tokens, second.Tokens)
}

func TestRunDoesNotStoreFailures(t *testing.T) {
	ctx := testContext(t)
	s := newTestStore(t)

	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().Schema().Return(options.NewSchema()).Maybe()
	factory.EXPECT().Defaults().Return(options.Values{}).Maybe()

	_, _, err := s.Run(ctx, "// @frobnicate\n", "go", twoslash.Config{Factory: factory})
	require.Error(t, err)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
