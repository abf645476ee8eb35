package twoslash_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotwoslash/gen/mockery"
	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/position"
	"github.com/walteh/gotwoslash/pkg/token"
	"github.com/walteh/gotwoslash/pkg/twoslash"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
)

func diagnosticsAnalyzer(t *testing.T, undefinedAt int) *mockery.MockAnalyzer_analyzer {
	an := newAnalyzer(t)
	an.EXPECT().Identifiers(mock.Anything, "/main.go").Return(nil, nil)
	an.EXPECT().Diagnostics(mock.Anything, "/main.go").Return([]analyzer.Diagnostic{
		{Start: undefinedAt, Length: 1, Code: 17, Level: token.LevelError, Message: "undefined: b", Filename: "/main.go"},
		{Start: 4, Length: 1, Code: ignoredCode, Level: token.LevelWarning, Message: "declared and not used: a", Filename: "/main.go"},
		{Start: 0, Length: 1, Code: 99, Level: token.LevelError, Message: "elsewhere", Filename: "/lib.go"},
	}, nil).Maybe()
	return an
}

func TestUndeclaredErrorsFailValidation(t *testing.T) {
	an := diagnosticsAnalyzer(t, 8)

	_, err := twoslash.Run(testContext(t), "var a = b\n", "go", twoslash.Config{Factory: setup(t, an)})
	require.Error(t, err)
	assert.True(t, twoslasherr.Is(err, twoslasherr.UnexpectedErrors))
}

func TestDeclaredErrorsBecomeTokens(t *testing.T) {
	code := "// @errors: 17\nvar a = b\n"
	an := diagnosticsAnalyzer(t, 23)

	res, err := twoslash.Run(testContext(t), code, "go", twoslash.Config{Factory: setup(t, an)})
	require.NoError(t, err)

	assert.Equal(t, "var a = b\n", res.Code)
	require.Len(t, res.Errors(), 1, "ignored codes and foreign files are dropped")

	e := res.Errors()[0]
	assert.Equal(t, position.Place{Line: 0, Character: 8}, e.Place())
	assert.Equal(t, token.Error{
		ID:       "err-17-23-1",
		Code:     17,
		Level:    token.LevelError,
		Text:     "undefined: b",
		Filename: "/main.go",
	}, *e.Error)
	assert.Equal(t, []int{17}, res.Meta.Handbook.Errors)
}

func TestNoErrorsSkipsDiagnostics(t *testing.T) {
	an := newAnalyzer(t)
	an.EXPECT().Identifiers(mock.Anything, "/main.go").Return(nil, nil)

	res, err := twoslash.Run(testContext(t), "// @noErrors\nvar a = b\n", "go", twoslash.Config{Factory: setup(t, an)})
	require.NoError(t, err)
	assert.Empty(t, res.Errors())
	assert.True(t, res.Meta.Handbook.NoErrors)
}

func TestValidatorErrorsAreForwarded(t *testing.T) {
	an := diagnosticsAnalyzer(t, 8)

	v := mockery.NewMockValidator_validate(t)
	v.EXPECT().Validate(mock.Anything, mock.Anything, mock.MatchedBy(func(errs []token.Error) bool {
		return len(errs) == 1 && errs[0].Code == 17
	})).Return(assert.AnError)

	_, err := twoslash.Run(testContext(t), "var a = b\n", "go", twoslash.Config{
		Factory:   setup(t, an),
		Validator: v,
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestValidatorNotCalledWithoutErrors(t *testing.T) {
	an := newAnalyzer(t)
	an.EXPECT().Identifiers(mock.Anything, "/main.go").Return(nil, nil)
	an.EXPECT().Diagnostics(mock.Anything, "/main.go").Return(nil, nil)

	v := mockery.NewMockValidator_validate(t)

	_, err := twoslash.Run(testContext(t), "var a = 1\n", "go", twoslash.Config{
		Factory:   setup(t, an),
		Validator: v,
	})
	require.NoError(t, err)
	v.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
}

type emittingAnalyzer struct {
	*mockery.MockAnalyzer_analyzer
	*mockery.MockEmitter_analyzer
}

func TestShowEmit(t *testing.T) {
	an := newAnalyzer(t)
	an.EXPECT().Identifiers(mock.Anything, mock.Anything).Return(nil, nil)
	an.EXPECT().Diagnostics(mock.Anything, mock.Anything).Return(nil, nil)

	em := mockery.NewMockEmitter_analyzer(t)
	em.EXPECT().Emit(mock.Anything, "/lib/lib.go").Return("package lib\n", nil)

	code := "// @showEmit\n// @showEmittedFile: lib/lib.go\npackage main\n// @filename: lib/lib.go\npackage lib\n"
	res, err := twoslash.Run(testContext(t), code, "go", twoslash.Config{
		Factory: setup(t, emittingAnalyzer{an, em}),
	})
	require.NoError(t, err)

	assert.Equal(t, "package lib\n", res.Code)
	assert.Empty(t, res.Tokens)
	assert.Equal(t, "go", res.Meta.Extension)
}

func TestEmitRequiresEmitter(t *testing.T) {
	an := newAnalyzer(t)
	an.EXPECT().Identifiers(mock.Anything, mock.Anything).Return(nil, nil)
	an.EXPECT().Diagnostics(mock.Anything, mock.Anything).Return(nil, nil)

	_, err := twoslash.Run(testContext(t), "// @showEmit\npackage main\n", "go", twoslash.Config{Factory: setup(t, an)})
	require.Error(t, err)
	assert.True(t, twoslasherr.Is(err, twoslasherr.MissingEmitter))
}

func TestEmitAllFiles(t *testing.T) {
	an := newAnalyzer(t)
	an.EXPECT().Identifiers(mock.Anything, mock.Anything).Return(nil, nil)
	an.EXPECT().Diagnostics(mock.Anything, mock.Anything).Return(nil, nil)

	em := mockery.NewMockEmitter_analyzer(t)
	em.EXPECT().Emit(mock.Anything, "/main.go").Return("package main\n", nil)

	res, err := twoslash.Run(testContext(t), "// @emit\npackage main\n", "go", twoslash.Config{
		Factory: setup(t, emittingAnalyzer{an, em}),
	})
	require.NoError(t, err)
	assert.Equal(t, "package main\n", res.Code)
	assert.Equal(t, map[string]string{"/main.go": "package main\n"}, res.Emitted)
}

func TestCacheReusesEnvironmentAcrossRuns(t *testing.T) {
	env := mockery.NewMockEnvironment_analyzer(t)
	env.EXPECT().NewSession(mock.Anything).RunAndReturn(func(context.Context) (analyzer.Analyzer, error) {
		an := newAnalyzer(t)
		an.EXPECT().Identifiers(mock.Anything, mock.Anything).Return(nil, nil)
		an.EXPECT().Diagnostics(mock.Anything, mock.Anything).Return(nil, nil)
		return an, nil
	}).Twice()

	factory := mockery.NewMockFactory_analyzer(t)
	factory.EXPECT().Schema().Return(schema)
	factory.EXPECT().Defaults().Return(options.Values{})
	factory.EXPECT().IgnoredCodes().Return(nil)
	factory.EXPECT().NewEnvironment(mock.Anything, mock.Anything).Return(env, nil).Once()

	cfg := twoslash.Config{Factory: factory, Cache: analyzer.NewCache()}
	for _, code := range []string{"var a = 1\n", "var b = 2\n"} {
		_, err := twoslash.Run(testContext(t), code, "go", cfg)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, cfg.Cache.Len())
}
