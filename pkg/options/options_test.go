package options_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
)

var testSchema = options.NewSchema(
	options.Declaration{Name: "maxErrors", Kind: options.Scalar{Type: options.Number}},
	options.Declaration{Name: "goVersion", Kind: options.Scalar{Type: options.String}},
	options.Declaration{Name: "fakeImportC", Kind: options.Scalar{Type: options.Boolean}},
	options.Declaration{Name: "buildTags", Kind: options.List{Element: options.Scalar{Type: options.String}}},
	options.Declaration{Name: "goarch", Kind: options.EnumMap{Allowed: map[string]any{"amd64": "amd64", "arm64": "arm64"}}},
	options.Declaration{Name: "codes", Kind: options.List{Element: options.Scalar{Type: options.Number}, Separators: ", "}},
	options.Declaration{Name: "targets", Kind: options.List{Element: options.EnumMap{Allowed: map[string]any{"a": 1.0, "b": 2.0}}}},
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		raw     string
		want    any
		wantErr twoslasherr.Kind
	}{
		{name: "number", option: "maxErrors", raw: "10", want: 10.0},
		{name: "bad number", option: "maxErrors", raw: "ten", wantErr: twoslasherr.InvalidDirectiveValue},
		{name: "string", option: "goVersion", raw: "go1.22", want: "go1.22"},
		{name: "boolean true", option: "fakeImportC", raw: "TRUE", want: true},
		{name: "boolean empty means true", option: "fakeImportC", raw: "", want: true},
		{name: "boolean false", option: "fakeImportC", raw: "false", want: false},
		{name: "list of strings", option: "buildTags", raw: "linux, cgo", want: []any{"linux", "cgo"}},
		{name: "enum ignores case", option: "goarch", raw: "ARM64", want: "arm64"},
		{name: "enum rejects unknown", option: "goarch", raw: "mips", wantErr: twoslasherr.InvalidDirectiveValue},
		{name: "list of enums", option: "targets", raw: "a,B", want: []any{1.0, 2.0}},
		{name: "list keeps empty elements", option: "buildTags", raw: "a,,b", want: []any{"a", "", "b"}},
		{name: "list rejects empty numbers", option: "codes", raw: "1,,2", wantErr: twoslasherr.InvalidDirectiveValue},
		{name: "list folds repeated spaces", option: "codes", raw: "1  2, 3", want: []any{1.0, 2.0, 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, ok := testSchema.Lookup(tt.option)
			require.True(t, ok)

			got, err := decl.Kind.Coerce(decl.Name, tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, twoslasherr.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumErrorListsAllowedValues(t *testing.T) {
	decl, _ := testSchema.Lookup("goarch")
	_, err := decl.Kind.Coerce(decl.Name, "mips")

	e, ok := twoslasherr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Allowed values: amd64,arm64", e.Recommendation)
}

func TestResolverApply(t *testing.T) {
	ctx := context.Background()
	r := options.NewResolver(testSchema, options.Values{"goVersion": "go1.21"}, options.Handbook{})

	known, err := r.Apply(ctx, "GOVERSION", "go1.23")
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, "go1.23", r.Compiler["goVersion"], "canonical name is used")

	known, err = r.Apply(ctx, "noerrors", "")
	require.NoError(t, err)
	assert.True(t, known)
	assert.True(t, r.Handbook.NoErrors)

	known, err = r.Apply(ctx, "errors", "2322 2345,7006")
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, []int{2322, 2345, 7006}, r.Handbook.Errors)
	assert.True(t, r.Handbook.ExpectsError(2345))

	known, err = r.Apply(ctx, "frobnicate", "")
	require.NoError(t, err)
	assert.False(t, known)
}

func TestResolverDoesNotMutateDefaults(t *testing.T) {
	defaults := options.Values{"goVersion": "go1.21"}
	r := options.NewResolver(testSchema, defaults, options.Handbook{})

	_, err := r.Apply(context.Background(), "goVersion", "go1.23")
	require.NoError(t, err)
	assert.Equal(t, "go1.21", defaults["goVersion"])
}

func TestValuesIdentity(t *testing.T) {
	a := options.Values{"goVersion": "go1.22", "buildTags": []any{"x"}}
	b := options.Values{"buildTags": []any{"x"}, "goVersion": "go1.22"}
	c := options.Values{"goVersion": "go1.23", "buildTags": []any{"x"}}

	assert.Equal(t, a.Identity(), b.Identity())
	assert.NotEqual(t, a.Identity(), c.Identity())
	assert.Equal(t, []string{"x"}, a.Strings("buildTags"))
}
