// Package diff renders readable differences for test failures.
package diff

import (
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/require"
)

// DiffExportedOnly pretty prints both values, skipping unexported fields, and
// returns a line diff. An empty string means they render the same.
func DiffExportedOnly[T any](want T, got T) string {
	printer := pp.New()
	printer.SetExportedOnly(true)
	printer.SetColoringEnabled(false)
	return annotate(diff.Diff(printer.Sprint(got), printer.Sprint(want)))
}

// Text diffs two multi-line strings.
func Text(want, got string) string {
	return annotate(diff.Diff(got, want))
}

func annotate(d string) string {
	if d == "" {
		return ""
	}
	str := "\n\n"
	str += "to convert ACTUAL ⏩️ EXPECTED:\n\n"
	str += "add:    ➕\n"
	str += "remove: ➖\n"
	str += "\n"
	str += strings.ReplaceAll(strings.ReplaceAll(d, "\n-", "\n➖"), "\n+", "\n➕")
	return str
}

// RequireKnownValueEqual fails the test with a readable diff when want and
// got differ in any exported field.
func RequireKnownValueEqual[T any](t require.TestingT, want T, got T, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if d := DiffExportedOnly(want, got); d != "" {
		require.Fail(t, "values differ"+d, msgAndArgs...)
	}
}

// RequireTextEqual is RequireKnownValueEqual for plain text.
func RequireTextEqual(t require.TestingT, want, got string, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if d := Text(want, got); d != "" {
		require.Fail(t, "text differs"+d, msgAndArgs...)
	}
}
