package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/gotwoslash/pkg/diff"
)

type sample struct {
	Name   string
	Offset int
	hidden int
}

func TestDiffExportedOnly(t *testing.T) {
	assert.Empty(t, diff.DiffExportedOnly(sample{Name: "a", hidden: 1}, sample{Name: "a", hidden: 2}))

	d := diff.DiffExportedOnly(sample{Name: "a", Offset: 1}, sample{Name: "a", Offset: 2})
	assert.Contains(t, d, "➕")
	assert.Contains(t, d, "➖")
}

func TestText(t *testing.T) {
	assert.Empty(t, diff.Text("a\nb\n", "a\nb\n"))

	d := diff.Text("a\nb\n", "a\nc\n")
	assert.Contains(t, d, "➕b")
	assert.Contains(t, d, "➖c")
}

func TestRequireHelpersPass(t *testing.T) {
	diff.RequireKnownValueEqual(t, []int{1, 2}, []int{1, 2})
	diff.RequireTextEqual(t, "same", "same")
}
