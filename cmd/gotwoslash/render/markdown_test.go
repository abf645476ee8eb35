package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFences(t *testing.T) {
	doc := "# Title\n\n```go\nplain := 1\n```\n\n```go twoslash\nconst x = 1\n//    ^?\n```\n\n~~~~golang title=\"a\" twoslash\nvar y = 2\n~~~~\n"

	fences := Fences(doc)
	require.Len(t, fences, 2)

	assert.Equal(t, Fence{Lang: "go", Code: "const x = 1\n//    ^?\n", Line: 7}, fences[0])
	assert.Equal(t, Fence{Lang: "golang", Code: "var y = 2\n", Line: 12}, fences[1])
}

func TestFencesIgnoresShorterClosingMarker(t *testing.T) {
	doc := "````go twoslash\n```\nstill code\n````\n"

	fences := Fences(doc)
	require.Len(t, fences, 1)
	assert.Equal(t, "```\nstill code\n", fences[0].Code)
}

func TestFencesUnterminated(t *testing.T) {
	fences := Fences("```go twoslash\nvar a = 1\n")
	require.Len(t, fences, 1)
	assert.Equal(t, "var a = 1\n", fences[0].Code)
}
