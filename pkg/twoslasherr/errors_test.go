package twoslasherr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"gitlab.com/tozd/go/errors"
)

func TestErrorSurvivesWrapping(t *testing.T) {
	base := twoslasherr.New(twoslasherr.UnknownDirective, "Invalid inline compiler flag", "There is no flag called '@frob'.", "Check for typos.")
	wrapped := errors.Errorf("extracting directives: %w", base)

	require.True(t, twoslasherr.Is(wrapped, twoslasherr.UnknownDirective))
	assert.False(t, twoslasherr.Is(wrapped, twoslasherr.UnknownExtension))

	e, ok := twoslasherr.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Invalid inline compiler flag", e.Title)
	assert.Equal(t, "## Invalid inline compiler flag\n\nThere is no flag called '@frob'.\n\nCheck for typos.", e.Error())
}

func TestNewfWithoutRecommendation(t *testing.T) {
	err := twoslasherr.Newf(twoslasherr.UnknownExtension, "Unknown extension", "", "got %q", "rb")

	e, ok := twoslasherr.As(err)
	require.True(t, ok)
	assert.Equal(t, "## Unknown extension\n\ngot \"rb\"", e.Error())
}
