// Package validate checks the diagnostics of a sample against what the sample
// declares with "// @errors: <codes>".
package validate

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/token"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"gitlab.com/tozd/go/errors"
)

// Validator is consulted once per run when diagnostics were collected.
// Any error it returns aborts the run unchanged.
type Validator interface {
	Validate(ctx context.Context, handbook options.Handbook, errs []token.Error) error
}

// ExpectedErrors requires every diagnostic code to be listed in @errors.
type ExpectedErrors struct{}

var _ Validator = ExpectedErrors{}

func (ExpectedErrors) Validate(ctx context.Context, handbook options.Handbook, errs []token.Error) error {
	var unexpected []token.Error
	for _, e := range errs {
		if !handbook.ExpectsError(e.Code) {
			unexpected = append(unexpected, e)
		}
	}
	if len(unexpected) == 0 {
		return nil
	}

	codes := uniqueCodes(unexpected)
	zerolog.Ctx(ctx).Debug().Ints("codes", codes).Msg("sample raised unexpected errors")

	var merr *multierror.Error
	for _, e := range unexpected {
		merr = multierror.Append(merr, errors.Errorf("%s: [%d] %s", e.Filename, e.Code, e.Text))
	}
	merr.ErrorFormat = listFormat

	annotation := "// @errors: " + joinCodes(codes, " ")
	recommendation := "Add " + annotation + " to the sample."
	if len(handbook.Errors) > 0 {
		recommendation = fmt.Sprintf("The existing annotation specifies %s, expected %s.", joinCodes(handbook.Errors, " "), annotation)
	}

	return twoslasherr.New(twoslasherr.UnexpectedErrors,
		"Errors were thrown in the sample, but not included in an errors tag",
		fmt.Sprintf("These errors were not marked as being expected: %s.\n\n%s", joinCodes(codes, " "), merr.Error()),
		recommendation,
	)
}

func listFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "- " + err.Error()
	}
	return strings.Join(lines, "\n")
}

func uniqueCodes(errs []token.Error) []int {
	seen := map[int]bool{}
	var out []int
	for _, e := range errs {
		if !seen[e.Code] {
			seen[e.Code] = true
			out = append(out, e.Code)
		}
	}
	sort.Ints(out)
	return out
}

func joinCodes(codes []int, sep string) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, sep)
}
