// Package twoslasherr holds the structured failures surfaced to sample authors.
package twoslasherr

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Kind classifies a user-input failure.
type Kind string

const (
	UnknownDirective       Kind = "unknown-directive"
	InvalidDirectiveValue  Kind = "invalid-directive-value"
	InvalidCompletionQuery Kind = "invalid-completion-query"
	UnknownExtension       Kind = "unknown-extension"
	UnexpectedErrors       Kind = "unexpected-errors"
	MissingEmitter         Kind = "missing-emitter"
)

// Error is a failure with enough text to tell the sample author what to fix.
type Error struct {
	Kind           Kind   `json:"kind"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(e.Title)
	sb.WriteString("\n\n")
	sb.WriteString(e.Description)
	if e.Recommendation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Recommendation)
	}
	return sb.String()
}

// New returns an *Error wrapped with a stack trace.
func New(kind Kind, title, description, recommendation string) error {
	return errors.WithStack(&Error{
		Kind:           kind,
		Title:          title,
		Description:    description,
		Recommendation: recommendation,
	})
}

// Newf formats the description.
func Newf(kind Kind, title, recommendation, format string, args ...any) error {
	return New(kind, title, fmt.Sprintf(format, args...), recommendation)
}

// As extracts the structured error from a chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries a structured error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
