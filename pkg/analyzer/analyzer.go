// Package analyzer is the boundary between the engine and a language
// backend. The engine only needs identifiers, hover info, diagnostics and
// completions; everything else is the backend's business.
package analyzer

import (
	"context"

	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/token"
)

// Identifier is a named reference inside a virtual file. Start is relative
// to the file content.
type Identifier struct {
	Start  int
	Length int
	Text   string
}

type Hover struct {
	Text string
	Docs string
}

// Diagnostic positions are relative to Filename's content.
type Diagnostic struct {
	Start    int
	Length   int
	Code     int
	Level    int
	Message  string
	Filename string
}

type CompletionEntry = token.CompletionEntry

// Analyzer answers questions about the files of one session.
// A nil *Hover or nil completion slice means "nothing at this offset".
type Analyzer interface {
	CreateFile(ctx context.Context, filename, content string) error
	Identifiers(ctx context.Context, filename string) ([]Identifier, error)
	HoverInfo(ctx context.Context, filename string, offset int) (*Hover, error)
	Diagnostics(ctx context.Context, filename string) ([]Diagnostic, error)
	Completions(ctx context.Context, filename string, offset int) ([]CompletionEntry, error)
}

// Emitter is implemented by analyzers that can produce output for a file.
type Emitter interface {
	Emit(ctx context.Context, filename string) (string, error)
}

// Environment holds whatever is expensive to build for an option set.
// Sessions must not share files.
type Environment interface {
	NewSession(ctx context.Context) (Analyzer, error)
}

type Factory interface {
	// Schema declares the compiler options directives may set.
	Schema() *options.Schema
	Defaults() options.Values
	// IgnoredCodes are diagnostic codes never reported as error tokens.
	IgnoredCodes() []int
	NewEnvironment(ctx context.Context, opts options.Values) (Environment, error)
}
