/*
Package token models the positioned annotations produced for a sample.

Tokens move through the pipeline as values; every stage returns a new slice:

	collect --> Classify --> ApplyRemovals --> Resolve
	 (offsets     (hover ->     (drop/shift     (line and
	  in doc)      query/hl)     offsets)        character)
*/
package token

import "github.com/walteh/gotwoslash/pkg/position"

// Kind tags the variant a Token carries.
type Kind string

const (
	KindHover      Kind = "hover"
	KindHighlight  Kind = "highlight"
	KindQuery      Kind = "query"
	KindCompletion Kind = "completion"
	KindError      Kind = "error"
	KindTag        Kind = "tag"
)

// Diagnostic severity levels.
const (
	LevelWarning    = 0
	LevelError      = 1
	LevelSuggestion = 2
	LevelMessage    = 3
)

// Hover is the payload of hover, highlight and query tokens.
type Hover struct {
	// Target is the identifier text the info was requested for.
	Target string `json:"target"`
	Text   string `json:"text"`
	Docs   string `json:"docs,omitempty"`
}

// CompletionEntry is one suggestion returned by the analyzer.
type CompletionEntry struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
	// Detail is a short description, usually the type.
	Detail string `json:"detail,omitempty"`
}

type Completion struct {
	Entries []CompletionEntry `json:"completions"`
	// Prefix holds the letters typed before the cursor.
	Prefix string `json:"completionsPrefix"`
}

type Error struct {
	ID       string `json:"id"`
	Code     int    `json:"code"`
	Level    int    `json:"level"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

type Tag struct {
	Name string `json:"name"`
	// Annotation is the text after "// @name: ".
	Annotation string `json:"annotation,omitempty"`
}

// Token is a tagged union; exactly one payload matches Kind.
// Start and Length are offsets into the document the token was last mapped
// to; Line and Character are only meaningful after Resolve.
type Token struct {
	Kind      Kind `json:"type"`
	Start     int  `json:"start"`
	Length    int  `json:"length"`
	Line      int  `json:"line"`
	Character int  `json:"character"`

	Hover      *Hover      `json:"hover,omitempty"`
	Completion *Completion `json:"completion,omitempty"`
	Error      *Error      `json:"error,omitempty"`
	Tag        *Tag        `json:"tag,omitempty"`
}

func (t Token) End() int {
	return t.Start + t.Length
}

func (t Token) Range() position.Range {
	return position.Range{Start: t.Start, End: t.End()}
}

// Place is the resolved position.
func (t Token) Place() position.Place {
	return position.Place{Line: t.Line, Character: t.Character}
}

func NewHover(start, length int, h Hover) Token {
	return Token{Kind: KindHover, Start: start, Length: length, Hover: &h}
}

func NewCompletion(start int, c Completion) Token {
	return Token{Kind: KindCompletion, Start: start, Completion: &c}
}

func NewError(start, length int, e Error) Token {
	return Token{Kind: KindError, Start: start, Length: length, Error: &e}
}

func NewTag(start int, t Tag) Token {
	return Token{Kind: KindTag, Start: start, Tag: &t}
}

// Tokens is a sorted, resolved token list with per-kind views.
type Tokens []Token

func (ts Tokens) filter(kind Kind) Tokens {
	out := Tokens{}
	for _, t := range ts {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

func (ts Tokens) Hovers() Tokens      { return ts.filter(KindHover) }
func (ts Tokens) Highlights() Tokens  { return ts.filter(KindHighlight) }
func (ts Tokens) Queries() Tokens     { return ts.filter(KindQuery) }
func (ts Tokens) Completions() Tokens { return ts.filter(KindCompletion) }
func (ts Tokens) Errors() Tokens      { return ts.filter(KindError) }
func (ts Tokens) Tags() Tokens        { return ts.filter(KindTag) }
