/*
Package directive tokenizes the comment lines a sample author embeds in code.

Every line yields at most one event. The grammars are disjoint: directives
start with "@", markers with "^" and cuts are fixed strings, and a query or
completion marker never reads as a highlight label.

	// @strict                  -> BooleanDirective
	// @goVersion: go1.22       -> ValuedDirective
	// @filename: lib/lib.go    -> FilenameDirective
	//    ^?                    -> QueryMarker
	//    ^|                    -> CompletionMarker
	//    ^^^^ label            -> HighlightMarker
	// ---cut---                -> CutBefore (also ---cut-before---)
	// ---cut-after---          -> CutAfter
	// ---cut-start---          -> CutStart
	// ---cut-end---            -> CutEnd
*/
package directive

import (
	"regexp"
	"strings"
)

type EventKind int

const (
	BooleanDirective EventKind = iota + 1
	ValuedDirective
	FilenameDirective
	QueryMarker
	CompletionMarker
	HighlightMarker
	CutBefore
	CutAfter
	CutStart
	CutEnd
)

func (k EventKind) String() string {
	switch k {
	case BooleanDirective:
		return "boolean directive"
	case ValuedDirective:
		return "valued directive"
	case FilenameDirective:
		return "filename directive"
	case QueryMarker:
		return "query marker"
	case CompletionMarker:
		return "completion marker"
	case HighlightMarker:
		return "highlight marker"
	case CutBefore:
		return "cut"
	case CutAfter:
		return "cut-after"
	case CutStart:
		return "cut-start"
	case CutEnd:
		return "cut-end"
	default:
		return "unknown"
	}
}

// IsMarker reports whether the event points at the line above it.
func (k EventKind) IsMarker() bool {
	return k == QueryMarker || k == CompletionMarker || k == HighlightMarker
}

// Event is one recognized line. Offsets are relative to the scanned text.
type Event struct {
	Kind EventKind
	// Line is the zero-based line number.
	Line int
	// Start is the offset of the first character of the line.
	Start int
	// End is the offset just past the line's newline, or the end of the text.
	End int

	// Name and Value are set for directives.
	Name  string
	Value string

	// Caret is the offset of the first '^' of a marker.
	Caret int
	// Width is the number of '^' of a highlight marker.
	Width int
	// Label is the optional text after a highlight marker's carets.
	Label string
}

var (
	reConfigBoolean     = regexp.MustCompile(`^//\s?@(\w+)$`)
	reConfigValue       = regexp.MustCompile(`^//\s?@(\w+):\s?(.+)$`)
	reMarkerHighlight   = regexp.MustCompile(`^\s*//\s*(\^+)( .+)?$`)
	reMarkerQuery       = regexp.MustCompile(`^\s*//\s*\^\?\s*$`)
	reMarkerCompletions = regexp.MustCompile(`^\s*//\s*\^\|\s*$`)
)

var cuts = map[string]EventKind{
	"// ---cut---":        CutBefore,
	"// ---cut-before---": CutBefore,
	"// ---cut-after---":  CutAfter,
	"// ---cut-start---":  CutStart,
	"// ---cut-end---":    CutEnd,
}

// Scan walks text line by line.
func Scan(text string) []Event {
	var events []Event

	offset := 0
	for i, raw := range strings.SplitAfter(text, "\n") {
		if raw == "" {
			break
		}
		start := offset
		offset += len(raw)

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		if !strings.Contains(line, "//") {
			continue
		}

		ev, ok := matchLine(line, start)
		if !ok {
			continue
		}
		ev.Line = i
		ev.Start = start
		ev.End = offset
		events = append(events, ev)
	}

	return events
}

func matchLine(line string, start int) (Event, bool) {
	if m := reConfigBoolean.FindStringSubmatch(line); m != nil {
		return Event{Kind: BooleanDirective, Name: m[1]}, true
	}

	if m := reConfigValue.FindStringSubmatch(line); m != nil {
		if m[1] == "filename" {
			return Event{Kind: FilenameDirective, Name: m[1], Value: strings.TrimSpace(m[2])}, true
		}
		return Event{Kind: ValuedDirective, Name: m[1], Value: m[2]}, true
	}

	caret := start + strings.IndexByte(line, '^')

	if reMarkerQuery.MatchString(line) {
		return Event{Kind: QueryMarker, Caret: caret}, true
	}

	if reMarkerCompletions.MatchString(line) {
		return Event{Kind: CompletionMarker, Caret: caret}, true
	}

	if m := reMarkerHighlight.FindStringSubmatch(line); m != nil {
		return Event{
			Kind:  HighlightMarker,
			Caret: caret,
			Width: len(m[1]),
			Label: strings.TrimSpace(m[2]),
		}, true
	}

	if kind, ok := cuts[strings.TrimSpace(line)]; ok {
		return Event{Kind: kind}, true
	}

	return Event{}, false
}
