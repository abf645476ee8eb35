// Package extract turns the directives and markers of a sample into option
// settings, removal ranges and the targets later stages classify against.
package extract

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/directive"
	"github.com/walteh/gotwoslash/pkg/options"
	"github.com/walteh/gotwoslash/pkg/position"
	"github.com/walteh/gotwoslash/pkg/token"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"github.com/walteh/gotwoslash/pkg/vfs"
)

// Target is a document offset a query or completion marker points at.
type Target struct {
	Offset   int
	Filename string
}

// Highlight is the range under a "// ^^^" marker.
type Highlight struct {
	Range    position.Range
	Label    string
	Filename string
}

type Config struct {
	Schema     *options.Schema
	Compiler   options.Values
	Handbook   options.Handbook
	CustomTags []string
	// DefaultFilename names the content before the first @filename line.
	DefaultFilename string
	Root            string
}

type Extraction struct {
	Files       []vfs.VirtualFile
	Removals    []position.Range
	Queries     []Target
	Completions []Target
	Highlights  []Highlight
	Tags        []token.Token
	Compiler    options.Values
	Handbook    options.Handbook
	// Converter is built over the original document.
	Converter *position.Converter
}

// InRemoval reports whether offset is inside a registered removal.
func (x *Extraction) InRemoval(offset int) bool {
	return position.Contains(offset, x.Removals...)
}

// CompletionsFor returns the completion targets placed inside filename.
func (x *Extraction) CompletionsFor(filename string) []Target {
	var out []Target
	for _, c := range x.Completions {
		if c.Filename == filename {
			out = append(out, c)
		}
	}
	return out
}

func (x *Extraction) QueryOffsets() []int {
	out := make([]int, len(x.Queries))
	for i, q := range x.Queries {
		out[i] = q.Offset
	}
	return out
}

func (x *Extraction) HighlightRanges() []position.Range {
	out := make([]position.Range, len(x.Highlights))
	for i, h := range x.Highlights {
		out[i] = h.Range
	}
	return out
}

// Extract scans doc once. Option directives are applied in document order;
// unknown names only fail after the whole sweep so that a later
// "// @noErrorValidation" still applies.
func Extract(ctx context.Context, doc string, cfg Config) (*Extraction, error) {
	logger := zerolog.Ctx(ctx)

	events := directive.Scan(doc)

	resolver := options.NewResolver(cfg.Schema, cfg.Compiler, cfg.Handbook)
	x := &Extraction{
		Files:     vfs.Split(doc, events, cfg.DefaultFilename, cfg.Root),
		Converter: position.NewConverter(doc),
	}

	var unknown []string
	var cutBefore, cutAfter bool
	cutStart := -1

	// tagLines holds the directive line start of each entry in x.Tags.
	var tagLines []int
	var hidden []position.Range

	remove := func(ev directive.Event) {
		x.Removals = append(x.Removals, position.Range{Start: ev.Start, End: ev.End})
	}
	cut := func(r position.Range) {
		x.Removals = append(x.Removals, r)
		hidden = append(hidden, r)
	}

	for _, ev := range events {
		switch ev.Kind {
		case directive.BooleanDirective:
			known, err := resolver.Apply(ctx, ev.Name, "")
			if err != nil {
				return nil, err
			}
			if !known {
				unknown = append(unknown, ev.Name)
			}
			remove(ev)

		case directive.ValuedDirective:
			if slices.Contains(cfg.CustomTags, ev.Name) {
				x.Tags = append(x.Tags, token.NewTag(ev.End, token.Tag{
					Name:       ev.Name,
					Annotation: strings.TrimSpace(ev.Value),
				}))
				tagLines = append(tagLines, ev.Start)
			} else {
				known, err := resolver.Apply(ctx, ev.Name, ev.Value)
				if err != nil {
					return nil, err
				}
				if !known {
					unknown = append(unknown, ev.Name)
				}
			}
			remove(ev)

		case directive.FilenameDirective:
			remove(ev)

		case directive.QueryMarker, directive.CompletionMarker, directive.HighlightMarker:
			file, _ := vfs.FileAt(x.Files, ev.Start)
			target := x.Converter.LineAbove(ev.Caret)
			switch ev.Kind {
			case directive.QueryMarker:
				x.Queries = append(x.Queries, Target{Offset: target, Filename: file.Filename})
			case directive.CompletionMarker:
				x.Completions = append(x.Completions, Target{Offset: target, Filename: file.Filename})
			default:
				x.Highlights = append(x.Highlights, Highlight{
					Range:    position.Range{Start: target, End: target + ev.Width},
					Label:    ev.Label,
					Filename: file.Filename,
				})
			}
			remove(ev)

		case directive.CutBefore:
			if !cutBefore {
				cutBefore = true
				cut(position.Range{Start: 0, End: ev.End})
			}

		case directive.CutAfter:
			if !cutAfter {
				cutAfter = true
				cut(position.Range{Start: ev.Start, End: len(doc)})
			}

		case directive.CutStart:
			if cutStart < 0 {
				cutStart = ev.Start
			}

		case directive.CutEnd:
			if cutStart >= 0 {
				cut(position.Range{Start: cutStart, End: ev.End})
				cutStart = -1
			} else {
				remove(ev)
			}
		}
	}

	if cutStart >= 0 {
		cut(position.Range{Start: cutStart, End: len(doc)})
	}
	x.Tags = visibleTags(x.Tags, tagLines, hidden)

	x.Compiler = resolver.Compiler
	x.Handbook = resolver.Handbook

	if len(unknown) > 0 {
		if !x.Handbook.NoErrorValidation {
			return nil, twoslasherr.Newf(twoslasherr.UnknownDirective,
				"Invalid inline compiler flag",
				"This is likely a typo, check the compiler option reference or the handbook flags: "+handbookNames(),
				"There isn't a compiler flag called '@%s'.", unknown[0])
		}
		logger.Debug().Strs("directives", unknown).Msg("ignoring unknown directives")
	}

	logger.Debug().
		Int("files", len(x.Files)).
		Int("removals", len(x.Removals)).
		Int("queries", len(x.Queries)).
		Int("completions", len(x.Completions)).
		Int("highlights", len(x.Highlights)).
		Msg("extracted directives")

	return x, nil
}

// visibleTags drops tags written inside cut code. Tags that only land in a
// neighbouring directive's removal are kept; ApplyRemovals anchors them.
func visibleTags(tags []token.Token, lines []int, hidden []position.Range) []token.Token {
	if len(hidden) == 0 {
		return tags
	}
	var out []token.Token
	for i, t := range tags {
		if !position.Contains(lines[i], hidden...) {
			out = append(out, t)
		}
	}
	return out
}

func handbookNames() string {
	names := make([]string, 0, len(options.HandbookSchema.Declarations()))
	for _, d := range options.HandbookSchema.Declarations() {
		names = append(names, d.Name)
	}
	return strings.Join(names, ", ")
}
