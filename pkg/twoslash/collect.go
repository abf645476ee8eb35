package twoslash

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/extract"
	"github.com/walteh/gotwoslash/pkg/token"
	"github.com/walteh/gotwoslash/pkg/twoslasherr"
	"github.com/walteh/gotwoslash/pkg/vfs"
	"gitlab.com/tozd/go/errors"
)

// collector turns analyzer answers for one virtual file into tokens with
// document offsets.
type collector struct {
	doc       string
	x         *extract.Extraction
	analyzer  analyzer.Analyzer
	ignored   []int
	shouldGet HoverPredicate
}

func (c *collector) hovers(ctx context.Context, f vfs.VirtualFile) ([]token.Token, error) {
	ids, err := c.analyzer.Identifiers(ctx, f.Filename)
	if err != nil {
		return nil, errors.Errorf("listing identifiers of %s: %w", f.Filename, err)
	}

	var out []token.Token
	for _, id := range ids {
		start := id.Start + f.Offset
		if c.x.InRemoval(start) {
			continue
		}
		if c.shouldGet != nil && !c.shouldGet(id.Text, start, f.Filename) {
			continue
		}

		h, err := c.analyzer.HoverInfo(ctx, f.Filename, id.Start)
		if err != nil {
			return nil, errors.Errorf("hover for %s in %s: %w", id.Text, f.Filename, err)
		}
		if h == nil || h.Text == "" {
			continue
		}
		out = append(out, token.NewHover(start, id.Length, token.Hover{
			Target: id.Text,
			Text:   h.Text,
			Docs:   h.Docs,
		}))
	}
	return out, nil
}

func (c *collector) completions(ctx context.Context, f vfs.VirtualFile) ([]token.Token, error) {
	var out []token.Token
	for _, target := range c.x.CompletionsFor(f.Filename) {
		if c.x.InRemoval(target.Offset) {
			continue
		}

		entries, err := c.analyzer.Completions(ctx, f.Filename, target.Offset-f.Offset-1)
		if err != nil {
			return nil, errors.Errorf("completions in %s: %w", f.Filename, err)
		}
		if len(entries) == 0 {
			if c.x.Handbook.NoErrorValidation {
				continue
			}
			return nil, twoslasherr.Newf(twoslasherr.InvalidCompletionQuery,
				"Invalid completion query",
				"This is likely that the positioning is off.",
				"The request on line %s in %s for completions via ^| returned no completions from the compiler.",
				c.x.Converter.IndexToPos(target.Offset), f.Filename)
		}

		prefix := completionPrefix(c.doc, target.Offset)
		filtered := make([]token.CompletionEntry, 0, len(entries))
		for _, e := range entries {
			if strings.HasPrefix(e.Name, prefix) {
				filtered = append(filtered, e)
			}
		}
		out = append(out, token.NewCompletion(target.Offset, token.Completion{
			Entries: filtered,
			Prefix:  prefix,
		}))
	}
	return out, nil
}

// completionPrefix is the run of non-space text ending at target, reduced to
// the part after its last dot.
func completionPrefix(doc string, target int) string {
	before := doc[:target]
	word := before[strings.LastIndexFunc(before, unicode.IsSpace)+1:]
	return word[strings.LastIndex(word, ".")+1:]
}

func (c *collector) diagnostics(ctx context.Context, f vfs.VirtualFile) ([]token.Token, error) {
	diags, err := c.analyzer.Diagnostics(ctx, f.Filename)
	if err != nil {
		return nil, errors.Errorf("diagnostics for %s: %w", f.Filename, err)
	}

	var out []token.Token
	for _, d := range diags {
		if d.Filename != f.Filename || slices.Contains(c.ignored, d.Code) {
			continue
		}
		out = append(out, token.NewError(d.Start+f.Offset, d.Length, token.Error{
			ID:       fmt.Sprintf("err-%d-%d-%d", d.Code, d.Start, d.Length),
			Code:     d.Code,
			Level:    d.Level,
			Text:     d.Message,
			Filename: f.Filename,
		}))
	}
	return out, nil
}
