package token

import (
	"sort"

	"github.com/walteh/gotwoslash/pkg/position"
)

// Classify retags hover tokens touched by a query target as queries and
// those touching either end of a highlight target as highlights. Queries win.
func Classify(tokens []Token, queries []int, highlights []position.Range) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = t
		if t.Kind != KindHover {
			continue
		}

		r := t.Range()
		if anyIntersects(queries, r) {
			out[i].Kind = KindQuery
			continue
		}
		for _, h := range highlights {
			if position.Intersects(h.Start, r) || position.Intersects(h.End, r) {
				out[i].Kind = KindHighlight
				break
			}
		}
	}
	return out
}

func anyIntersects(offsets []int, r position.Range) bool {
	for _, o := range offsets {
		if position.Intersects(o, r) {
			return true
		}
	}
	return false
}

// ApplyRemovals cuts the merged removals out of text, last range first, and
// moves every token with it. Tokens that overlap a removed range are dropped,
// except zero-length tags which stay anchored at the cut. The merged ranges
// are returned in the order they were applied.
func ApplyRemovals(text string, removals []position.Range, tokens []Token) (string, []Token, []position.Range) {
	merged := position.Merge(removals)
	for i, j := 0, len(merged)-1; i < j; i, j = i+1, j-1 {
		merged[i], merged[j] = merged[j], merged[i]
	}

	out := make([]Token, len(tokens))
	copy(out, tokens)

	for _, r := range merged {
		if r.Start < 0 {
			r.Start = 0
		}
		if r.End > len(text) {
			r.End = len(text)
		}
		if r.Start >= r.End {
			continue
		}
		text = text[:r.Start] + text[r.End:]
		out = shift(out, r)
	}

	return text, out, merged
}

func shift(tokens []Token, r position.Range) []Token {
	kept := tokens[:0:0]
	for _, t := range tokens {
		switch {
		case t.End() <= r.Start:
		case t.Start < r.End:
			if t.Kind != KindTag || t.Length != 0 {
				continue
			}
			t.Start = r.Start
		default:
			t.Start -= r.Len()
		}
		kept = append(kept, t)
	}
	return kept
}

// Resolve sorts tokens by offset and fills in their line and character
// against text. A nil converter builds one.
func Resolve(text string, pc *position.Converter, tokens []Token) Tokens {
	if pc == nil {
		pc = position.NewConverter(text)
	}

	out := make(Tokens, len(tokens))
	copy(out, tokens)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	for i := range out {
		place := pc.IndexToPos(out[i].Start)
		out[i].Line = place.Line
		out[i].Character = place.Character
	}
	return out
}
