package goanalyzer

import (
	"context"
	"go/types"

	"github.com/walteh/gotwoslash/pkg/analyzer"
	"github.com/walteh/gotwoslash/pkg/token"
)

// ParseErrorCode is reported for syntax errors, which carry no go/types code.
const ParseErrorCode = -1

func (s *Session) Diagnostics(ctx context.Context, filename string) ([]analyzer.Diagnostic, error) {
	f, p, err := s.lookup(ctx, filename)
	if err != nil || f == nil {
		return nil, err
	}

	var out []analyzer.Diagnostic
	for _, pe := range f.parseErrs {
		start := clamp(pe.Pos.Offset-f.header, len(f.content))
		out = append(out, analyzer.Diagnostic{
			Start:    start,
			Length:   wordLength(f.content, start),
			Code:     ParseErrorCode,
			Level:    token.LevelError,
			Message:  pe.Msg,
			Filename: filename,
		})
	}

	for _, te := range p.errs {
		if tf := s.fset.File(te.Pos); tf == nil || tf.Name() != filename {
			continue
		}
		out = append(out, s.typeDiagnostic(f, te))
	}
	return out, nil
}

func (s *Session) typeDiagnostic(f *sourceFile, te types.Error) analyzer.Diagnostic {
	code, start, end := errorDetails(te)
	if !start.IsValid() || s.fset.File(start) != f.tokens {
		start = te.Pos
	}

	off := clamp(f.offset(start), len(f.content))
	length := wordLength(f.content, off)
	if end.IsValid() && s.fset.File(end) == f.tokens && end > start {
		length = clamp(f.offset(end), len(f.content)) - off
	}

	level := token.LevelError
	if te.Soft {
		level = token.LevelWarning
	}

	return analyzer.Diagnostic{
		Start:    off,
		Length:   length,
		Code:     code,
		Level:    level,
		Message:  te.Msg,
		Filename: f.name,
	}
}

func clamp(off, limit int) int {
	if off < 0 {
		return 0
	}
	if off > limit {
		return limit
	}
	return off
}

// wordLength measures the identifier-like run at off, or one byte.
func wordLength(content string, off int) int {
	n := 0
	for i := off; i < len(content); i++ {
		c := content[i]
		if c != '_' && (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		n++
	}
	if n == 0 && off < len(content) {
		return 1
	}
	return n
}
