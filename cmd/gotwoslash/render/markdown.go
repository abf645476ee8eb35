package render

import (
	"slices"
	"strings"
)

// Fence is a fenced code block whose info string carries the word
// "twoslash", as in "```go twoslash".
type Fence struct {
	Lang string
	Code string
	// Line is the zero-indexed line of the first code line.
	Line int
}

// Fences lists the twoslash code blocks of a markdown document. An
// unterminated block runs to the end of the document.
func Fences(doc string) []Fence {
	var out []Fence
	var current *Fence
	var marker string
	var body strings.Builder

	lines := strings.SplitAfter(doc, "\n")
	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")
		trimmed := strings.TrimLeft(line, " ")

		if current == nil {
			m := fenceMarker(trimmed)
			if m == "" {
				continue
			}
			info := strings.Fields(strings.TrimSpace(trimmed[len(m):]))
			if len(info) < 2 || !slices.Contains(info[1:], "twoslash") {
				marker = m
				current = &Fence{Line: -1}
				continue
			}
			marker = m
			current = &Fence{Lang: info[0], Line: i + 1}
			body.Reset()
			continue
		}

		if m := fenceMarker(trimmed); m != "" && m[0] == marker[0] && len(m) >= len(marker) && strings.TrimSpace(trimmed[len(m):]) == "" {
			if current.Line >= 0 {
				current.Code = body.String()
				out = append(out, *current)
			}
			current = nil
			continue
		}
		if current.Line >= 0 {
			body.WriteString(raw)
		}
	}

	if current != nil && current.Line >= 0 {
		current.Code = body.String()
		out = append(out, *current)
	}
	return out
}

func fenceMarker(line string) string {
	for _, c := range []byte{'`', '~'} {
		n := 0
		for n < len(line) && line[n] == c {
			n++
		}
		if n >= 3 {
			return line[:n]
		}
	}
	return ""
}
