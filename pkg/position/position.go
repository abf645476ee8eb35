package position

import (
	"fmt"
	"strings"
)

// Place is a zero-based line and a zero-based byte column.
type Place struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Converter maps between linear offsets into a text and line/column places.
// It must not outlive changes to the text it was built from.
type Converter struct {
	lines []string
}

// NewConverter splits text into lines that keep their trailing newline.
// The last segment is always present, even when empty.
func NewConverter(text string) *Converter {
	lines := strings.SplitAfter(text, "\n")
	return &Converter{lines: lines}
}

// Lines returns the precomputed lines, each with its trailing newline.
func (c *Converter) Lines() []string {
	return c.lines
}

// IndexToPos walks the lines, consuming their lengths until offset falls
// inside one of them.
func (c *Converter) IndexToPos(offset int) Place {
	character := offset
	line := 0
	for i, text := range c.lines {
		if character < len(text) || i == len(c.lines)-1 {
			break
		}
		character -= len(text)
		line++
	}
	return Place{Line: line, Character: character}
}

// PosToIndex sums the lengths of every line before line and adds character.
func (c *Converter) PosToIndex(line, character int) int {
	index := 0
	for i := 0; i < line && i < len(c.lines); i++ {
		index += len(c.lines[i])
	}
	return index + character
}

// LineAbove retargets offset onto the same column of the previous line.
// Markers sit on the line directly below the code they point at.
func (c *Converter) LineAbove(offset int) int {
	pos := c.IndexToPos(offset)
	if pos.Line == 0 {
		return c.PosToIndex(0, pos.Character)
	}
	return c.PosToIndex(pos.Line-1, pos.Character)
}

// Span is a run of text starting at Offset.
type Span struct {
	Offset int
	Text   string
}

func NewSpan(text string, offset int) Span {
	return Span{Text: text, Offset: offset}
}

func (p Span) Length() int {
	return len(p.Text)
}

func (p Span) End() int {
	return p.Offset + p.Length()
}

func (p Span) Range() Range {
	return Range{Start: p.Offset, End: p.End()}
}

// Covers reports whether offset falls on one of the span's bytes.
func (p Span) Covers(offset int) bool {
	return Contains(offset, p.Range())
}
