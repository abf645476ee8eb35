package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/gotwoslash/pkg/position"
)

func TestIndexToPos(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   position.Place
	}{
		{
			name:   "empty text",
			text:   "",
			offset: 0,
			want:   position.Place{Line: 0, Character: 0},
		},
		{
			name:   "single line, middle position",
			text:   "Hello, World!",
			offset: 7,
			want:   position.Place{Line: 0, Character: 7},
		},
		{
			name:   "newline belongs to its line",
			text:   "a\nbc\n",
			offset: 1,
			want:   position.Place{Line: 0, Character: 1},
		},
		{
			name:   "second line start",
			text:   "a\nbc\n",
			offset: 2,
			want:   position.Place{Line: 1, Character: 0},
		},
		{
			name:   "end of text after trailing newline",
			text:   "a\nbc\n",
			offset: 5,
			want:   position.Place{Line: 2, Character: 0},
		},
		{
			name:   "end of text without trailing newline",
			text:   "a\nbc",
			offset: 4,
			want:   position.Place{Line: 1, Character: 2},
		},
		{
			name:   "multiple lines with varying lengths",
			text:   "Hello, World!\nThis is a test\nShort\nLonger line here zzz",
			offset: 16,
			want:   position.Place{Line: 1, Character: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := position.NewConverter(tt.text)
			got := pc.IndexToPos(tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.offset, pc.PosToIndex(got.Line, got.Character), "round trip")
		})
	}
}

func TestPosToIndex(t *testing.T) {
	pc := position.NewConverter("package main\n\nvar x = 1\n")

	assert.Equal(t, 0, pc.PosToIndex(0, 0))
	assert.Equal(t, 13, pc.PosToIndex(1, 0))
	assert.Equal(t, 18, pc.PosToIndex(2, 4))
	assert.Equal(t, 24, pc.PosToIndex(3, 0))
}

func TestLineAbove(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   int
	}{
		{
			name:   "query caret under identifier",
			text:   "const x = 1\n//    ^?\n",
			offset: 18,
			want:   6,
		},
		{
			name:   "caret at column zero",
			text:   "abc\n^\n",
			offset: 4,
			want:   0,
		},
		{
			name:   "first line stays on first line",
			text:   "abc\n",
			offset: 2,
			want:   2,
		},
		{
			name:   "third line",
			text:   "one\ntwo\n  ^^\n",
			offset: 10,
			want:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := position.NewConverter(tt.text)
			assert.Equal(t, tt.want, pc.LineAbove(tt.offset))
		})
	}
}

func TestSpan(t *testing.T) {
	word := position.NewSpan("hello", 10)

	assert.Equal(t, position.Range{Start: 10, End: 15}, word.Range())
	assert.True(t, word.Covers(10))
	assert.True(t, word.Covers(14))
	assert.False(t, word.Covers(15), "end is exclusive")
	assert.False(t, position.NewSpan("", 3).Covers(3))
}
