package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotwoslash/pkg/position"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		ranges []position.Range
		want   []position.Range
	}{
		{
			name:   "empty",
			ranges: nil,
			want:   []position.Range{},
		},
		{
			name:   "single range is unchanged",
			ranges: []position.Range{{Start: 3, End: 9}},
			want:   []position.Range{{Start: 3, End: 9}},
		},
		{
			name:   "touching ranges coalesce",
			ranges: []position.Range{{Start: 0, End: 5}, {Start: 5, End: 8}},
			want:   []position.Range{{Start: 0, End: 8}},
		},
		{
			name:   "unsorted and nested",
			ranges: []position.Range{{Start: 20, End: 30}, {Start: 0, End: 10}, {Start: 2, End: 4}, {Start: 9, End: 12}},
			want:   []position.Range{{Start: 0, End: 12}, {Start: 20, End: 30}},
		},
		{
			name:   "disjoint stay apart",
			ranges: []position.Range{{Start: 6, End: 7}, {Start: 0, End: 5}},
			want:   []position.Range{{Start: 0, End: 5}, {Start: 6, End: 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := position.Merge(tt.ranges)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, position.Merge(got), "merge must be idempotent")
		})
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	in := []position.Range{{Start: 10, End: 12}, {Start: 0, End: 11}}
	_ = position.Merge(in)
	require.Equal(t, []position.Range{{Start: 10, End: 12}, {Start: 0, End: 11}}, in)
}

func TestIntersectsAndContains(t *testing.T) {
	ranges := []position.Range{{Start: 4, End: 8}}

	assert.True(t, position.Intersects(8, ranges...), "end is inclusive")
	assert.False(t, position.Contains(8, ranges...), "end is exclusive")
	assert.True(t, position.Contains(4, ranges...))
	assert.False(t, position.Intersects(3, ranges...))
	assert.False(t, position.Intersects(0))
}
