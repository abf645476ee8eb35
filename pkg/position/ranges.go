package position

import (
	"fmt"
	"sort"
)

// Range is a half-open interval [Start, End) of offsets into one text.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Intersects reports whether any range contains offset, both ends included.
// Marker boundaries land exactly on a token's end, so the end must count.
func Intersects(offset int, ranges ...Range) bool {
	for _, r := range ranges {
		if r.Start <= offset && offset <= r.End {
			return true
		}
	}
	return false
}

// Contains reports whether offset lies inside any half-open range.
func Contains(offset int, ranges ...Range) bool {
	for _, r := range ranges {
		if r.Start <= offset && offset < r.End {
			return true
		}
	}
	return false
}

// Merge sorts ranges by start and coalesces overlapping or touching ones.
// The input slice is left untouched.
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return []Range{}
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Range, 0, len(sorted))
	for _, r := range sorted {
		if n := len(merged); n > 0 && merged[n-1].End >= r.Start {
			if r.End > merged[n-1].End {
				merged[n-1].End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
