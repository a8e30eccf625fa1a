package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boundaries(total, count int) []int {
	out := []int{}
	for i := 0; i < count; i++ {
		lo, hi := span(total, count, i)
		out = append(out, lo)
		if i == count-1 {
			out = append(out, hi)
		}
	}
	return out
}

func TestSpanRoundedCumulativeBoundaries(t *testing.T) {
	got := boundaries(10, 3)
	if diff := cmp.Diff([]int{0, 3, 7, 10}, got); diff != "" {
		t.Fatalf("boundaries for 10px over 3 slots (-want +got):\n%s", diff)
	}
}

func TestSpanCoversTotalWithoutDrift(t *testing.T) {
	for _, tc := range []struct{ total, count int }{
		{10, 3}, {100, 7}, {640, 42}, {13, 13}, {1, 1}, {999, 11},
	} {
		sum := 0
		prevHi := 0
		for i := 0; i < tc.count; i++ {
			lo, hi := span(tc.total, tc.count, i)
			if lo != prevHi {
				t.Fatalf("span(%d,%d,%d): lo=%d, want shared edge %d",
					tc.total, tc.count, i, lo, prevHi)
			}
			if hi <= lo {
				t.Fatalf("span(%d,%d,%d): empty slot [%d,%d)", tc.total, tc.count, i, lo, hi)
			}
			sum += hi - lo
			prevHi = hi
		}
		if sum != tc.total {
			t.Fatalf("spans for %d over %d sum to %d", tc.total, tc.count, sum)
		}
	}
}

func TestSpanNeverNarrowerThanOnePixel(t *testing.T) {
	// More slots than pixels: every slot still spans at least one pixel.
	for i := 0; i < 10; i++ {
		lo, hi := span(4, 10, i)
		if hi-lo < 1 {
			t.Fatalf("span(4,10,%d) = [%d,%d)", i, lo, hi)
		}
	}
}
