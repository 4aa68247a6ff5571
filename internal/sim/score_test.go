package sim

import "testing"

func TestDistanceScore(t *testing.T) {
	const (
		firstPairX = 1080.0
		spacing    = 420.0
	)

	tests := []struct {
		name   string
		scroll float64
		want   int
	}{
		{"at rest", 0, 0},
		{"approaching first pair", firstPairX - spacing - 1, 0},
		{"one spacing before first pair", firstPairX - spacing, 0},
		{"at first pair", firstPairX, 1},
		{"between first and second", firstPairX + spacing/2, 1},
		{"ten pairs in", firstPairX + 9*spacing, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DistanceScore(tc.scroll, firstPairX, spacing); got != tc.want {
				t.Errorf("DistanceScore(%v) = %d, expected %d", tc.scroll, got, tc.want)
			}
		})
	}
}

func TestDistanceScoreNeverNegative(t *testing.T) {
	if got := DistanceScore(-5000, 1080, 420); got != 0 {
		t.Errorf("negative scroll should score 0, got %d", got)
	}
}

func TestDistanceScoreMonotonic(t *testing.T) {
	prev := 0
	for scroll := 0.0; scroll < 20000; scroll += 37.5 {
		s := DistanceScore(scroll, 1080, 420)
		if s < prev {
			t.Fatalf("score regressed from %d to %d at scroll %v", prev, s, scroll)
		}
		prev = s
	}
}
