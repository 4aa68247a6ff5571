package sim

import "math"

// DistanceScore derives the integer score from cumulative scroll distance:
//
//	max(0, floor((scroll - firstPairX + spacing) / spacing))
//
// The score is a pure function of scroll distance, never incremented by
// events, so a frame-time excursion that skips several pairs in one tick
// still counts all of them. The per-pair Passed booleans exist for the
// variant that wants them but this formula is the source of truth.
func DistanceScore(scroll, firstPairX, spacing float64) int {
	s := int(math.Floor((scroll - firstPairX + spacing) / spacing))
	if s < 0 {
		return 0
	}
	return s
}
