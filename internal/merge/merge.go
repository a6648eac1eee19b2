package merge

import (
	"cmp"
	"slices"

	"keymerge/internal/curve"
)

// restValue is the neutral baseline the rest-value-crossing policy fades
// through.
const restValue = 0.0

// sortByTime stable-sorts samples ascending by time. Stability keeps
// committed samples ahead of incoming ones on equal times.
func sortByTime(seq []curve.Sample) {
	slices.SortStableFunc(seq, func(a, b curve.Sample) int {
		return cmp.Compare(a.Time, b.Time)
	})
}

// interpolated returns, for each sample in seq, the other sequence's value
// interpolated at that sample's time. Boundary queries clamp to the other
// sequence's edge samples, so the result covers all of seq unless other is
// empty, in which case it is empty. Callers pair results with seq up to
// the shorter length.
func interpolated(seq, other []curve.Sample) []float64 {
	values := make([]float64, 0, len(seq))
	for _, s := range seq {
		lo, hi, ok := curve.Bracket(other, s.Time)
		if !ok {
			continue
		}
		values = append(values, curve.Interpolate(lo, hi, s.Time))
	}
	return values
}

// overlapStart returns the index in committed where the overlap suffix
// begins.
func overlapStart(committed, overlap []curve.Sample) int {
	return len(committed) - len(overlap)
}

// timeSet returns the set of times present in seq.
func timeSet(seq []curve.Sample) map[float64]struct{} {
	set := make(map[float64]struct{}, len(seq))
	for _, s := range seq {
		set[s.Time] = struct{}{}
	}
	return set
}
