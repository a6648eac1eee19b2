package merge

import (
	"math"
	"slices"

	"keymerge/internal/curve"
)

// Min keeps the smaller value wherever the two curves compete: every
// overlap sample and every incoming sample is compared against the other
// sequence's interpolated value at its time and replaced by the minimum,
// but only when both its own value and the interpolated one are non-zero.
// Zero-valued samples stay untouched so a curve at rest is not pulled
// around by the other one. Incoming samples whose time already appears in
// the overlap are dropped from the merged output.
func Min(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	return clampMerge(committed, incoming, math.Min, true)
}

// Max is the mirror of Min, keeping the larger value, and replaces
// unconditionally: there is no zero-guard.
func Max(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	return clampMerge(committed, incoming, math.Max, false)
}

// clampMerge is the shared Min/Max skeleton. pick chooses the surviving
// value; zeroGuard skips replacement when either operand is zero.
func clampMerge(committed, incoming []curve.Sample, pick func(a, b float64) float64, zeroGuard bool) ([]curve.Sample, error) {
	overlap, err := curve.Overlap(committed, incoming)
	if err != nil {
		return nil, err
	}

	merged := make([]curve.Sample, 0, len(committed)+len(incoming))
	merged = append(merged, committed...)

	base := overlapStart(committed, overlap)
	for i, v := range interpolated(overlap, incoming) {
		merged[base+i].Value = clamp(merged[base+i].Value, v, pick, zeroGuard)
	}

	in := slices.Clone(incoming)
	for i, v := range interpolated(in, overlap) {
		in[i].Value = clamp(in[i].Value, v, pick, zeroGuard)
	}

	seen := timeSet(overlap)
	for _, s := range in {
		if _, dup := seen[s.Time]; dup {
			continue
		}
		merged = append(merged, s)
	}

	sortByTime(merged)
	return merged, nil
}

func clamp(own, interp float64, pick func(a, b float64) float64, zeroGuard bool) float64 {
	if zeroGuard && (own == 0 || interp == 0) {
		return own
	}
	return pick(own, interp)
}
