package merge

import (
	"slices"

	"keymerge/internal/curve"
)

// Add merges by summation: every overlap sample gains the incoming curve's
// interpolated value at its time, every incoming sample gains the overlap
// region's interpolated value at its time, and the two sequences are
// concatenated and sorted. Outside the overlap this degrades to a plain
// sorted merge.
func Add(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	overlap, err := curve.Overlap(committed, incoming)
	if err != nil {
		return nil, err
	}

	merged := make([]curve.Sample, 0, len(committed)+len(incoming))
	merged = append(merged, committed...)

	base := overlapStart(committed, overlap)
	for i, v := range interpolated(overlap, incoming) {
		merged[base+i].Value += v
	}

	in := slices.Clone(incoming)
	for i, v := range interpolated(in, overlap) {
		in[i].Value += v
	}
	merged = append(merged, in...)

	sortByTime(merged)
	return merged, nil
}
