package merge

import (
	"slices"

	"keymerge/internal/curve"
)

// Prev resolves overlap in favor of the committed curve: when any overlap
// exists the incoming curve is discarded entirely and the committed one is
// returned as-is. Without overlap the incoming curve is appended.
func Prev(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	overlap, err := curve.Overlap(committed, incoming)
	if err != nil {
		return nil, err
	}

	merged := slices.Clone(committed)
	if len(overlap) == 0 {
		merged = append(merged, incoming...)
	}
	sortByTime(merged)
	return merged, nil
}

// Next resolves overlap in favor of the incoming curve: the committed
// curve's trailing samples past the first overlap time are dropped and all
// of the incoming curve is appended. A committed sample sitting exactly on
// the first overlap time survives, ahead of any incoming sample at the
// same time.
func Next(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	overlap, err := curve.Overlap(committed, incoming)
	if err != nil {
		return nil, err
	}

	keep := committed
	if len(overlap) > 0 {
		cut := overlap[0].Time
		i := len(committed)
		for i > 0 && committed[i-1].Time > cut {
			i--
		}
		keep = committed[:i]
	}

	merged := make([]curve.Sample, 0, len(keep)+len(incoming))
	merged = append(merged, keep...)
	merged = append(merged, incoming...)
	sortByTime(merged)
	return merged, nil
}
