package merge

import (
	"slices"

	"keymerge/internal/curve"
)

// RestValueCrossing crossfades the two curves through the rest value:
// wherever an overlap sample and an incoming sample share an exact time,
// each is replaced by the midpoint between its own value and the rest
// value, fading the committed curve out and the incoming one in. Samples
// without an exact-time counterpart are unaffected. Incoming samples at
// overlap times are then dropped and the remainder is combined with the
// committed sequence by a single ascending two-pointer interleave rather
// than a full re-sort.
func RestValueCrossing(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	overlap, err := curve.Overlap(committed, incoming)
	if err != nil {
		return nil, err
	}

	overlapTimes := timeSet(overlap)
	incomingTimes := timeSet(incoming)

	a := slices.Clone(committed)
	for i := overlapStart(committed, overlap); i < len(a); i++ {
		if _, match := incomingTimes[a[i].Time]; match {
			a[i].Value = (a[i].Value + restValue) / 2
		}
	}

	b := make([]curve.Sample, 0, len(incoming))
	for _, s := range incoming {
		if _, match := overlapTimes[s.Time]; match {
			continue
		}
		b = append(b, s)
	}

	merged := make([]curve.Sample, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Time <= b[j].Time {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged, nil
}
