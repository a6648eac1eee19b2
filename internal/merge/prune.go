package merge

import "keymerge/internal/curve"

// DefaultPruneTrim is how many samples Prune removes from the end of the
// committed head to smooth the transition into the incoming curve.
const DefaultPruneTrim = 2

// Prune thins the committed curve where the incoming one takes over: the
// committed samples at or before the last overlap time form the head, up
// to DefaultPruneTrim samples are dropped from its end, and the untouched
// remainder of the committed curve plus all of the incoming curve are
// concatenated and sorted. Without overlap nothing is trimmed.
func Prune(committed, incoming []curve.Sample) ([]curve.Sample, error) {
	return PruneN(committed, incoming, DefaultPruneTrim)
}

// PruneN is Prune with a caller-chosen trim count. Each removal only
// happens while it leaves at least one sample in the head.
func PruneN(committed, incoming []curve.Sample, trim int) ([]curve.Sample, error) {
	overlap, err := curve.Overlap(committed, incoming)
	if err != nil {
		return nil, err
	}

	head := committed
	var tail []curve.Sample
	if len(overlap) > 0 {
		maxTime := overlap[len(overlap)-1].Time
		cut := len(committed)
		for cut > 0 && committed[cut-1].Time > maxTime {
			cut--
		}
		head, tail = committed[:cut], committed[cut:]
		for n := 0; n < trim && len(head) > 1; n++ {
			head = head[:len(head)-1]
		}
	}

	merged := make([]curve.Sample, 0, len(head)+len(tail)+len(incoming))
	merged = append(merged, head...)
	merged = append(merged, tail...)
	merged = append(merged, incoming...)
	sortByTime(merged)
	return merged, nil
}
