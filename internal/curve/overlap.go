package curve

import "fmt"

// Overlap returns the trailing samples of committed that fall inside the
// incoming sequence's time span: the suffix whose times are at or after
// incoming's first time. Either sequence being empty yields an empty
// overlap. Both inputs must be sorted ascending by time.
//
// The committed sequence must start no later than the incoming one;
// otherwise Overlap fails with ErrTemporalOrder before anything is built.
func Overlap(committed, incoming []Sample) ([]Sample, error) {
	if len(committed) == 0 || len(incoming) == 0 {
		return nil, nil
	}
	if committed[0].Time > incoming[0].Time {
		return nil, fmt.Errorf("%w: committed curve starts at %v, after incoming start %v",
			ErrTemporalOrder, committed[0].Time, incoming[0].Time)
	}

	start := incoming[0].Time
	i := len(committed)
	for i > 0 && committed[i-1].Time >= start {
		i--
	}
	if i == len(committed) {
		return nil, nil
	}

	overlap := make([]Sample, len(committed)-i)
	copy(overlap, committed[i:])
	return overlap, nil
}
