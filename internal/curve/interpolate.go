package curve

// Interpolate evaluates, at time t, the line through s1 and s2. When both
// samples share the same time the slope is taken to be zero, so the result
// is s1.Value regardless of t.
func Interpolate(s1, s2 Sample, t float64) float64 {
	var slope float64
	if s1.Time != s2.Time {
		slope = (s2.Value - s1.Value) / (s2.Time - s1.Time)
	}
	return s1.Value + slope*(t-s1.Time)
}

// Bracket returns the adjacent pair of samples surrounding time t in an
// ascending sequence. Queries before the first sample or after the last
// clamp to a degenerate pair made of that boundary sample, so any time is
// bracketable as long as the sequence is non-empty. ok is false only for
// an empty sequence. With duplicate times the first matching adjacent pair
// in sequence order wins.
func Bracket(seq []Sample, t float64) (lo, hi Sample, ok bool) {
	if len(seq) == 0 {
		return Sample{}, Sample{}, false
	}
	if t < seq[0].Time {
		return seq[0], seq[0], true
	}
	if last := seq[len(seq)-1]; t > last.Time {
		return last, last, true
	}
	for i := 0; i < len(seq)-1; i++ {
		if seq[i].Time <= t && t <= seq[i+1].Time {
			return seq[i], seq[i+1], true
		}
	}
	// Single-sample sequence with t landing exactly on it.
	return seq[0], seq[0], true
}
