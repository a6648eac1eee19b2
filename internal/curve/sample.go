package curve

// Sample is one (time, value) point on a piecewise-linear curve.
type Sample struct {
	// Time is the sample's position on the curve's time axis.
	Time float64

	// Value is the scalar value of the curve at Time.
	Value float64
}

// FromPairs builds a sample sequence from (time, value) pairs. The pairs
// must already be ordered ascending by time; FromPairs does not sort.
func FromPairs(pairs ...[2]float64) []Sample {
	samples := make([]Sample, 0, len(pairs))
	for _, p := range pairs {
		samples = append(samples, Sample{Time: p[0], Value: p[1]})
	}
	return samples
}
