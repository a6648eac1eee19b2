package merge

import (
	"fmt"

	"keymerge/internal/curve"
)

// Policy selects one of the seven overlap-resolution rules. The set is
// closed: Merge dispatches over it with an exhaustive switch.
type Policy int

const (
	// PolicyAdd sums both curves across the overlap.
	PolicyAdd Policy = iota

	// PolicyMin keeps the smaller of the two non-zero values.
	PolicyMin

	// PolicyMax keeps the larger of the two values.
	PolicyMax

	// PolicyPrev keeps the committed curve, discarding the incoming one
	// whenever the two overlap.
	PolicyPrev

	// PolicyNext lets the incoming curve displace the committed tail.
	PolicyNext

	// PolicyRestValueCrossing crossfades both curves through the rest value.
	PolicyRestValueCrossing

	// PolicyPrune trims the committed head to smooth the transition.
	PolicyPrune
)

// Policies returns all policies in presentation order.
func Policies() []Policy {
	return []Policy{
		PolicyAdd, PolicyMin, PolicyMax, PolicyPrev, PolicyNext,
		PolicyRestValueCrossing, PolicyPrune,
	}
}

// ParsePolicy maps a policy name to its Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "add":
		return PolicyAdd, nil
	case "min":
		return PolicyMin, nil
	case "max":
		return PolicyMax, nil
	case "prev":
		return PolicyPrev, nil
	case "next":
		return PolicyNext, nil
	case "rvc":
		return PolicyRestValueCrossing, nil
	case "prune":
		return PolicyPrune, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// String returns the policy's name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyAdd:
		return "add"
	case PolicyMin:
		return "min"
	case PolicyMax:
		return "max"
	case PolicyPrev:
		return "prev"
	case PolicyNext:
		return "next"
	case PolicyRestValueCrossing:
		return "rvc"
	case PolicyPrune:
		return "prune"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Description returns the one-line summary shown by the policies command.
func (p Policy) Description() string {
	switch p {
	case PolicyAdd:
		return "Sum both curves across the overlapping region"
	case PolicyMin:
		return "Keep the smaller non-zero value across the overlapping region"
	case PolicyMax:
		return "Keep the larger value across the overlapping region"
	case PolicyPrev:
		return "Keep the committed curve, discarding the incoming one on overlap"
	case PolicyNext:
		return "Let the incoming curve displace the committed tail"
	case PolicyRestValueCrossing:
		return "Crossfade both curves through the rest value"
	case PolicyPrune:
		return "Trim the committed head to smooth the transition"
	}
	return "unknown"
}

// Merge runs the selected policy against the committed and incoming
// sequences and returns the merged curve. Inputs are never modified.
func Merge(p Policy, committed, incoming []curve.Sample) ([]curve.Sample, error) {
	switch p {
	case PolicyAdd:
		return Add(committed, incoming)
	case PolicyMin:
		return Min(committed, incoming)
	case PolicyMax:
		return Max(committed, incoming)
	case PolicyPrev:
		return Prev(committed, incoming)
	case PolicyNext:
		return Next(committed, incoming)
	case PolicyRestValueCrossing:
		return RestValueCrossing(committed, incoming)
	case PolicyPrune:
		return Prune(committed, incoming)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
}
