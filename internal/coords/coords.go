// Package coords converts between coordinate text like "(0,0),(3,5)" and
// sample sequences.
package coords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"keymerge/internal/curve"
)

var (
	// ErrSyntax indicates coordinate text that does not parse as a list of
	// "(time,value)" pairs.
	ErrSyntax = errors.New("malformed coordinate list")

	// ErrUnordered indicates coordinate pairs whose times are not ascending.
	ErrUnordered = errors.New("coordinate times not ascending")
)

// Parse converts coordinate text like "(0,0), (3,5)" into a sample
// sequence. Whitespace around pairs and numbers is ignored; an empty or
// blank string yields an empty sequence. Times must be ascending.
func Parse(s string) ([]curve.Sample, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, nil
	}

	var samples []curve.Sample
	for len(rest) > 0 {
		if rest[0] != '(' {
			return nil, fmt.Errorf("%w: expected '(' at %q", ErrSyntax, rest)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: unclosed pair at %q", ErrSyntax, rest)
		}

		timeStr, valueStr, found := strings.Cut(rest[1:end], ",")
		if !found {
			return nil, fmt.Errorf("%w: pair %q needs a time and a value", ErrSyntax, rest[1:end])
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(timeStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad time %q", ErrSyntax, strings.TrimSpace(timeStr))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad value %q", ErrSyntax, strings.TrimSpace(valueStr))
		}
		samples = append(samples, curve.Sample{Time: t, Value: v})

		rest = strings.TrimSpace(rest[end+1:])
		if len(rest) > 0 {
			if rest[0] != ',' {
				return nil, fmt.Errorf("%w: expected ',' between pairs at %q", ErrSyntax, rest)
			}
			rest = strings.TrimSpace(rest[1:])
			if rest == "" {
				return nil, fmt.Errorf("%w: trailing ','", ErrSyntax)
			}
		}
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].Time < samples[i-1].Time {
			return nil, fmt.Errorf("%w: time %v follows %v", ErrUnordered, samples[i].Time, samples[i-1].Time)
		}
	}
	return samples, nil
}

// Format renders a sample sequence back into coordinate text, the inverse
// of Parse. Numbers use the shortest representation that round-trips.
func Format(samples []curve.Sample) string {
	var b strings.Builder
	for i, s := range samples {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		b.WriteString(strconv.FormatFloat(s.Time, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(s.Value, 'g', -1, 64))
		b.WriteByte(')')
	}
	return b.String()
}
