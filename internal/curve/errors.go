package curve

import "errors"

var (
	// ErrTemporalOrder indicates the committed sequence starts after the
	// incoming sequence, which would mean the curve runs backward in time.
	ErrTemporalOrder = errors.New("temporal ordering violation")
)
