package merge

import "errors"

var (
	// ErrUnknownPolicy indicates a policy name or value outside the seven
	// supported policies.
	ErrUnknownPolicy = errors.New("unknown merge policy")
)
