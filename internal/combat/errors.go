package combat

import "errors"

var (
	// ErrInvalidArgument is returned for negative damage or non-positive health values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoTargetAvailable is returned by launchers that need a target and found none.
	ErrNoTargetAvailable = errors.New("no target available")
)
