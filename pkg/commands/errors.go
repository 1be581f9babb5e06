package commands

import "errors"

// Validation failures are non-fatal: the handler returns one of these
// wrapped with context, the dispatcher reports handled=false and moves on.
var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidModeValue = errors.New("invalid mode value")
	ErrInvalidNumber    = errors.New("invalid number")
)
