package sweep

import "errors"

// Sentinel errors returned by sweep operations.
var (
	// ErrInvalidSweep is returned when a sweep definition cannot be turned
	// into a grid: no parameters, an empty or duplicate name, or a
	// parameter without values.
	ErrInvalidSweep = errors.New("sweep: invalid sweep definition")

	// ErrHandlerFailed wraps an error returned by a [Handler]. The message
	// carries the ID of the combination that failed.
	ErrHandlerFailed = errors.New("sweep: handler failed")
)
