package gridindex

import "errors"

// Sentinel errors returned by enumerator construction.
//
// Use [errors.Is] for comparisons:
//
//	_, err := gridindex.Parse([]int{3, 4}, "bogus")
//	if errors.Is(err, gridindex.ErrInvalidConfiguration) {
//	    // report to the operator; retrying will not help
//	}
var (
	// ErrInvalidConfiguration is returned when the extents vector is empty,
	// contains a non-positive or non-integer extent, or the restriction is
	// not one of the known modes.
	ErrInvalidConfiguration = errors.New("gridindex: invalid configuration")

	// ErrUnknownRestriction is returned (wrapped together with
	// ErrInvalidConfiguration) when a restriction token or value does not
	// name a known mode.
	ErrUnknownRestriction = errors.New("gridindex: unknown restriction")
)
