package gridindex

import (
	"fmt"
	"strings"
)

// Restriction selects the structural subset of the grid an [Enumerator]
// emits.
type Restriction int

const (
	// RestrictionNone emits every tuple of the Cartesian product.
	RestrictionNone Restriction = iota

	// RestrictionLowerTriangular skips every tuple whose components are
	// non-increasing from the first to the last axis and emits the rest.
	//
	// The polarity looks inverted relative to the name. It is the
	// behaviour existing job scripts depend on, so it is kept as is.
	RestrictionLowerTriangular

	// RestrictionDiagonal emits only tuples whose components are all equal.
	RestrictionDiagonal
)

var restrictionTokens = map[string]Restriction{
	"":                 RestrictionNone,
	"none":             RestrictionNone,
	"lowertr":          RestrictionLowerTriangular,
	"lowertriangular":  RestrictionLowerTriangular,
	"lower-triangular": RestrictionLowerTriangular,
	"lower_triangular": RestrictionLowerTriangular,
	"diagonal":         RestrictionDiagonal,
	"diag":             RestrictionDiagonal,
	"diagnol":          RestrictionDiagonal, // legacy spelling
}

// ParseRestriction converts a case-insensitive token into a [Restriction].
// An empty token means [RestrictionNone].
//
//	r, err := gridindex.ParseRestriction("LowerTr") // RestrictionLowerTriangular
func ParseRestriction(token string) (Restriction, error) {
	r, ok := restrictionTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return RestrictionNone, fmt.Errorf("%w: %w: %q", ErrInvalidConfiguration, ErrUnknownRestriction, token)
	}
	return r, nil
}

// Valid reports whether r is one of the declared modes.
func (r Restriction) Valid() bool {
	return r >= RestrictionNone && r <= RestrictionDiagonal
}

// String returns the canonical token for r.
func (r Restriction) String() string {
	switch r {
	case RestrictionNone:
		return "none"
	case RestrictionLowerTriangular:
		return "lowertr"
	case RestrictionDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Restriction(%d)", int(r))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (r Restriction) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRestriction, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] so restrictions can
// be decoded straight from YAML, JSON, or viper configuration.
func (r *Restriction) UnmarshalText(text []byte) error {
	parsed, err := ParseRestriction(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// skip reports whether the tuple at index must not be emitted under r.
func (r Restriction) skip(index []int) bool {
	switch r {
	case RestrictionNone:
		return false
	case RestrictionLowerTriangular:
		for i := 0; i < len(index)-1; i++ {
			if index[i] < index[i+1] {
				return false
			}
		}
		return true
	case RestrictionDiagonal:
		for i := 0; i < len(index)-1; i++ {
			if index[i] != index[i+1] {
				return true
			}
		}
		return false
	default:
		// Construction rejects unknown modes.
		panic(fmt.Errorf("%w: %d", ErrUnknownRestriction, int(r)))
	}
}
