package gridindex

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Enumerator describes an N-dimensional grid and the subset of it to walk.
//
// An Enumerator is immutable once constructed and holds no resources, so a
// single value may be shared between goroutines. Each walk happens through
// its own [Iterator], obtained from [Enumerator.Iter] or implicitly by
// [Enumerator.All].
type Enumerator struct {
	extents     []int
	restriction Restriction
}

// New returns an Enumerator over the Cartesian product of [0, extents[i])
// for every axis i, filtered by r.
//
// It fails with [ErrInvalidConfiguration] when extents is empty, when any
// extent is not positive, or when r is not a known mode.
func New(extents []int, r Restriction) (*Enumerator, error) {
	if len(extents) == 0 {
		return nil, fmt.Errorf("%w: extents must not be empty", ErrInvalidConfiguration)
	}
	for i, n := range extents {
		if n <= 0 {
			return nil, fmt.Errorf("%w: extent %d of axis %d must be positive", ErrInvalidConfiguration, n, i)
		}
	}
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidConfiguration, ErrUnknownRestriction, int(r))
	}
	return &Enumerator{
		extents:     append([]int(nil), extents...),
		restriction: r,
	}, nil
}

// NewScalar returns a one-dimensional Enumerator over [0, extent).
func NewScalar(extent int, r Restriction) (*Enumerator, error) {
	return New([]int{extent}, r)
}

// Parse is like [New] but takes the restriction as a case-insensitive
// token (see [ParseRestriction]).
func Parse(extents []int, token string) (*Enumerator, error) {
	r, err := ParseRestriction(token)
	if err != nil {
		return nil, err
	}
	return New(extents, r)
}

// ParseExtents reads an extents vector written as "3,4", "3x4" or "3 4".
// Every field must be a positive integer.
func ParseExtents(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(c rune) bool {
		return c == ',' || c == 'x' || c == 'X' || c == ' ' || c == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: extents must not be empty", ErrInvalidConfiguration)
	}
	extents := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: extent %q is not an integer", ErrInvalidConfiguration, f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: extent %d of axis %d must be positive", ErrInvalidConfiguration, n, i)
		}
		extents[i] = n
	}
	return extents, nil
}

// Extents returns a copy of the per-axis extents.
func (e *Enumerator) Extents() []int { return append([]int(nil), e.extents...) }

// Restriction returns the restriction mode fixed at construction.
func (e *Enumerator) Restriction() Restriction { return e.restriction }

// Dims returns the number of axes.
func (e *Enumerator) Dims() int { return len(e.extents) }

// Size returns the number of tuples in the unrestricted grid, which bounds
// the length of every walk. It saturates at [math.MaxInt].
func (e *Enumerator) Size() int {
	size := 1
	for _, n := range e.extents {
		if size > math.MaxInt/n {
			return math.MaxInt
		}
		size *= n
	}
	return size
}

// Iter returns a fresh [Iterator] positioned before the all-zero tuple.
// Iterators never share state, so calling Iter again restarts the sequence
// regardless of what earlier iterators did.
func (e *Enumerator) Iter() *Iterator {
	return &Iterator{
		extents:     e.extents,
		restriction: e.restriction,
		index:       make([]int, len(e.extents)),
	}
}

// All returns the sequence of qualifying tuples for use with range:
//
//	for idx := range enum.All() {
//	    fmt.Println(idx)
//	}
//
// Each range statement walks a fresh [Iterator]. Yielded slices are owned
// by the caller.
func (e *Enumerator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		it := e.Iter()
		for {
			idx, ok := it.Next()
			if !ok || !yield(idx) {
				return
			}
		}
	}
}

// Collect walks a fresh iterator and returns every qualifying tuple.
func (e *Enumerator) Collect() [][]int {
	var out [][]int
	for idx := range e.All() {
		out = append(out, idx)
	}
	return out
}

// Count walks a fresh iterator and returns the number of qualifying tuples.
func (e *Enumerator) Count() int {
	it := e.Iter()
	n := 0
	for it.advance() {
		n++
	}
	return n
}

// String describes the grid, e.g. "3x4 (diagonal)".
func (e *Enumerator) String() string {
	parts := make([]string, len(e.extents))
	for i, n := range e.extents {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("%s (%s)", strings.Join(parts, "x"), e.restriction)
}
