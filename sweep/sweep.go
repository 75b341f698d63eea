package sweep

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-gridindex/gridindex"
)

// Parameter is one axis of a sweep: a name and the values it takes.
type Parameter struct {
	Name   string   `yaml:"name" json:"name"`
	Values []string `yaml:"values" json:"values"`
}

// Sweep is a named set of parameters whose Cartesian product, filtered by
// Restriction, yields the combinations to run. Parameter order fixes axis
// order, so the last parameter varies fastest.
type Sweep struct {
	Name        string                `yaml:"name" json:"name"`
	Parameters  []Parameter           `yaml:"parameters" json:"parameters"`
	Restriction gridindex.Restriction `yaml:"restriction" json:"restriction"`
}

// Validate checks that the sweep describes a non-empty grid.
func (s *Sweep) Validate() error {
	if len(s.Parameters) == 0 {
		return fmt.Errorf("%w: no parameters", ErrInvalidSweep)
	}
	seen := make(map[string]struct{}, len(s.Parameters))
	for i, p := range s.Parameters {
		if p.Name == "" {
			return fmt.Errorf("%w: parameter %d has no name", ErrInvalidSweep, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSweep, p.Name)
		}
		seen[p.Name] = struct{}{}
		if len(p.Values) == 0 {
			return fmt.Errorf("%w: parameter %q has no values", ErrInvalidSweep, p.Name)
		}
	}
	return nil
}

// Extents returns the number of values of each parameter, in order.
func (s *Sweep) Extents() []int {
	extents := make([]int, len(s.Parameters))
	for i, p := range s.Parameters {
		extents[i] = len(p.Values)
	}
	return extents
}

// Enumerator validates the sweep and returns the grid enumerator behind it.
func (s *Sweep) Enumerator() (*gridindex.Enumerator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return gridindex.New(s.Extents(), s.Restriction)
}

// Combinations returns the sweep's combinations in odometer order. The
// sequence is lazy and restartable: every range walks the grid afresh and
// numbers combinations from zero.
func (s *Sweep) Combinations() (iter.Seq[Combination], error) {
	enum, err := s.Enumerator()
	if err != nil {
		return nil, err
	}
	params := append([]Parameter(nil), s.Parameters...)
	return func(yield func(Combination) bool) {
		seq := 0
		for idx := range enum.All() {
			if !yield(newCombination(seq, idx, params)) {
				return
			}
			seq++
		}
	}, nil
}
