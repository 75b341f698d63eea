package gridindex

// Iterator walks the grid of an [Enumerator] in odometer order: the last
// axis varies fastest and overflow carries into the axis before it.
//
// The all-zero tuple is the first candidate. When the odometer wraps back
// to all-zero the grid is exhausted and every later call to [Iterator.Next]
// reports false.
//
// An Iterator is not safe for concurrent use. Goroutines that need to walk
// the same grid should each call [Enumerator.Iter].
type Iterator struct {
	extents     []int
	restriction Restriction
	index       []int
	iteration   int
	done        bool
}

// Next returns the next qualifying tuple and true, or nil and false once
// the grid is exhausted. The returned slice is a copy; later calls never
// modify it.
func (it *Iterator) Next() ([]int, bool) {
	if !it.advance() {
		return nil, false
	}
	return append([]int(nil), it.index...), true
}

// Reset rewinds the iterator to its initial state.
func (it *Iterator) Reset() {
	clear(it.index)
	it.iteration = 0
	it.done = false
}

// Done reports whether the iterator has been exhausted.
func (it *Iterator) Done() bool { return it.done }

// advance moves to the next qualifying position and reports whether one
// was found. Exhaustion is checked before the restriction so a skip run can
// never walk past the wrap-around.
func (it *Iterator) advance() bool {
	for !it.done {
		if it.iteration > 0 {
			it.increment()
			if it.atOrigin() {
				it.done = true
				return false
			}
		}
		it.iteration++
		if !it.restriction.skip(it.index) {
			return true
		}
	}
	return false
}

func (it *Iterator) increment() {
	for ix := len(it.index) - 1; ix >= 0; ix-- {
		if it.index[ix] == it.extents[ix]-1 {
			it.index[ix] = 0
			continue
		}
		it.index[ix]++
		return
	}
}

func (it *Iterator) atOrigin() bool {
	for _, v := range it.index {
		if v != 0 {
			return false
		}
	}
	return true
}
