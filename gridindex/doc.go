// Package gridindex enumerates the coordinate tuples of an N-dimensional
// grid in odometer order, optionally restricted to a structural subset.
//
// # Overview
//
// An [Enumerator] is built from one extent per axis and a [Restriction]:
//
//	enum, err := gridindex.New([]int{3, 4}, gridindex.RestrictionNone)
//	if err != nil {
//	    return err
//	}
//	for idx := range enum.All() {
//	    fmt.Println(idx) // [0 0] [0 1] ... [2 3]
//	}
//
// The last axis varies fastest. Every walk starts at the all-zero tuple and
// ends when the odometer wraps back to it, so a walk never yields more than
// [Enumerator.Size] tuples and never yields the same tuple twice.
//
// # Restrictions
//
//   - [RestrictionNone] yields the whole Cartesian product.
//   - [RestrictionDiagonal] yields tuples whose components are all equal.
//     Axes of unequal length simply produce fewer tuples.
//   - [RestrictionLowerTriangular] skips tuples whose components are
//     non-increasing along the axes and yields the others.
//
// Restrictions may be given as case-insensitive tokens through
// [ParseRestriction] or [Parse]; unknown tokens fail at construction with
// [ErrInvalidConfiguration].
//
// # Iteration
//
// [Enumerator.Iter] hands out independent [Iterator] values, each with its
// own index vector. The enumerator itself is immutable, so restarting is
// just asking for a new iterator, and concurrent walks need one iterator
// per goroutine. Tuples are produced lazily, one per call, and are always
// returned as fresh slices.
package gridindex
