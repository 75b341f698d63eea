package gridindex_test

import (
	"fmt"

	"github.com/hasbyte1/go-gridindex/gridindex"
)

func ExampleNew() {
	enum, _ := gridindex.New([]int{2, 3}, gridindex.RestrictionNone)
	for idx := range enum.All() {
		fmt.Println(idx)
	}
	// Output:
	// [0 0]
	// [0 1]
	// [0 2]
	// [1 0]
	// [1 1]
	// [1 2]
}

func ExampleParse() {
	enum, _ := gridindex.Parse([]int{3, 4}, "Diagonal")
	fmt.Println(enum.Collect())
	// Output: [[0 0] [1 1] [2 2]]
}

func ExampleEnumerator_Iter() {
	enum, _ := gridindex.New([]int{3, 3}, gridindex.RestrictionLowerTriangular)
	it := enum.Iter()
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(idx)
	}
	// Output:
	// [0 1]
	// [0 2]
	// [1 2]
}

func ExampleEnumerator_Count() {
	enum, _ := gridindex.New([]int{2, 2, 2}, gridindex.RestrictionNone)
	fmt.Println(enum.Count(), enum.Size())
	// Output: 8 8
}
