package signature_test

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/signature"
)

// ExampleDiff contrasts two disjoint triangles with a hexagon: both are
// 2-regular on six vertices, but BFS depth tells them apart.
func ExampleDiff() {
	tri, _ := matrix.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	hex, _ := matrix.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	ra, _ := refine.Refine(tri)
	rb, _ := refine.Refine(hex)

	rep := signature.Diff(ra, rb)
	fmt.Println(signature.Compare(ra, rb))
	fmt.Println(rep.OnlyA[0].Count, rep.OnlyA[0].Signature)
	fmt.Println(rep.OnlyB[0].Count, rep.OnlyB[0].Signature)
	// Output:
	// false
	// 6 [[2] [2 2]]
	// 6 [[2] [2 2] [2 2] [2]]
}
