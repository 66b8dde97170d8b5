package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/isomorph/bfs"
	"github.com/katalvlaran/isomorph/matrix"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid (vertex id = 3*row + col).
func ExampleBFS() {
	edges := make([][2]int, 0, 12)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := 3*r + c
			if c+1 < 3 {
				edges = append(edges, [2]int{v, v + 1})
			}
			if r+1 < 3 {
				edges = append(edges, [2]int{v, v + 3})
			}
		}
	}
	m, _ := matrix.FromEdges(9, edges)

	res, err := bfs.BFS(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Levels)
	// Output:
	// [[0] [1 3] [2 4 6] [5 7] [8]]
}

// ExampleWalker prints the sorted-degree view of each level of a star.
func ExampleWalker() {
	m, _ := matrix.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	w, _ := bfs.NewWalker(m, 1)
	for ok := true; ok; ok = w.Step() {
		fmt.Println(w.Depth(), w.Fringe())
	}
	// Output:
	// 0 [1]
	// 1 [0]
	// 2 [2 3]
}
