// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// variants_platonic.go - shell layouts of the five Platonic solids.
//
// Every solid is vertex-transitive, so refinement leaves a single class;
// these shells exercise the individualization path of the mapping.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	if s, ok := platonicShells[p]; ok {
		return s.label
	}

	return "Unknown"
}

// shell is a solid's vertex count and edge generator.
type shell struct {
	label string
	n     int
	edges func() [][2]int
}

var platonicShells = map[PlatonicName]shell{
	Tetrahedron:  {"Tetrahedron", 4, tetrahedronEdges},
	Cube:         {"Cube", 8, cubeEdges},
	Octahedron:   {"Octahedron", 6, octahedronEdges},
	Dodecahedron: {"Dodecahedron", 20, dodecahedronEdges},
	Icosahedron:  {"Icosahedron", 12, icosahedronEdges},
}

// ring appends the cycle ids[0]-ids[1]-...-ids[0].
func ring(out [][2]int, ids ...int) [][2]int {
	for i := range ids {
		out = append(out, [2]int{ids[i], ids[(i+1)%len(ids)]})
	}

	return out
}

// K4.
func tetrahedronEdges() [][2]int {
	var out [][2]int
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Faces 0-1-2-3 and 4-5-6-7 joined by i-(i+4).
func cubeEdges() [][2]int {
	out := ring(nil, 0, 1, 2, 3)
	out = ring(out, 4, 5, 6, 7)
	for i := 0; i < 4; i++ {
		out = append(out, [2]int{i, i + 4})
	}

	return out
}

// K6 without the antipodal pairs {0,1}, {2,3}, {4,5}.
func octahedronEdges() [][2]int {
	var out [][2]int
	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			if v != u^1 {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// Pentagons 0..4 and 5..9, a 10-ring 10..19 between them; top i meets
// ring 10+2i, bottom 5+i meets ring 11+2i.
func dodecahedronEdges() [][2]int {
	out := ring(nil, 0, 1, 2, 3, 4)
	out = ring(out, 5, 6, 7, 8, 9)
	out = ring(out, span(20)[10:]...)
	for i := 0; i < 5; i++ {
		out = append(out, [2]int{i, 10 + 2*i}, [2]int{5 + i, 11 + 2*i})
	}

	return out
}

// Poles 0 and 11 over the pentagonal antiprism 1..5 / 6..10.
func icosahedronEdges() [][2]int {
	out := ring(nil, 1, 2, 3, 4, 5)
	out = ring(out, 6, 7, 8, 9, 10)
	for i := 0; i < 5; i++ {
		out = append(out,
			[2]int{0, 1 + i}, [2]int{11, 6 + i},
			[2]int{1 + i, 6 + i}, [2]int{1 + i, 6 + (i+1)%5})
	}

	return out
}
