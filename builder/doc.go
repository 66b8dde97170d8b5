// Package builder provides deterministic and seeded generators of simple
// undirected graphs as matrix.Adjacency values, used by tests, benchmarks,
// the fuzz harness and the CLI.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the only knobs; stochastic constructors require one.
//   - Deterministic topologies (Constructor implementations):
//     – Empty, Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – PlatonicSolid: the five vertex-transitive Platonic shells.
//   - Stochastic topologies:
//     – RandomSparse:  Erdős–Rényi G(n, p).
//     – RandomRegular: d-regular via stub matching.
//   - Relabeling:
//     – RandomPermutation, IsomorphicPair: a graph and a uniformly relabeled copy.
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MinGridDim.
//     – MinProbability, MaxProbability.
//
// Composition:
//
//	BuildGraph(opts, Cycle(3), Cycle(3)) // two disjoint triangles, ids 0..5
//
// Guarantees:
//
//   - Same constructors, order and seed ⇒ identical matrices.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors return sentinel errors wrapped with the method name and
//     never panic.
package builder
