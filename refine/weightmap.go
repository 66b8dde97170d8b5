package refine

import (
	"context"
	"log/slog"
	"sort"

	"github.com/katalvlaran/isomorph/bfs"
	"github.com/katalvlaran/isomorph/matrix"
)

// weightState is the per-run ScoreState of weight-map refinement:
// the current weight of every vertex, its private BFS walker, and whether
// its class has been settled as structurally indistinguishable.
type weightState struct {
	g       *matrix.Adjacency
	weight  []int
	walkers []*bfs.Walker
	settled []bool
}

// weightMap runs the class-splitting loop and returns single-level
// signatures holding each vertex's final score, plus the round count.
//
// Stage 1: weights := degrees.
// Stage 2: pick the largest-weight unsettled tied class, advance each
// member's walker by one level and sum the weights of the new fringe.
// Stage 3: on a split relabel all weights to dense ranks of (weight, sum);
// with equal sums and all members exhausted, mark the class settled.
// Stage 4: score := dense rank of (class cardinality, weight).
func weightMap(ctx context.Context, m *matrix.Adjacency, deg DegreeMap, log *slog.Logger) ([]Signature, int, error) {
	n := m.Order()
	st := &weightState{
		g:       m,
		weight:  append([]int(nil), deg...),
		walkers: make([]*bfs.Walker, n),
		settled: make([]bool, n),
	}

	rounds := 0
	for {
		select {
		case <-ctx.Done():
			return nil, rounds, ctx.Err()
		default:
		}

		class := st.selectClass()
		if class == nil {
			break
		}
		rounds++

		sums, exhausted, err := st.advance(class)
		if err != nil {
			return nil, rounds, err
		}

		split := false
		for _, s := range sums[1:] {
			if s != sums[0] {
				split = true
				break
			}
		}
		switch {
		case split:
			st.relabel(class, sums)
		case exhausted:
			for _, v := range class {
				st.settled[v] = true
			}
		}
		log.Debug("weight-map round",
			"round", rounds, "weight", st.weight[class[0]], "size", len(class),
			"split", split, "settled", !split && exhausted)
	}

	return st.scores(), rounds, nil
}

// selectClass returns the members (ascending id) of the unsettled class with
// at least two members and the largest weight, or nil when none remains.
func (st *weightState) selectClass() []int {
	n := len(st.weight)
	counts := make(map[int]int, n)
	for v := 0; v < n; v++ {
		if !st.settled[v] {
			counts[st.weight[v]]++
		}
	}
	best, found := 0, false
	for w, c := range counts {
		if c >= 2 && (!found || w > best) {
			best, found = w, true
		}
	}
	if !found {
		return nil
	}
	class := make([]int, 0, counts[best])
	for v := 0; v < n; v++ {
		if !st.settled[v] && st.weight[v] == best {
			class = append(class, v)
		}
	}

	return class
}

// advance steps every member's walker one level and sums the current
// weights of its new fringe. exhausted reports that no member has a
// fringe left.
func (st *weightState) advance(class []int) (sums []int, exhausted bool, err error) {
	sums = make([]int, len(class))
	exhausted = true
	for i, v := range class {
		if st.walkers[v] == nil {
			if st.walkers[v], err = bfs.NewWalker(st.g, v); err != nil {
				return nil, false, err
			}
		}
		w := st.walkers[v]
		if !w.Step() {
			continue
		}
		exhausted = false
		for _, u := range w.Fringe() {
			sums[i] += st.weight[u]
		}
	}

	return sums, exhausted, nil
}

// relabel rewrites all weights to the dense rank (from 1) of (weight, sum),
// where sum is 0 outside the split class. Other classes keep their members.
func (st *weightState) relabel(class []int, sums []int) {
	n := len(st.weight)
	sum := make([]int, n)
	for i, v := range class {
		sum[v] = sums[i]
	}
	keys := make([][2]int, n)
	for v := 0; v < n; v++ {
		keys[v] = [2]int{st.weight[v], sum[v]}
	}
	st.weight = denseRanks(keys)
}

// scores ranks every vertex by (class cardinality, weight).
func (st *weightState) scores() []Signature {
	n := len(st.weight)
	card := make(map[int]int, n)
	for _, w := range st.weight {
		card[w]++
	}
	keys := make([][2]int, n)
	for v := 0; v < n; v++ {
		keys[v] = [2]int{card[st.weight[v]], st.weight[v]}
	}
	rank := denseRanks(keys)
	sigs := make([]Signature, n)
	for v := 0; v < n; v++ {
		sigs[v] = Signature{Level{rank[v]}}
	}

	return sigs
}

// denseRanks maps each key to its 1-based dense rank in ascending order.
func denseRanks(keys [][2]int) []int {
	uniq := make([][2]int, len(keys))
	copy(uniq, keys)
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i][0] != uniq[j][0] {
			return uniq[i][0] < uniq[j][0]
		}
		return uniq[i][1] < uniq[j][1]
	})
	rankOf := make(map[[2]int]int, len(uniq))
	next := 1
	for _, k := range uniq {
		if _, ok := rankOf[k]; !ok {
			rankOf[k] = next
			next++
		}
	}
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = rankOf[k]
	}

	return out
}
