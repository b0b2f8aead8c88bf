package spanning

import (
	"sort"

	"github.com/katalvlaran/mazeweave/grid"
)

// Kruskal carves a randomized spanning tree (or forest, on a disconnected
// grid) into g using Kruskal's algorithm over the state's edge universe.
//
// Steps:
//  1. Validate: g non-nil; build a default state when st is nil; reject a
//     state that belongs to a different grid.
//  2. Order the universe by increasing weight. Weights are an injective
//     random permutation, so this ordering IS the random shuffle the
//     algorithm calls for — consuming from the cheap end is equivalent to
//     popping a shuffled stack.
//  3. Pop the cheapest remaining edge {u, v}. If u and v are in different
//     components, carve the passage and merge; otherwise discard the edge —
//     it would close a cycle.
//  4. Repeat until the universe is exhausted. Every edge is decided exactly
//     once, so the universe is empty afterwards and a re-run is a no-op.
//
// A disconnected grid is not an error: the result is a spanning forest and
// callers must inspect st.ComponentCount() rather than assume a single tree.
// Returns ErrStaleEdge if a popped edge's endpoints are no longer
// grid-adjacent — splices purge what they invalidate, so this means broken
// bookkeeping, not bad input.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E).
func Kruskal(g *grid.Grid, st *State) (*State, error) {
	// 1. Validation.
	if g == nil {
		return nil, ErrNilGrid
	}
	if st == nil {
		var err error
		if st, err = NewState(g); err != nil {
			return nil, err
		}
	}
	if st.grid != g {
		return st, ErrStateMismatch
	}

	// 2. Cheapest-first order.
	sort.Slice(st.universe, func(i, j int) bool {
		return st.cheaper(st.universe[i], st.universe[j])
	})

	// 3-4. Decide every edge.
	for _, e := range st.universe {
		delete(st.weight, e) // visited, whatever the outcome
		if !g.Adjacent(e.U, e.V) {
			return st, ErrStaleEdge
		}
		ku := st.reg.ComponentOf(e.U)
		kv := st.reg.ComponentOf(e.V)
		if ku == kv {
			continue // cycle-avoidance: discard
		}
		_ = g.Carve(e.U, e.V) // adjacency just verified
		st.reg.Merge(ku, kv)
	}
	st.universe = st.universe[:0]

	return st, nil
}
