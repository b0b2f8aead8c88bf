package spanning

import (
	"math/rand"

	"github.com/katalvlaran/mazeweave/components"
	"github.com/katalvlaran/mazeweave/grid"
)

// Edge is an unordered pair of currently adjacent cells, normalized U < V so
// the same adjacency always hashes to the same key. An Edge lives in the
// universe only while it remains a candidate: not yet carved or discarded by
// an engine, not yet invalidated by a splice.
type Edge struct {
	U, V grid.CellID
}

// newEdge normalizes an unordered pair.
func newEdge(a, b grid.CellID) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// State holds everything the engines and splicers mutate: the grid under
// construction, the component registry, the live edge universe with its
// injective weights, and the injectable RNG.
//
// Lifecycle: build with NewState, apply any weave/tunnel pre-processing, then
// run exactly one engine. All pre-processing must complete before the engine
// starts — the main loop assumes the universe reflects only real adjacency.
// Operations are not safe for concurrent use; the model is strictly
// single-threaded and every operation runs to completion.
type State struct {
	grid     *grid.Grid
	reg      *components.Registry
	rng      *rand.Rand
	universe []Edge
	weight   map[Edge]int
	rounds   int
}

// NewState builds the carving state for g:
//
//  1. One registry component per cell.
//  2. The deduplicated set of unordered adjacent-cell pairs (the universe).
//  3. An injective weight for every edge, drawn as a random permutation of
//     {0 … |edges|−1} — a strict total order with no tie-break ambiguity.
//
// Returns ErrNilGrid when g is nil.
// Complexity: O(V + E).
func NewState(g *grid.Grid, opts ...Option) (*State, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	st := &State{
		grid: g,
		reg:  components.New(g.Len()),
		rng:  rngFromSeed(o.Seed),
	}

	// Collect each undirected adjacency exactly once.
	seen := make(map[Edge]struct{})
	for _, id := range g.Cells() {
		for _, nbr := range g.Neighbors(id) {
			e := newEdge(id, nbr)
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			st.universe = append(st.universe, e)
		}
	}
	st.assignWeights()

	return st, nil
}

// assignWeights draws a fresh injective weight map over the current universe.
func (st *State) assignWeights() {
	st.weight = make(map[Edge]int, len(st.universe))
	perm := st.rng.Perm(len(st.universe))
	for i, e := range st.universe {
		st.weight[e] = perm[i]
	}
}

// cheaper compares two live edges by assigned weight. Weights are injective,
// so the order is strict.
func (st *State) cheaper(a, b Edge) bool {
	return st.weight[a] < st.weight[b]
}

// purgeEdge removes one adjacency from the universe, if present.
func (st *State) purgeEdge(e Edge) {
	if _, live := st.weight[e]; !live {
		return
	}
	delete(st.weight, e)
	kept := st.universe[:0]
	for _, u := range st.universe {
		if u != e {
			kept = append(kept, u)
		}
	}
	st.universe = kept
}

// purgeCell removes every universe edge incident to c. Called by the weave
// splicer: after a splice the cell's original adjacencies no longer reflect
// real topology and must never reach an engine.
func (st *State) purgeCell(c grid.CellID) {
	kept := st.universe[:0]
	for _, e := range st.universe {
		if e.U == c || e.V == c {
			delete(st.weight, e)
			continue
		}
		kept = append(kept, e)
	}
	st.universe = kept
}

// purgeWithin removes every universe edge with both endpoints in set. The
// long-tunnel builder uses it to drop the adjacencies along the over-path.
func (st *State) purgeWithin(set map[grid.CellID]bool) {
	kept := st.universe[:0]
	for _, e := range st.universe {
		if set[e.U] && set[e.V] {
			delete(st.weight, e)
			continue
		}
		kept = append(kept, e)
	}
	st.universe = kept
}

// extend registers registry singletons for any cells appended to the grid
// since the last call, keeping CellID and component index spaces aligned.
func (st *State) extend() {
	for st.reg.Len() < st.grid.Len() {
		st.reg.Add()
	}
}

// ForceConnection unconditionally carves the passage from c in direction d
// and merges the two components, bypassing cost ordering. Higher-level
// callers use it to pre-link required connectors (e.g. tunnel mouths) before
// the main loop runs. The adjacency is withdrawn from the universe.
//
// Returns ErrCellNotFound for an unknown cell, ErrNoNeighbor when the
// pointer is absent.
func (st *State) ForceConnection(c grid.CellID, d grid.Direction) error {
	if !st.grid.Contains(c) {
		return ErrCellNotFound
	}
	nbr := st.grid.Neighbor(c, d)
	if nbr == grid.NoCell {
		return ErrNoNeighbor
	}
	if err := st.grid.Carve(c, nbr); err != nil {
		return err
	}
	st.reg.Merge(st.reg.ComponentOf(c), st.reg.ComponentOf(nbr))
	st.purgeEdge(newEdge(c, nbr))

	return nil
}

// ComponentCount returns the number of live components. After an engine
// finishes, 1 means a spanning tree; more means the grid was disconnected
// and the result is a spanning forest — callers must inspect this rather
// than assume a single tree.
func (st *State) ComponentCount() int { return st.reg.Count() }

// SameComponent reports whether two cells are already connected by carved
// passages.
func (st *State) SameComponent(a, b grid.CellID) bool {
	return st.reg.Same(a, b)
}

// EdgeCount returns the size of the live edge universe.
func (st *State) EdgeCount() int { return len(st.universe) }

// Edges returns a copy of the live edge universe.
func (st *State) Edges() []Edge {
	out := make([]Edge, len(st.universe))
	copy(out, st.universe)

	return out
}

// Weight returns the assigned weight of a live edge and whether it is live.
func (st *State) Weight(e Edge) (int, bool) {
	w, ok := st.weight[e]

	return w, ok
}

// Rounds returns how many Borůvka rounds have run on this state. Zero for
// states only used with Kruskal.
func (st *State) Rounds() int { return st.rounds }
