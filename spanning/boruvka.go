package spanning

import (
	"sort"

	"github.com/katalvlaran/mazeweave/components"
	"github.com/katalvlaran/mazeweave/grid"
)

// Boruvka carves a randomized spanning tree (or forest) into g using
// Borůvka's round-based algorithm over the state's edge universe.
//
// Each round:
//  1. Clear the per-component "best candidate edge" labels.
//  2. Scan every live edge {u, v}. When u and v sit in different components
//     and the edge is cheaper than the best recorded for either endpoint's
//     component, record it as that component's candidate. Injective weights
//     make "cheaper" unambiguous.
//  3. Collect the distinct candidate set — two components may nominate the
//     same edge, which must be carved only once, so candidates are
//     deduplicated by normalized edge identity.
//  4. Carve each distinct candidate, cheapest first, re-checking at carve
//     time that its endpoints are still in different components: an earlier
//     carve this round may already have joined them, and carving anyway
//     would close a cycle under stale identifiers.
//  5. Stop when one component remains, or when a round adds zero edges —
//     the disconnected-grid exit, where every remaining component is
//     already internally spanned.
//
// Rounds at least halve the live component count while progress is possible,
// bounding a connected grid to O(log V) rounds. st.Rounds() reports how many
// ran. Returns ErrStaleEdge on a universe edge whose endpoints are no longer
// grid-adjacent (bookkeeping corruption, never bad input).
//
// Complexity: O(E · rounds) ≈ O(E log V). Memory: O(V + E).
func Boruvka(g *grid.Grid, st *State) (*State, error) {
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

	for st.reg.Count() > 1 {
		st.rounds++

		// 1-2. Nominate the cheapest outgoing edge of every component.
		best := make(map[components.ID]Edge)
		for _, e := range st.universe {
			if !g.Adjacent(e.U, e.V) {
				return st, ErrStaleEdge
			}
			ku := st.reg.ComponentOf(e.U)
			kv := st.reg.ComponentOf(e.V)
			if ku == kv {
				continue // internal edge: no component wants it
			}
			if f, ok := best[ku]; !ok || st.cheaper(e, f) {
				best[ku] = e
			}
			if f, ok := best[kv]; !ok || st.cheaper(e, f) {
				best[kv] = e
			}
		}

		// 3. Distinct candidates, deduplicated by edge identity.
		seen := make(map[Edge]struct{}, len(best))
		todo := make([]Edge, 0, len(best))
		for _, e := range best {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			todo = append(todo, e)
		}
		// Cheapest first: map iteration order must not leak into the maze.
		sort.Slice(todo, func(i, j int) bool { return st.cheaper(todo[i], todo[j]) })

		// 4. Carve, with the live re-check.
		added := 0
		for _, e := range todo {
			st.purgeEdge(e) // decided this round, whatever the outcome
			ku := st.reg.ComponentOf(e.U)
			kv := st.reg.ComponentOf(e.V)
			if ku == kv {
				continue // a carve earlier this round already joined them
			}
			_ = g.Carve(e.U, e.V) // adjacency verified during the scan
			st.reg.Merge(ku, kv)
			added++
		}

		// 5. Zero additions: every remaining component is spanned.
		if added == 0 {
			break
		}
	}

	return st, nil
}
