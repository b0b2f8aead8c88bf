package spanning

import (
	"github.com/katalvlaran/mazeweave/grid"
)

// OKForWeave reports whether c is a valid weave site:
//
//   - c has zero carved passages (under-cells always fail here: a splice
//     carves both of their tunnel arcs);
//   - all four directional neighbors are present;
//   - each cross-axis neighbor pair (north/south, east/west) sits in two
//     different components — which both confirms room for two independent
//     passages and guarantees the splice cannot prematurely close a cycle.
func (st *State) OKForWeave(c grid.CellID) bool {
	if !st.grid.Contains(c) {
		return false
	}
	if st.grid.PassageCount(c) != 0 {
		return false // cell already carved through
	}
	for _, axis := range crossings {
		n1 := st.grid.Neighbor(c, axis[0])
		n2 := st.grid.Neighbor(c, axis[1])
		if n1 == grid.NoCell || n2 == grid.NoCell {
			return false
		}
		if st.reg.Same(n1, n2) {
			return false // joining them would close a cycle
		}
	}

	return true
}

// AddWeave splices a crossing beneath c before the main loop runs, reporting
// whether the site was valid. An invalid site is a recoverable no-op: the
// caller retries elsewhere or skips.
//
// Effect of a successful splice:
//
//  1. The four original adjacencies of c leave the edge universe — they no
//     longer reflect real topology.
//  2. A coin-flip picks the "over" axis; the other becomes the tunnel.
//  3. The over-passage is carved straight through c.
//  4. A new under-cell is inserted and c's pointers along the tunnel axis
//     are rerouted so the former neighbors point at the under-cell instead
//     of at c, forming the strict 3-cell chain neighbor→under→neighbor.
//  5. Both under-chain passages are carved.
//  6. The registry absorbs the merges: c with each over neighbor, and both
//     tunnel neighbors with the under-cell.
//
// Afterwards c and the under-cell each hold exactly two passages; no 4-way
// intersection can exist at a weave site.
func (st *State) AddWeave(c grid.CellID) bool {
	if !st.OKForWeave(c) {
		return false
	}

	// 1. Withdraw c's adjacencies from the universe first, while the
	// original pointers still identify them.
	st.purgeCell(c)

	// 2. Coin-flip the axes.
	over, tunnel := crossings[0], crossings[1]
	if st.rng.Float64() > 0.5 {
		over, tunnel = tunnel, over
	}
	left := st.grid.Neighbor(c, over[0])
	right := st.grid.Neighbor(c, over[1])
	up := st.grid.Neighbor(c, tunnel[0])
	down := st.grid.Neighbor(c, tunnel[1])

	// 3. Carve the over-passage straight through c.
	_ = st.grid.Carve(c, left)
	st.reg.Merge(st.reg.ComponentOf(c), st.reg.ComponentOf(left))
	_ = st.grid.Carve(c, right)
	st.reg.Merge(st.reg.ComponentOf(c), st.reg.ComponentOf(right))

	// 4. Insert the under-cell and reroute the tunnel axis:
	// up → u → down, with c's pointers on that axis cleared.
	u := st.grid.AddUnderCell(c)
	st.extend()
	st.grid.SetNeighbor(u, tunnel[0], up)
	st.grid.SetNeighbor(up, tunnel[1], u)
	st.grid.SetNeighbor(u, tunnel[1], down)
	st.grid.SetNeighbor(down, tunnel[0], u)
	st.grid.SetNeighbor(c, tunnel[0], grid.NoCell)
	st.grid.SetNeighbor(c, tunnel[1], grid.NoCell)

	// 5-6. Carve the tunnel and fold the components.
	_ = st.grid.Carve(u, up)
	st.reg.Merge(st.reg.ComponentOf(u), st.reg.ComponentOf(up))
	_ = st.grid.Carve(u, down)
	st.reg.Merge(st.reg.ComponentOf(u), st.reg.ComponentOf(down))

	return true
}

// AddRandomWeaves attempts n splices at uniformly random interior
// coordinates — never on a boundary, since a weave needs all four neighbors.
// Each attempt is validated independently; failures are silently skipped and
// do not count. Returns the number of actual successes, which the caller
// should use instead of n.
//
// n < 1 defaults to one attempt per grid cell.
func (st *State) AddRandomWeaves(n int) int {
	rows, cols := st.grid.Rows(), st.grid.Cols()
	if rows < 3 || cols < 3 {
		return 0 // no interior cells to weave at
	}
	if n < 1 {
		n = st.grid.Len()
	}

	added := 0
	for i := 0; i < n; i++ {
		r := 1 + st.rng.Intn(rows-2)
		c := 1 + st.rng.Intn(cols-2)
		if st.AddWeave(st.grid.At(r, c)) {
			added++
		}
	}

	return added
}
