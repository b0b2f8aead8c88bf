package spanning

import (
	"github.com/katalvlaran/mazeweave/grid"
)

// AddLongTunnel generalizes the weave splice to a straight run of
// length ≥ 2 under-cells beneath an existing line of over-cells, entering at
// start and heading dir. On success it returns the created under-cells in
// chain order and the terminal cell at the far mouth; the passages
// start→u₁→…→u_len→terminal are carved and their components merged in one
// pass.
//
// Feasibility is verified in full before the first mutation — a failed call
// has zero side effects. Failure reasons, all caller-recoverable:
//
//   - ErrTunnelLength:         length < 2 (a single crossing is AddWeave's job)
//   - ErrNotEnoughCells:       the grid ends before the far mouth
//   - ErrPassageBlocksTunnel:  a consecutive pair on the intended path is
//     already carved through
//   - ErrTunnelUnderTunnel:    an over-cell on the path already carries an
//     under-cell (two-level construction)
//   - ErrTunnelIsolatesCell:   an intermediate over-cell would keep no
//     neighbor at all once rerouted off the axis
//
// The isolation check covers only the intermediate over-cells: start and the
// terminal are rerouted onto the carved under-chain itself, so they always
// retain a passage-bearing neighbor.
func (st *State) AddLongTunnel(start grid.CellID, dir grid.Direction, length int) ([]grid.CellID, grid.CellID, error) {
	if !st.grid.Contains(start) {
		return nil, grid.NoCell, ErrCellNotFound
	}
	if length < 2 {
		return nil, grid.NoCell, ErrTunnelLength
	}
	opp := dir.Opposite()

	// 1. Walk length+1 steps: the over-cells the tunnel passes beneath,
	// then the terminal at the far mouth.
	path := make([]grid.CellID, 0, length+2)
	path = append(path, start)
	cur := start
	for i := 0; i < length+1; i++ {
		cur = st.grid.Neighbor(cur, dir)
		if cur == grid.NoCell {
			return nil, grid.NoCell, ErrNotEnoughCells
		}
		path = append(path, cur)
	}
	terminal := path[len(path)-1]

	// 2. Rerouting destroys the axis adjacency at every step, so a carved
	// passage anywhere along the path cannot be preserved.
	for i := 0; i+1 < len(path); i++ {
		if st.grid.HasPassage(path[i], path[i+1]) {
			return nil, grid.NoCell, ErrPassageBlocksTunnel
		}
	}

	// 3. Per-over-cell checks: two-level limit and isolation. An
	// intermediate keeps only its off-axis pointers after the reroute.
	for i := 1; i <= length; i++ {
		over := path[i]
		if st.grid.UnderCellOf(over) != grid.NoCell {
			return nil, grid.NoCell, ErrTunnelUnderTunnel
		}
		remaining := 0
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			if d == dir || d == opp {
				continue
			}
			if st.grid.Neighbor(over, d) != grid.NoCell {
				remaining++
			}
		}
		if remaining == 0 {
			return nil, grid.NoCell, ErrTunnelIsolatesCell
		}
	}

	// All checks passed — mutate. Build the under-chain, unlinking each
	// over-cell from the axis and threading prev → u as we go.
	under := make([]grid.CellID, 0, length)
	prev := start
	for i := 1; i <= length; i++ {
		over := path[i]
		u := st.grid.AddUnderCell(over)
		st.extend()
		st.grid.SetNeighbor(over, dir, grid.NoCell)
		st.grid.SetNeighbor(over, opp, grid.NoCell)
		st.grid.SetNeighbor(prev, dir, u)
		st.grid.SetNeighbor(u, opp, prev)
		under = append(under, u)
		prev = u
	}
	st.grid.SetNeighbor(prev, dir, terminal)
	st.grid.SetNeighbor(terminal, opp, prev)

	// Carve the full new chain.
	chain := make([]grid.CellID, 0, length+2)
	chain = append(chain, start)
	chain = append(chain, under...)
	chain = append(chain, terminal)
	for i := 0; i+1 < len(chain); i++ {
		_ = st.grid.Carve(chain[i], chain[i+1])
	}

	// Purge the obsolete adjacencies: every universe edge with both
	// endpoints on the over-path. Off-axis edges of the over-cells stay —
	// that topology is untouched.
	onPath := make(map[grid.CellID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	st.purgeWithin(onPath)

	// Merge, in one pass, the components of start, the terminal, and every
	// under-cell. start and terminal may already share a component — that is
	// the circuit case, a recognized no-op.
	surv, _ := st.reg.Merge(st.reg.ComponentOf(start), st.reg.ComponentOf(terminal))
	for _, u := range under {
		surv, _ = st.reg.Merge(surv, st.reg.ComponentOf(u))
	}

	return under, terminal, nil
}
