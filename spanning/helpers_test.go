// Package spanning_test shares small helpers across the engine, weave and
// tunnel test files: passage-graph reachability plus the spanning-forest
// invariant assertions both engines must uphold.
package spanning_test

import (
	"testing"

	"github.com/katalvlaran/mazeweave/grid"
	"github.com/katalvlaran/mazeweave/spanning"
)

// reachable returns how many cells can be reached from `from` over carved
// passages (BFS).
func reachable(g *grid.Grid, from grid.CellID) int {
	seen := map[grid.CellID]bool{from: true}
	queue := []grid.CellID{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Passages(queue[qi]) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen)
}

// assertSpanningForest checks the core invariant: carved passages equal
// cells minus components. Combined with per-component reachability this
// makes every component's passage graph a tree.
func assertSpanningForest(t *testing.T, g *grid.Grid, st *spanning.State) {
	t.Helper()
	if got, want := g.PassageTotal(), g.Len()-st.ComponentCount(); got != want {
		t.Fatalf("passages = %d; want cells−components = %d", got, want)
	}
}

// assertSpanningTree requires a single component spanning the whole grid:
// connected with exactly cells−1 passages, hence acyclic.
func assertSpanningTree(t *testing.T, g *grid.Grid, st *spanning.State) {
	t.Helper()
	if st.ComponentCount() != 1 {
		t.Fatalf("components = %d; want 1", st.ComponentCount())
	}
	if got, want := g.PassageTotal(), g.Len()-1; got != want {
		t.Fatalf("passages = %d; want %d", got, want)
	}
	if got := reachable(g, grid.CellID(0)); got != g.Len() {
		t.Fatalf("reachable = %d; want %d (all cells)", got, g.Len())
	}
}

// severColumns cuts every adjacency between columns col and col+1, turning a
// rectangular grid into two disconnected halves.
func severColumns(t *testing.T, g *grid.Grid, col int) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		a, b := g.At(r, col), g.At(r, col+1)
		g.SetNeighbor(a, grid.East, grid.NoCell)
		g.SetNeighbor(b, grid.West, grid.NoCell)
	}
}

// mustRectangular builds a rows×cols grid or stops the test.
func mustRectangular(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.NewRectangular(rows, cols)
	if err != nil {
		t.Fatalf("NewRectangular(%d,%d): %v", rows, cols, err)
	}

	return g
}

// mustState builds a seeded state or stops the test.
func mustState(t *testing.T, g *grid.Grid, seed int64) *spanning.State {
	t.Helper()
	st, err := spanning.NewState(g, spanning.WithSeed(seed))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	return st
}
