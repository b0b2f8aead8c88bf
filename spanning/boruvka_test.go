package spanning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeweave/spanning"
)

// TestBoruvka_Connected5x7 runs the round-based engine over a connected grid:
// same spanning-tree outcome as Kruskal, with the O(log V) round bound —
// every round at least halves the component count while progress is possible,
// so 35 components need at most 6 rounds.
func TestBoruvka_Connected5x7(t *testing.T) {
	g := mustRectangular(t, 5, 7)
	st := mustState(t, g, 11)

	_, err := spanning.Boruvka(g, st)
	require.NoError(t, err)

	assertSpanningTree(t, g, st)
	assert.Equal(t, 34, g.PassageTotal())
	assert.GreaterOrEqual(t, st.Rounds(), 1)
	assert.LessOrEqual(t, st.Rounds(), 6, "rounds must halve the component count")
}

// TestBoruvka_DisjointSubgrids runs the engine over two disjoint 3×3
// sub-grids: it terminates on the round that adds zero edges, leaving two
// internally spanned components.
func TestBoruvka_DisjointSubgrids(t *testing.T) {
	g := mustRectangular(t, 3, 6)
	severColumns(t, g, 2)
	st := mustState(t, g, 4)

	_, err := spanning.Boruvka(g, st)
	require.NoError(t, err)

	assert.Equal(t, 2, st.ComponentCount())
	assert.Equal(t, 16, g.PassageTotal(), "9+9 cells − 2 components")
	assertSpanningForest(t, g, st)
	assert.Equal(t, 9, reachable(g, g.At(0, 0)))
	assert.Equal(t, 9, reachable(g, g.At(0, 5)))

	// Re-running exercises exactly one more round — the zero-addition exit —
	// and mutates nothing.
	rounds := st.Rounds()
	_, err = spanning.Boruvka(g, st)
	require.NoError(t, err)
	assert.Equal(t, rounds+1, st.Rounds())
	assert.Equal(t, 16, g.PassageTotal())
	assert.Equal(t, 2, st.ComponentCount())
}

// TestBoruvka_Validation covers the engine preconditions.
func TestBoruvka_Validation(t *testing.T) {
	_, err := spanning.Boruvka(nil, nil)
	assert.ErrorIs(t, err, spanning.ErrNilGrid)

	g1 := mustRectangular(t, 3, 3)
	g2 := mustRectangular(t, 3, 3)
	st := mustState(t, g1, 1)
	_, err = spanning.Boruvka(g2, st)
	assert.ErrorIs(t, err, spanning.ErrStateMismatch)
}

// TestBoruvka_NilState verifies the engine builds a default state on demand.
func TestBoruvka_NilState(t *testing.T) {
	g := mustRectangular(t, 4, 5)
	st, err := spanning.Boruvka(g, nil)
	require.NoError(t, err)
	assertSpanningTree(t, g, st)
}

// TestBoruvka_ManySeeds asserts the spanning-tree property across seeds.
// Deduplication by edge identity plus the carve-time component re-check keep
// every round cycle-free — any double carve would surface here as
// passages > cells−1.
func TestBoruvka_ManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := mustRectangular(t, 6, 6)
		st := mustState(t, g, seed)
		if _, err := spanning.Boruvka(g, st); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		assertSpanningTree(t, g, st)
	}
}

// TestBoruvka_MatchesKruskalInvariants cross-checks the two engines on the
// same shape: different texture, identical global invariants.
func TestBoruvka_MatchesKruskalInvariants(t *testing.T) {
	gk := mustRectangular(t, 7, 5)
	gb := mustRectangular(t, 7, 5)
	stk := mustState(t, gk, 21)
	stb := mustState(t, gb, 21)

	_, err := spanning.Kruskal(gk, stk)
	require.NoError(t, err)
	_, err = spanning.Boruvka(gb, stb)
	require.NoError(t, err)

	assert.Equal(t, gk.PassageTotal(), gb.PassageTotal(), "both engines carve cells−1 passages")
	assert.Equal(t, stk.ComponentCount(), stb.ComponentCount())
}

// TestBoruvka_StaleEdge severs an adjacency after state construction. The
// nomination scan visits every live edge before the round's first carve, so
// the stale edge surfaces with nothing carved at all.
func TestBoruvka_StaleEdge(t *testing.T) {
	g := mustRectangular(t, 3, 3)
	st := mustState(t, g, 9)
	severColumns(t, g, 1)

	_, err := spanning.Boruvka(g, st)
	assert.ErrorIs(t, err, spanning.ErrStaleEdge)
	assert.Equal(t, 0, g.PassageTotal(), "the scan fails before the first carve")
	assert.Equal(t, 9, st.ComponentCount(), "no merges happened")
}
