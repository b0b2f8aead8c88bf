// Package spanning carves perfect mazes: randomized minimum-spanning-tree
// construction over a cell grid, with optional weave crossings and long
// tunnels spliced in before the main loop.
//
// What:
//
//   - State: the working set — component registry, live edge universe with
//     injective random weights, and an explicit seedable RNG.
//   - Kruskal: consumes the universe in increasing-weight order, carving
//     edges that do not close a cycle.
//   - Boruvka: round-based — every component nominates its cheapest outgoing
//     edge, the distinct nominations are carved, repeat.
//   - AddWeave / AddRandomWeaves: splice a 3-cell tunnel under a cell so one
//     passage crosses structurally beneath another.
//   - AddLongTunnel: the same surgery stretched under an arbitrary straight
//     run of cells, with a full feasibility check before any mutation.
//   - ForceConnection: unconditional carve+merge for pre-linking connectors.
//
// Why randomized MST for mazes:
//
//   - A spanning tree over the cell adjacency graph IS a perfect maze —
//     connected, acyclic, exactly one path between any two cells. Random
//     injective weights turn the deterministic MST algorithms into uniform
//     maze texture generators with very different visual character (Kruskal:
//     fine-grained; Borůvka: blobby, few long corridors).
//
// Invariants (hold at every step, both engines):
//
//   - Every cell belongs to exactly one component.
//   - carved passages = cells − components (spanning-forest invariant).
//   - The weight function is injective over the live universe.
//   - A splice that removes an adjacency purges it from the universe before
//     either engine can see it.
//
// Ordering contract:
//
//   - All weave/tunnel pre-processing must complete before the main loop
//     starts; the loop assumes the universe reflects only real adjacency.
//     Interleaving splices with engine steps is unsupported.
//   - Single-threaded by design: every mutating operation runs to
//     completion, and a half-applied splice is never a valid state.
//
// Errors:
//
//   - Feasibility failures (ErrNotEnoughCells, ErrPassageBlocksTunnel,
//     ErrTunnelIsolatesCell, ErrTunnelUnderTunnel, a false AddWeave) are
//     non-exceptional status values: retry elsewhere or skip.
//   - A disconnected grid is NOT an error — engines produce a spanning
//     forest and callers inspect ComponentCount().
//   - ErrStaleEdge and a same-root merge mistaken for progress are the only
//     internal-bookkeeping faults; engines stop on the former, the registry
//     reports the latter explicitly.
//
// Determinism: a given (grid, seed, operation sequence) replays identically;
// seed 0 selects a fixed default stream.
package spanning
