// Package grid models the maze surface the spanning engines carve into:
// cells with directional neighbor pointers and a set of carved passages.
//
// What:
//
//   - Cell: identity (CellID), coordinates, four directional pointers
//     (the topology) and the carved passages (the arcs).
//   - Grid: a flat, densely indexed cell store with a rectangular ground
//     level plus under-cells appended by weave splices.
//   - Direction: North/East/South/West with Opposite().
//
// Why a flat slice instead of linked cell objects:
//
//   - Cells reference each other bidirectionally and splices rewrite those
//     references live; CellID indices keep the object graph acyclic in
//     ownership terms and give every cell a stable map key.
//
// Mutability contract:
//
//   - Topology is created once by a constructor and then only rewritten by
//     splice operations (SetNeighbor). Passages are carved and erased freely.
//   - An under-cell lies beneath exactly one ground cell, and a ground cell
//     carries at most one under-cell (two-level weave construction).
//
// Complexity:
//
//   - All per-cell operations (Neighbor, SetNeighbor, Carve, HasPassage): O(1).
//   - Enumerations (Cells, PassageTotal): O(n).
//
// Errors:
//
//   - ErrBadDimensions: constructor got rows or cols below 1.
//   - ErrCellNotFound: a passage operation referenced an unknown CellID.
//   - ErrNotAdjacent: Carve on two cells joined by no directional pointer.
package grid
