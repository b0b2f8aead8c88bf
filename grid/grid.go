package grid

import (
	"sort"
)

// Grid is a collection of cells reachable by CellID, with a rectangular
// ground level addressed by (row, col) and any number of appended
// under-cells. The topology is mutable: weave splices rewrite directional
// pointers at run time, so neighbor relations are always read live.
type Grid struct {
	rows, cols int
	cells      []*Cell
	unders     map[CellID]CellID // over-cell → its under-cell
}

// NewRectangular constructs a rows×cols grid with the full 4-connected
// rectangular topology: every interior cell points at four neighbors,
// boundary cells at two or three.
// Returns ErrBadDimensions when rows or cols is below 1.
// Complexity: O(rows×cols) time and memory.
func NewRectangular(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		cells:  make([]*Cell, 0, rows*cols),
		unders: make(map[CellID]CellID),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.newCell(r, c, false)
		}
	}
	// Wire the symmetric directional pointers.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.cells[g.At(r, c)]
			cell.topology[North] = g.At(r-1, c)
			cell.topology[South] = g.At(r+1, c)
			cell.topology[East] = g.At(r, c+1)
			cell.topology[West] = g.At(r, c-1)
		}
	}

	return g, nil
}

// newCell appends a fresh cell with no topology and no passages.
func (g *Grid) newCell(row, col int, under bool) *Cell {
	c := &Cell{
		id:     CellID(len(g.cells)),
		row:    row,
		col:    col,
		under:  under,
		parent: NoCell,
		arcs:   make(map[CellID]struct{}),
	}
	for d := Direction(0); d < NumDirections; d++ {
		c.topology[d] = NoCell
	}
	g.cells = append(g.cells, c)

	return c
}

// Rows returns the ground-level row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the ground-level column count.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells, under-cells included.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether id addresses a live cell.
func (g *Grid) Contains(id CellID) bool {
	return id >= 0 && int(id) < len(g.cells)
}

// Cell returns the cell for id, or nil when id is out of range.
func (g *Grid) Cell(id CellID) *Cell {
	if !g.Contains(id) {
		return nil
	}

	return g.cells[id]
}

// At maps a ground-level (row, col) coordinate to its CellID in row-major
// order, or NoCell outside the rectangle. Under-cells are never returned;
// reach them through UnderCellOf or neighbor pointers.
// Complexity: O(1).
func (g *Grid) At(row, col int) CellID {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return NoCell
	}

	return CellID(row*g.cols + col)
}

// Coordinate returns the (row, col) of id; under-cells report their parent's
// coordinates. Returns (-1, -1) for an unknown id.
func (g *Grid) Coordinate(id CellID) (int, int) {
	if !g.Contains(id) {
		return -1, -1
	}
	c := g.cells[id]

	return c.row, c.col
}

// IsUnder reports whether id names an under-cell.
func (g *Grid) IsUnder(id CellID) bool {
	return g.Contains(id) && g.cells[id].under
}

// Cells enumerates every live CellID in creation order, under-cells included.
// Complexity: O(n) time and memory.
func (g *Grid) Cells() []CellID {
	ids := make([]CellID, len(g.cells))
	for i := range g.cells {
		ids[i] = CellID(i)
	}

	return ids
}

// Neighbor returns id's directional pointer, or NoCell when the pointer is
// absent or id is unknown.
// Complexity: O(1).
func (g *Grid) Neighbor(id CellID, d Direction) CellID {
	if !g.Contains(id) || d < 0 || d >= NumDirections {
		return NoCell
	}

	return g.cells[id].topology[d]
}

// SetNeighbor rewrites one directional pointer of id. Passing NoCell clears
// the pointer. SetNeighbor touches only id's side of the adjacency; callers
// performing splices are responsible for the mirror pointer.
// Complexity: O(1).
func (g *Grid) SetNeighbor(id CellID, d Direction, nbr CellID) {
	if !g.Contains(id) || d < 0 || d >= NumDirections {
		return
	}
	g.cells[id].topology[d] = nbr
}

// Neighbors returns id's present neighbors in direction order
// (North, East, South, West).
func (g *Grid) Neighbors(id CellID) []CellID {
	if !g.Contains(id) {
		return nil
	}
	nbrs := make([]CellID, 0, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		if n := g.cells[id].topology[d]; n != NoCell {
			nbrs = append(nbrs, n)
		}
	}

	return nbrs
}

// Adjacent reports whether a directional pointer joins a and b in either
// direction.
// Complexity: O(1).
func (g *Grid) Adjacent(a, b CellID) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	for d := Direction(0); d < NumDirections; d++ {
		if g.cells[a].topology[d] == b || g.cells[b].topology[d] == a {
			return true
		}
	}

	return false
}

// Carve opens a two-way passage between adjacent cells a and b. Carving an
// already-open passage is a no-op.
// Returns ErrCellNotFound for unknown ids, ErrNotAdjacent when no pointer
// joins the pair.
// Complexity: O(1).
func (g *Grid) Carve(a, b CellID) error {
	if !g.Contains(a) || !g.Contains(b) {
		return ErrCellNotFound
	}
	if !g.Adjacent(a, b) {
		return ErrNotAdjacent
	}
	g.cells[a].arcs[b] = struct{}{}
	g.cells[b].arcs[a] = struct{}{}

	return nil
}

// Erase closes the passage between a and b, both ways. Unknown ids and
// closed passages are ignored.
func (g *Grid) Erase(a, b CellID) {
	if !g.Contains(a) || !g.Contains(b) {
		return
	}
	delete(g.cells[a].arcs, b)
	delete(g.cells[b].arcs, a)
}

// HasPassage reports whether a carved passage joins a and b.
// Complexity: O(1).
func (g *Grid) HasPassage(a, b CellID) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	_, ok := g.cells[a].arcs[b]

	return ok
}

// Passages returns the cells id is carved through to, in ascending id order.
func (g *Grid) Passages(id CellID) []CellID {
	if !g.Contains(id) {
		return nil
	}
	out := make([]CellID, 0, len(g.cells[id].arcs))
	for peer := range g.cells[id].arcs {
		out = append(out, peer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// PassageCount returns the number of carved passages at id.
func (g *Grid) PassageCount(id CellID) int {
	if !g.Contains(id) {
		return 0
	}

	return len(g.cells[id].arcs)
}

// PassageTotal returns the number of carved passages in the whole grid,
// counting each undirected passage once. For a spanning forest this equals
// cells − components.
// Complexity: O(n).
func (g *Grid) PassageTotal() int {
	total := 0
	for _, c := range g.cells {
		total += len(c.arcs)
	}

	return total / 2 // arcs are stored on both endpoints
}

// AddUnderCell appends a bare under-cell beneath parent: same coordinates,
// the under flag set, no topology and no passages. The caller (a weave or
// tunnel splice) wires the directional pointers afterwards.
// Returns NoCell when parent is unknown or already has an under-cell —
// weave mazes are strictly two-level.
// Complexity: O(1) amortized.
func (g *Grid) AddUnderCell(parent CellID) CellID {
	if !g.Contains(parent) {
		return NoCell
	}
	if _, taken := g.unders[parent]; taken {
		return NoCell
	}
	row, col := g.Coordinate(parent)
	u := g.newCell(row, col, true)
	u.parent = parent
	g.unders[parent] = u.id

	return u.id
}

// UnderCellOf returns the under-cell spliced beneath id, or NoCell when
// none exists.
// Complexity: O(1).
func (g *Grid) UnderCellOf(id CellID) CellID {
	if u, ok := g.unders[id]; ok {
		return u
	}

	return NoCell
}
