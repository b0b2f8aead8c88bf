// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/mazeweave.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a constructor received rows or cols below 1.
	ErrBadDimensions = errors.New("grid: rows and cols must be at least 1")
	// ErrCellNotFound indicates an operation referenced a CellID outside the grid.
	ErrCellNotFound = errors.New("grid: cell not found")
	// ErrNotAdjacent indicates a passage operation on two cells that share no
	// directional pointer.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)

// Direction identifies one of the four directional pointers of a cell.
// North decreases the row, South increases it; East increases the column,
// West decreases it.
type Direction int

const (
	North Direction = iota
	East
	South
	West

	// NumDirections bounds the per-cell topology array.
	NumDirections
)

// directionNames backs Direction.String.
var directionNames = [NumDirections]string{"north", "east", "south", "west"}

// Opposite returns the reverse direction: North↔South, East↔West.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// String returns the lowercase direction name, or "invalid" for values
// outside [North, West].
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "invalid"
	}

	return directionNames[d]
}

// CellID addresses a cell inside a Grid's flat cell slice. IDs are dense,
// start at 0, and are never reused; cells inserted by weave splices receive
// the next free ID. A CellID is a stable map key.
type CellID int

// NoCell marks an absent neighbor pointer or a failed lookup.
const NoCell CellID = -1

// Cell is the atomic maze unit: a coordinate identity, four directional
// neighbor pointers (the topology) and the set of carved passages (the arcs).
// An under-cell is a cell inserted beneath another by a weave splice; apart
// from the flag and the parent link it is an ordinary cell.
type Cell struct {
	id       CellID
	row, col int
	under    bool
	parent   CellID // over-cell this cell was spliced beneath; NoCell otherwise
	topology [NumDirections]CellID
	arcs     map[CellID]struct{}
}

// ID returns the cell's stable identifier.
func (c *Cell) ID() CellID { return c.id }

// Row returns the cell's row coordinate. Under-cells share their parent's
// coordinates.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column coordinate.
func (c *Cell) Col() int { return c.col }

// IsUnder reports whether the cell was inserted beneath another by a splice.
func (c *Cell) IsUnder() bool { return c.under }

// Parent returns the over-cell this cell lies beneath, or NoCell for
// ground-level cells.
func (c *Cell) Parent() CellID { return c.parent }
