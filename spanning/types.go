// Package spanning defines configuration options and sentinel errors for the
// maze-carving engines and the weave/tunnel splicers.
package spanning

import (
	"errors"

	"github.com/katalvlaran/mazeweave/grid"
)

// Engine preconditions and internal-bookkeeping errors.
var (
	// ErrNilGrid indicates an engine or constructor received a nil grid.
	ErrNilGrid = errors.New("spanning: grid must not be nil")
	// ErrStateMismatch indicates a State built for one grid was handed to an
	// engine running over a different grid.
	ErrStateMismatch = errors.New("spanning: state was built for a different grid")
	// ErrStaleEdge indicates the edge universe holds a pair that is no longer
	// grid-adjacent. Splices purge the adjacencies they destroy, so a stale
	// edge can only mean corrupted bookkeeping; engines stop on it.
	ErrStaleEdge = errors.New("spanning: edge universe references non-adjacent cells")
	// ErrCellNotFound indicates an operation referenced a cell outside the grid.
	ErrCellNotFound = errors.New("spanning: cell not found in grid")
	// ErrNoNeighbor indicates ForceConnection was aimed at an absent pointer.
	ErrNoNeighbor = errors.New("spanning: no neighbor in that direction")
)

// Long-tunnel feasibility failures. These are caller-recoverable status
// values: retry elsewhere or skip, never fatal.
var (
	// ErrTunnelLength indicates a requested tunnel shorter than two under-cells;
	// a single crossing is AddWeave's job.
	ErrTunnelLength = errors.New("spanning: tunnel length must be at least 2")
	// ErrNotEnoughCells indicates the grid ended before the tunnel's far mouth.
	ErrNotEnoughCells = errors.New("spanning: not enough cells")
	// ErrPassageBlocksTunnel indicates a consecutive pair on the intended path
	// is already carved through.
	ErrPassageBlocksTunnel = errors.New("spanning: existing passage blocks this tunnel")
	// ErrTunnelIsolatesCell indicates rerouting would strand an over-cell with
	// no remaining neighbor.
	ErrTunnelIsolatesCell = errors.New("spanning: tunnel would isolate a cell")
	// ErrTunnelUnderTunnel indicates an over-cell on the path already carries
	// an under-cell; weave mazes are strictly two-level.
	ErrTunnelUnderTunnel = errors.New("spanning: a tunnel already runs beneath this path")
)

// crossings pairs the two axes of a weave site: a splice routes one axis
// over the cell and the other under it.
var crossings = [2][2]grid.Direction{
	{grid.North, grid.South},
	{grid.East, grid.West},
}

// Options configures state construction. Use DefaultOptions() for the
// reproducible default setup.
//
// Fields:
//
//	Seed int64 — seeds the state's private RNG; 0 selects a fixed default
//	             seed so that unseeded runs are still reproducible.
type Options struct {
	// Seed drives every random choice the state makes: weight assignment,
	// weave axis coin-flips and random weave placement.
	Seed int64
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSeed returns an Option that sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns Options with Seed = 0 (the fixed default stream).
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Seed: 0}
}
