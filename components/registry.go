package components

import (
	"sort"

	"github.com/katalvlaran/mazeweave/grid"
)

// ID identifies a live component. An ID is the index of the component's
// representative cell; it stays meaningful only while the component is live —
// merging folds one ID into another and retires the loser.
type ID int

// None is the identifier returned for out-of-range cells and failed merges.
const None ID = -1

// Registry tracks the partition of cells into components. It is a disjoint-set
// forest (path compression + union by size) carrying an eagerly folded
// membership list at every root, so both O(1)-amortized lookups and full
// component enumeration stay cheap.
//
// The zero value is unusable; construct with New.
type Registry struct {
	parent  []int
	size    []int
	members [][]grid.CellID // populated at roots only
	count   int
}

// New returns a Registry over cells 0..n-1, one singleton component per cell.
// Complexity: O(n).
func New(n int) *Registry {
	if n < 0 {
		n = 0
	}
	r := &Registry{
		parent:  make([]int, n),
		size:    make([]int, n),
		members: make([][]grid.CellID, n),
		count:   n,
	}
	for i := 0; i < n; i++ {
		r.parent[i] = i
		r.size[i] = 1
		r.members[i] = []grid.CellID{grid.CellID(i)}
	}

	return r
}

// Add appends one more singleton component and returns its ID. Splices call
// this for every under-cell they insert, keeping the registry aligned with
// the grid's dense CellID space.
// Complexity: O(1) amortized.
func (r *Registry) Add() ID {
	i := len(r.parent)
	r.parent = append(r.parent, i)
	r.size = append(r.size, 1)
	r.members = append(r.members, []grid.CellID{grid.CellID(i)})
	r.count++

	return ID(i)
}

// Len returns the number of registered cells (live components plus retired
// identifiers).
func (r *Registry) Len() int { return len(r.parent) }

// Count returns the number of live components. It decreases monotonically:
// one per successful Merge.
func (r *Registry) Count() int { return r.count }

// find walks to the root with iterative path compression.
func (r *Registry) find(u int) int {
	for r.parent[u] != u {
		r.parent[u] = r.parent[r.parent[u]] // point u at its grandparent
		u = r.parent[u]
	}

	return u
}

// valid reports whether id indexes a registered cell.
func (r *Registry) valid(id ID) bool {
	return id >= 0 && int(id) < len(r.parent)
}

// ComponentOf returns the live component holding cell c, or None for an
// unregistered cell.
// Complexity: O(α(n)) amortized.
func (r *Registry) ComponentOf(c grid.CellID) ID {
	if !r.valid(ID(c)) {
		return None
	}

	return ID(r.find(int(c)))
}

// Same reports whether cells a and b currently share a component.
func (r *Registry) Same(a, b grid.CellID) bool {
	ka, kb := r.ComponentOf(a), r.ComponentOf(b)

	return ka != None && ka == kb
}

// Merge folds the components of a and b into one and returns the surviving
// identifier. The smaller membership migrates into the larger (ties go to
// the lower representative index), and the loser's membership list is folded
// whole into the survivor's.
//
// When a and b already share a root, Merge returns (root, false): the edge
// joining them would close a cycle. Callers must branch on the bool — a
// false merge is a recognized no-op, not an error and not progress.
// Out-of-range identifiers return (None, false).
// Complexity: O(α(n)) amortized plus the membership append.
func (r *Registry) Merge(a, b ID) (ID, bool) {
	if !r.valid(a) || !r.valid(b) {
		return None, false
	}
	ra, rb := r.find(int(a)), r.find(int(b))
	if ra == rb {
		// Cycle-avoidance no-op.
		return ID(ra), false
	}
	if r.size[rb] > r.size[ra] || (r.size[rb] == r.size[ra] && rb < ra) {
		ra, rb = rb, ra
	}
	r.parent[rb] = ra
	r.size[ra] += r.size[rb]
	r.members[ra] = append(r.members[ra], r.members[rb]...)
	r.members[rb] = nil
	r.count--

	return ID(ra), true
}

// Size returns the number of cells in id's live component, or 0 for an
// unknown identifier. Retired identifiers resolve to their survivor.
func (r *Registry) Size(id ID) int {
	if !r.valid(id) {
		return 0
	}

	return r.size[r.find(int(id))]
}

// Members returns a sorted copy of the cells in id's live component.
// Retired identifiers resolve to their survivor; unknown ones return nil.
// Complexity: O(k log k).
func (r *Registry) Members(id ID) []grid.CellID {
	if !r.valid(id) {
		return nil
	}
	root := r.find(int(id))
	out := make([]grid.CellID, len(r.members[root]))
	copy(out, r.members[root])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
