// Package components implements the component registry shared by the
// spanning-tree engines: which cells are already connected by carved
// passages, and how to fold two components into one.
//
// What:
//
//   - Registry maps every cell to exactly one component at all times.
//   - Merge folds one component's full membership into the other; component
//     identifiers are merged, never split, so Count only decreases.
//   - Merge on a pair that already shares a root is the recognized
//     cycle-avoidance no-op: it reports false and must not be treated as an
//     error or as a successful merge.
//
// How:
//
//   - An index-based union-find with path compression and union by size.
//     The original eager recoloring (rewrite every migrated cell's label on
//     each merge) is correct but quadratic in adversarial orders; union-find
//     keeps the same observable semantics — ComponentOf equality, Count, and
//     an eagerly folded per-root membership list — at near-O(1) per op.
//
// Complexity:
//
//   - ComponentOf, Same, Merge: O(α(n)) amortized.
//   - Members: O(k log k) for a component of k cells (sorted copy).
//
// The package has no sentinel errors: out-of-range inputs answer with the
// None identifier or a false merge, matching the caller-recoverable,
// non-exceptional contract of the engines.
package components
