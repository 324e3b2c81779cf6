// Package node defines the tree cell at the heart of the mesh: a scalar
// value, a level, an in-parent origin, a non-owning back-reference to its
// parent, and an owned map of children.
//
// What:
//
//   - Node carries value/level/origin/parent/children and a cached
//     absolute origin (recomputed only at construction — never mutated
//     afterward).
//   - Neighbor resolves the same-level or coarser neighbor across one of
//     the four cardinal faces, without explicit sibling pointers.
//   - Buffer composes chained cardinal/diagonal neighbor lookups into a
//     (2*radius+1)² neighborhood, deduplicating nodes that are shared
//     coarser ancestors.
//   - Refine subdivides a leaf into 4 children, either from a value
//     generator (uniform mesh construction) or via gradient-aware
//     interpolation (adaptive refinement, the default).
//   - Coarsen replaces a node's children with their arithmetic mean and
//     drops the subtree.
//
// Why:
//
//   - A child holding only a non-owning pointer to its parent (rather than
//     a bidirectional owned link) keeps the tree a strict ownership
//     hierarchy: destroying a node destroys its subtree, and the mesh
//     exclusively owns the root.
//
// Invariants upheld by every exported mutator (I1-I5 of the mesh's
// specification): leaf partition, 2:1 grading (enforced by the mesh's
// scheduler, not by Node in isolation — see the mesh package),
// child completeness, mean preservation on coarsen, and origin caching.
//
// Errors:
//
//   - ErrNonLeafCopy: Copy was called on a node that still has children.
package node
