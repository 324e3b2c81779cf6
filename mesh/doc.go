// Package mesh owns the tree's root and the top-level operations that act
// on the whole leaf set: uniform construction, numerical solve dispatch,
// and the refine/coarsen scheduler.
//
// What:
//
//   - Mesh holds the physical domain extent (lx, ly, optional lz) and the
//     single owned root node. Every other operation delegates to the root
//     or to a capability passed in by the caller (Scheme, node.Criterion).
//   - Uniform builds an evenly subdivided starting mesh from a generator
//     function, returning the resulting leaf level.
//   - Refine runs the two-pass buffer-propagation scheduler described in
//     the package's refine.go: buffer expansion and protection first, then
//     sibling-group coarsening, preserving the 2:1 grading invariant across
//     the whole sweep.
//   - Solve snapshots the leaf set and dispatches it to a Scheme.
//
// Why:
//
//   - Keeping min/max_depth and the buffer radius inside the scheduler
//     (rather than on Node) lets the grading invariant be a property of
//     bulk mutation, not of any single refine/coarsen call in isolation.
//
// Complexity:
//
//   - Uniform: O(4^depth).
//   - Refine: O(L * buffer_area) per sweep, L = leaf count.
//   - Solve: O(L).
//
// Errors:
//
//   - ErrEmptyMesh: an operation other than CreateRoot/Uniform/accessors was
//     called before a root exists.
//   - ErrInvalidPowerOfTwo: Uniform was called with a leaf count per axis
//     that is not a power of two.
package mesh
