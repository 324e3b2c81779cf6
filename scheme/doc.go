// Package scheme provides numerical schemes that update a mesh's leaf
// values from a read-only snapshot of themselves.
//
// What:
//
//   - CenteredLaplacian implements a second-order centered finite-difference
//     Laplacian with Neumann (zero-gradient) boundary conditions: a missing
//     neighbor contributes the cell's own value, equivalent to ghost-cell
//     mirroring.
//
// Why:
//
//   - Reading from a snapshot and writing to the live tree only after every
//     read has completed (mesh.Mesh.Solve's contract) makes the sweep
//     order-independent: no leaf's write can be observed by another leaf's
//     read within the same call.
//
// Known limitation: the scheme samples neighbors at d1/d2 regardless of
// their actual level, ignoring level jumps. A flux-corrected or
// level-aware stencil would be required for exact behavior near a
// refinement boundary; this is a declared limitation, not a bug.
package scheme
