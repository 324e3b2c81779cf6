// Package amr is an adaptive mesh refinement engine for time-dependent
// 2D PDE solvers: a quad-tree spatial decomposition with a strict 2:1
// level-grading invariant, a neighbor-finding algorithm that resolves
// same-level, coarser, and finer neighbors without sibling pointers, and
// a refine/coarsen scheduler that keeps grading intact across bulk mesh
// mutations.
//
// What:
//
//   - node/       — tree cell: value, level, origin, parent/children,
//     neighbor lookup, buffered-neighbor expansion, refine/coarsen, leaves.
//   - mesh/       — owns the root, builds uniform meshes, drives tree-wide
//     refine/coarsen sweeps and scheme application.
//   - refinement/ — refinement criteria: user predicate, gradient-magnitude,
//     log-scaled gradient.
//   - scheme/     — numerical schemes operating on leaves and their
//     neighbors; the reference scheme is a centered finite-difference
//     Laplacian with Neumann boundaries.
//   - telemetry/  — process-wide operation timer, a thin decorator over
//     selected Mesh operations.
//   - vtkio/      — ASCII legacy VTK writer over the leaf list.
//   - thermal/    — physical constants and heat-source injection for the
//     2D thermal diffusion problem.
//   - lineout/    — extracts and diffs 1D scanlines from saved VTK files.
//   - cmd/amr/    — CLI driver wiring the above into a time-stepping loop.
//
// Why:
//
//   - Steep gradients and moving fronts occupy a small fraction of the
//     domain; resolving them at a finer scale than the bulk keeps the
//     leaf count, and therefore the solve cost, proportional to the
//     interesting region rather than the whole domain.
//
// Non-goals: dynamic load balancing, parallel tree mutation, 3D grading,
// implicit/higher-order time integrators, conservative flux correction at
// level interfaces. See SPEC_FULL.md.
package amr
