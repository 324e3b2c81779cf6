// Package thermal provides the physical layer of the diffusion problem
// driven by cmd/amr: material constants, the derived Laplacian factor, and
// a disk-shaped continuous heat source.
//
// What:
//
//   - Constants holds the physical parameters (density, specific heat
//     capacity, thermal conductivity) and the time step used to derive a
//     scheme.CenteredLaplacian's laplacian factor.
//   - DiskSource injects a fixed temperature into every cell whose center
//     lies within a given radius of the domain's center, re-derived from
//     each node's absolute centered origin so it tracks mesh refinement.
//
// Why:
//
//   - Keeping the disk source as a function of absolute position (rather
//     than a one-time seed) lets it keep re-injecting energy every step, as
//     the original continuous-source driver does.
package thermal
