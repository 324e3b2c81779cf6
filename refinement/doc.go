// Package refinement provides the node.Criterion implementations the
// scheduler consults to decide which leaves should refine or coarsen.
//
// What:
//
//   - Custom wraps an arbitrary predicate over *node.Node.
//   - Gradient computes a level-aware magnitude of the centered difference
//     of value along x and y, normalizes it against the cell's own value,
//     and compares it to a threshold.
//   - LogGradient applies a log-scale transform to Gradient's relative
//     gradient before comparing, for criteria spanning wide dynamic ranges.
//
// Why:
//
//   - Neighbors at a different level than self don't sit at a uniform
//     distance from self's center; Gradient's distance factors (1.0 for a
//     same-level neighbor, 0.7905 for a coarser one, 0.75 for reading two
//     children of a finer one) correct for that before differencing.
//
// Errors: none; Eval always returns a bool, never an error.
package refinement
