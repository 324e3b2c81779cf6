// Package telemetry provides a process-wide timer recording how much
// wall-clock time each named operation spends, independent of the mesh
// operations it wraps.
//
// What:
//
//   - Track runs a function and accumulates its elapsed time under name.
//   - Elapsed reports total wall-clock time since the package was first
//     used (the first call to Track, Elapsed or FuncTimes).
//   - FuncTimes returns a snapshot of per-name accumulated time.
//
// Why:
//
//   - A single process-wide instance (rather than one per call site) lets a
//     driver print one summary at the end of a run covering every phase
//     (refine/solve/save) without threading a collector object through
//     every call.
//
// Concurrency: safe for concurrent use; guarded by a single sync.RWMutex,
// following the core package's muVert/muEdgeAdj convention.
package telemetry
