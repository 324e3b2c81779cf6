// Package lineout extracts a 1D scanline of cell values from a saved VTK
// file and compares two such scanlines, the Go counterpart of the original
// driver's lineout comparison script.
//
// What:
//
//   - Extract parses a vtkio-written file and returns the cells whose
//     center lies nearest to a fixed y, sorted by x.
//   - MaxAbsDiff compares two extracted lineouts, matching each point in
//     the reference to its nearest x in the comparison, and returns the
//     largest absolute value difference.
//
// Why:
//
//   - Two runs of the same driver rarely produce identical leaf grids (the
//     refinement pattern can differ slightly), so comparison matches by
//     nearest x rather than assuming identical point counts or ordering.
package lineout
