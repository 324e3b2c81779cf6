// Package vtkio writes a mesh's leaf set as an ASCII legacy VTK 3.0
// unstructured grid, one quad per leaf. Only 2D quad cells are written;
// there is no hexahedron output for a 3D domain.
//
// What:
//
//   - Save writes POINTS, CELLS, CELL_TYPES, and CELL_DATA (value and
//     gradient scalars) blocks, deduplicating corner points shared by
//     adjacent cells.
//   - Save creates the output directory if missing and names the file
//     mesh_t<step:05d>.vtk.
//
// Why:
//
//   - Point deduplication keeps the file a valid unstructured grid (shared
//     corners indexed once) rather than one disjoint quad per cell.
//
// Errors:
//
//   - ErrWrite: the output directory or file could not be created or
//     written.
package vtkio
