package vtkio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dij0s/amr/node"
)

// outputDir is where every VTK file is written, auto-created on first Save.
const outputDir = "output"

// point is a deduplication key for a cell corner in physical space.
type point struct{ x, y, z float64 }

// quadCellType is VTK_QUAD; the writer emits one per leaf. Hexahedron
// (VTK_HEXAHEDRON = 12) output would require a Z coordinate per leaf, which
// node.AbsoluteOrigin deliberately does not carry (the core's Non-goal on
// 3D neighbor/grading resolution), so only 2D quad output is implemented.
const quadCellType = 9

// Save writes root's leaf set as an ASCII legacy VTK 3.0 unstructured grid
// to output/mesh_t<step:05d>.vtk, scaling cell geometry by the domain's
// physical extent (lx, ly). The output directory is created if missing.
func Save(root *node.Node, lx, ly float64, step int) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	var leaves []*node.Node
	for l := range root.Leaves() {
		leaves = append(leaves, l)
	}

	points, cells := buildGeometry(leaves, lx, ly)

	path := filepath.Join(outputDir, fmt.Sprintf("mesh_t%05d.vtk", step))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer f.Close()

	if err := writeGrid(f, points, cells, leaves); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// buildGeometry computes the deduplicated corner point list and the
// per-leaf cell (as indices into that list) for every leaf.
func buildGeometry(leaves []*node.Node, lx, ly float64) (points []point, cells [][4]int) {
	pointIndex := make(map[point]int)
	cells = make([][4]int, 0, len(leaves))

	intern := func(p point) int {
		if idx, ok := pointIndex[p]; ok {
			return idx
		}
		idx := len(points)
		points = append(points, p)
		pointIndex[p] = idx
		return idx
	}

	for _, leaf := range leaves {
		size := 1.0
		for i := 0; i < leaf.Level(); i++ {
			size /= 2
		}
		ox := leaf.AbsoluteOrigin().X * lx
		oy := leaf.AbsoluteOrigin().Y * ly
		cx := size * lx
		cy := size * ly

		corners := [4]point{
			{ox, oy, 0},
			{ox + cx, oy, 0},
			{ox + cx, oy + cy, 0},
			{ox, oy + cy, 0},
		}
		var cell [4]int
		for i, c := range corners {
			cell[i] = intern(c)
		}
		cells = append(cells, cell)
	}

	return points, cells
}

// writeGrid writes the full VTK ASCII legacy file body.
func writeGrid(w *os.File, points []point, cells [][4]int, leaves []*node.Node) error {
	if _, err := fmt.Fprint(w,
		"# vtk DataFile Version 3.0\n",
		"AMR Mesh\n",
		"ASCII\n",
		"DATASET UNSTRUCTURED_GRID\n",
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nPOINTS %d float\n", len(points)); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%v %v %v\n", p.x, p.y, p.z); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nCELLS %d %d\n", len(cells), len(cells)*5); err != nil {
		return err
	}
	for _, c := range cells {
		if _, err := fmt.Fprintf(w, "4 %d %d %d %d\n", c[0], c[1], c[2], c[3]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nCELL_TYPES %d\n", len(cells)); err != nil {
		return err
	}
	for range cells {
		if _, err := fmt.Fprintf(w, "%d\n", quadCellType); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nCELL_DATA %d\n", len(cells)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "SCALARS value float 1\nLOOKUP_TABLE default\n"); err != nil {
		return err
	}
	for _, leaf := range leaves {
		if _, err := fmt.Fprintf(w, "%v\n", leaf.Value()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "SCALARS gradient float 1\nLOOKUP_TABLE default\n"); err != nil {
		return err
	}
	for _, leaf := range leaves {
		if _, err := fmt.Fprintf(w, "%v\n", leaf.Gradient()); err != nil {
			return err
		}
	}

	return nil
}
