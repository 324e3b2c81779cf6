package vtkio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dij0s/amr/node"
	"github.com/dij0s/amr/vtkio"
)

// TestSave_WritesExpectedBlocks verifies Save emits a valid ASCII legacy
// VTK header and the expected point/cell/scalar block shapes for a 2x2
// uniform mesh.
func TestSave_WritesExpectedBlocks(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	root := node.NewRoot(0, node.Origin{})
	root.RefineWithGenerator(func() float64 { return 1.0 })

	require.NoError(t, vtkio.Save(root, 10, 10, 7))

	data, err := os.ReadFile(filepath.Join("output", "mesh_t00007.vtk"))
	require.NoError(t, err)
	content := string(data)

	require.True(t, strings.HasPrefix(content, "# vtk DataFile Version 3.0\n"))
	require.Contains(t, content, "DATASET UNSTRUCTURED_GRID")
	require.Contains(t, content, "POINTS 9 float") // 2x2 quads share a center point: 9 distinct corners
	require.Contains(t, content, "CELLS 4 20")
	require.Contains(t, content, "CELL_TYPES 4")
	require.Contains(t, content, "SCALARS value float 1")
	require.Contains(t, content, "SCALARS gradient float 1")
}

// TestSave_CreatesOutputDir verifies the output directory is created when
// missing.
func TestSave_CreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	root := node.NewRoot(5.0, node.Origin{})
	require.NoError(t, vtkio.Save(root, 1, 1, 0))

	info, err := os.Stat("output")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
