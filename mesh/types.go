package mesh

import "github.com/dij0s/amr/node"

// Scheme applies a numerical update to a snapshot of the mesh's leaves,
// writing results back into the corresponding live leaves. Implementations
// live in package scheme; Mesh only depends on this one-method interface so
// it never needs to import scheme.
type Scheme interface {
	Apply(originals, snapshot []*node.Node) error
}

// Mesh owns the tree's root and the domain's physical extent. Lz is nil for
// a 2D domain. vtkio does not read Lz: it writes quads only, whether Lz is
// set or not, and has no hexahedron output.
type Mesh struct {
	Lx, Ly float64
	Lz     *float64

	root *node.Node
}
