package mesh

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/dij0s/amr/node"
)

// Uniform builds a mesh whose root is subdivided evenly until every leaf
// sits at the level where the domain holds n leaves per axis. n must be a
// power of two. gen is called once per finest-level leaf, in deterministic
// depth-first order. Returns the mesh and the resulting uniform leaf level.
func Uniform(n int, gen func() float64, lx, ly float64, lz *float64) (*Mesh, int, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidPowerOfTwo, n)
	}
	depth := bits.TrailingZeros(uint(n))

	root := node.NewRoot(0, node.Origin{})
	root.RefineUniformDepth(depth, gen)

	return &Mesh{Lx: lx, Ly: ly, Lz: lz, root: root}, depth, nil
}

// CreateRoot installs a level-0 root with the given value and origin,
// replacing any existing tree.
func (m *Mesh) CreateRoot(value float64, origin node.Origin) *node.Node {
	m.root = node.NewRoot(value, origin)
	return m.root
}

// Root returns the mesh's root, or nil if none has been installed.
func (m *Mesh) Root() *node.Node { return m.root }

// Leaves returns a lazy iterator over every leaf in deterministic
// depth-first order. Fails with ErrEmptyMesh if no root has been installed.
func (m *Mesh) Leaves() (iter.Seq[*node.Node], error) {
	if m.root == nil {
		return nil, ErrEmptyMesh
	}
	return m.root.Leaves(), nil
}

// Inject applies f to every node of the tree (leaves and internal nodes),
// in deterministic depth-first order. Fails with ErrEmptyMesh if no root
// has been installed.
func (m *Mesh) Inject(f func(*node.Node)) error {
	if m.root == nil {
		return ErrEmptyMesh
	}
	m.root.Inject(f)
	return nil
}

// Solve collects the mesh's leaves into a read-only snapshot and dispatches
// both to scheme, which writes updated values back into the live leaves.
// Fails with ErrEmptyMesh if no root has been installed.
func (m *Mesh) Solve(scheme Scheme) error {
	if m.root == nil {
		return ErrEmptyMesh
	}

	var originals, snapshot []*node.Node
	for leaf := range m.root.Leaves() {
		cp, err := leaf.Copy()
		if err != nil {
			return fmt.Errorf("mesh: snapshot leaf: %w", err)
		}
		originals = append(originals, leaf)
		snapshot = append(snapshot, cp)
	}

	return scheme.Apply(originals, snapshot)
}
