package scheme

import (
	"fmt"

	"github.com/dij0s/amr/node"
)

// CenteredLaplacian is SecondOrderCenteredFiniteDifferences: an explicit
// diffusion step, L = (right+left-2*self)/d1^2 + (up+down-2*self)/d2^2,
// applied as original.value = snapshot.value + laplacianFactor*L.
type CenteredLaplacian struct {
	// LaplacianFactor is dt*lambda/(rho*cp).
	LaplacianFactor float64
	// D1, D2 are the spatial steps along x and y at the finest level.
	D1, D2 float64
}

// NewCenteredLaplacian constructs a CenteredLaplacian scheme.
func NewCenteredLaplacian(laplacianFactor, d1, d2 float64) CenteredLaplacian {
	return CenteredLaplacian{LaplacianFactor: laplacianFactor, D1: d1, D2: d2}
}

// neumannValue returns nb's value if nb is non-nil, or self's own value
// otherwise (zero-gradient ghost-cell mirroring).
func neumannValue(self float64, nb *node.Node) float64 {
	if nb == nil {
		return self
	}
	return nb.Value()
}

// Apply implements mesh.Scheme. It runs two explicit passes so that no
// leaf's write can be observed by another leaf's neighbor read within the
// same sweep: a snapshot copy shares its parent chain with the live tree
// (see node.Copy), so its Neighbor lookups resolve live nodes directly --
// correctness therefore depends on every original still holding its
// pre-sweep value for the whole first pass. Pass 1 computes every new value
// from the snapshot (which never mutates); pass 2 writes them all onto the
// live originals. originals and snapshot must be the same length and in
// the same order.
func (s CenteredLaplacian) Apply(originals, snapshot []*node.Node) error {
	if len(originals) != len(snapshot) {
		return fmt.Errorf("scheme: originals and snapshot length mismatch: %d != %d", len(originals), len(snapshot))
	}

	updated := make([]float64, len(snapshot))
	for i, self := range snapshot {
		right := neumannValue(self.Value(), self.Neighbor(node.Right))
		left := neumannValue(self.Value(), self.Neighbor(node.Left))
		up := neumannValue(self.Value(), self.Neighbor(node.Up))
		down := neumannValue(self.Value(), self.Neighbor(node.Down))

		lx := (right + left - 2*self.Value()) / (s.D1 * s.D1)
		ly := (up + down - 2*self.Value()) / (s.D2 * s.D2)

		updated[i] = self.Value() + s.LaplacianFactor*(lx+ly)
	}

	for i, v := range updated {
		originals[i].SetValue(v)
	}

	return nil
}
