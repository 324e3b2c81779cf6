package refinement

import (
	"math"

	"github.com/dij0s/amr/node"
)

// epsilon guards the relative-gradient division against a self value of
// exactly zero.
const epsilon = 1e-6

// Gradient flags a leaf for refinement when the magnitude of its centered
// value gradient, relative to its own value, exceeds Threshold. As a side
// effect of Eval, the computed relative gradient is stored on the node via
// node.SetGradient (telemetry only).
type Gradient struct {
	Threshold float64
}

// NewGradient constructs a Gradient criterion with the given threshold.
func NewGradient(threshold float64) Gradient {
	return Gradient{Threshold: threshold}
}

// relativeGradient computes the level-aware magnitude of n's centered
// gradient, normalized by max(|n.value|, epsilon). A missing cardinal
// neighbor on any side means the gradient is undefined here; the caller
// must then treat the criterion as not applying.
func relativeGradient(n *node.Node) (float64, bool) {
	rv, rf, rok := n.NeighborSample(node.Right)
	lv, lf, lok := n.NeighborSample(node.Left)
	uv, uf, uok := n.NeighborSample(node.Up)
	dv, df, dok := n.NeighborSample(node.Down)
	if !rok || !lok || !uok || !dok {
		return 0, false
	}

	dx := (rv - lv) / (rf + lf)
	// Up contributes positively (spec's sign convention).
	dy := (uv - dv) / (uf + df)

	magnitude := math.Hypot(dx, dy)
	self := math.Max(math.Abs(n.Value()), epsilon)
	return magnitude / self, true
}

// Eval reports whether n's relative gradient exceeds Threshold.
func (g Gradient) Eval(n *node.Node) bool {
	rel, ok := relativeGradient(n)
	if !ok {
		return false
	}
	n.SetGradient(rel)
	return rel > g.Threshold
}
