package refinement

import (
	"math"

	"github.com/dij0s/amr/node"
)

// LogGradient is Gradient with a log-scale transform applied to the
// relative gradient before comparison: 10*ln(1+relative_gradient). Spreads
// refinement thresholds across value fields with very wide dynamic ranges.
type LogGradient struct {
	Threshold float64
}

// NewLogGradient constructs a LogGradient criterion with the given
// threshold.
func NewLogGradient(threshold float64) LogGradient {
	return LogGradient{Threshold: threshold}
}

// Eval reports whether n's log-scaled relative gradient exceeds Threshold.
func (g LogGradient) Eval(n *node.Node) bool {
	rel, ok := relativeGradient(n)
	if !ok {
		return false
	}
	scaled := 10 * math.Log1p(rel)
	n.SetGradient(scaled)
	return scaled > g.Threshold
}
