package refinement

import "github.com/dij0s/amr/node"

// Custom wraps a user predicate as a node.Criterion, for geometric seeding
// ("value > 4") or any other ad-hoc rule that doesn't need gradient math.
type Custom struct {
	Predicate func(n *node.Node) bool
}

// Eval evaluates the wrapped predicate.
func (c Custom) Eval(n *node.Node) bool { return c.Predicate(n) }
