package node

import "iter"

// interpolationDamping scales the centered-difference slope used when
// interpolating child values during adaptive refinement. A calibrated
// constant (spec §4.1), not a tuning knob: it prevents overshoot when
// neighbors are far apart in value. Exposed as a named constant rather
// than an option.
const interpolationDamping = 0.1

// newChild constructs a child at the given in-parent origin, one level
// deeper than parent, caching its absolute origin from the parent's.
func newChild(parent *Node, o Origin, value float64) *Node {
	scale := cellSize(parent.level + 1)
	return &Node{
		value:  value,
		level:  parent.level + 1,
		origin: o,
		parent: parent,
		absOrigin: AbsoluteOrigin{
			X: parent.absOrigin.X + float64(o.X)*scale,
			Y: parent.absOrigin.Y + float64(o.Y)*scale,
		},
	}
}

// mean returns the arithmetic mean of n's children's values. Callers must
// ensure n is non-leaf.
func (n *Node) mean() float64 {
	sum := 0.0
	for _, o := range childOrder {
		sum += n.children[o].value
	}
	return sum / float64(len(childOrder))
}

// RefineWithGenerator subdivides a leaf into 4 children, each taking its
// value from gen(), called once per child. Used for uniform mesh
// construction where deterministic or stateful sampling is desired. After
// the children are created, n's own value becomes their mean (I4, applied
// in reverse).
func (n *Node) RefineWithGenerator(gen func() float64) {
	n.children = make(map[Origin]*Node, len(childOrder))
	for _, o := range childOrder {
		n.children[o] = newChild(n, o, gen())
	}
	n.value = n.mean()
}

// centeredDiff computes a centered finite difference of self against two
// opposite neighbors: (hi.value - lo.value) / 2 when both exist, a
// forward/backward difference with whichever single neighbor exists, or 0
// if neither exists.
func centeredDiff(self float64, hi, lo *Node) float64 {
	switch {
	case hi != nil && lo != nil:
		return (hi.value - lo.value) / 2
	case hi != nil:
		return hi.value - self
	case lo != nil:
		return self - lo.value
	default:
		return 0
	}
}

// Refine subdivides a leaf into 4 children by gradient-aware interpolation:
// a damped centered finite difference of n's value against its existing
// cardinal neighbors along X and Y, linearly extrapolated to each child's
// center. After the children are created, n's own value becomes their mean
// (I4, applied in reverse).
func (n *Node) Refine() {
	dx := centeredDiff(n.value, n.Neighbor(Right), n.Neighbor(Left)) * interpolationDamping
	dy := centeredDiff(n.value, n.Neighbor(Down), n.Neighbor(Up)) * interpolationDamping

	n.children = make(map[Origin]*Node, len(childOrder))
	for _, o := range childOrder {
		cx := float64(o.X)*0.5 + 0.25
		cy := float64(o.Y)*0.5 + 0.25
		value := n.value + (cx-0.5)*dx + (cy-0.5)*dy
		n.children[o] = newChild(n, o, value)
	}
	n.value = n.mean()
}

// RefineUniformDepth recursively subdivides n depth levels deep, calling gen
// once per finest-level leaf and setting every ancestor's value to the mean
// of its children, bottom-up. Used by mesh.Uniform to build an evenly
// refined starting mesh.
func (n *Node) RefineUniformDepth(depth int, gen func() float64) {
	if depth == 0 {
		n.value = gen()
		return
	}
	n.children = make(map[Origin]*Node, len(childOrder))
	for _, o := range childOrder {
		n.children[o] = newChild(n, o, 0)
	}
	for _, o := range childOrder {
		n.children[o].RefineUniformDepth(depth-1, gen)
	}
	n.value = n.mean()
}

// Coarsen replaces n's children with their arithmetic mean (I4) and drops
// the subtree. No-op if n is already a leaf.
func (n *Node) Coarsen() {
	if n.IsLeaf() {
		return
	}
	n.value = n.mean()
	n.children = nil
}

// Inject applies f to n, then recursively to all descendants in the same
// deterministic depth-first order as Leaves.
func (n *Node) Inject(f func(*Node)) {
	f(n)
	for _, o := range childOrder {
		if c := n.Child(o); c != nil {
			c.Inject(f)
		}
	}
}

// Copy duplicates a leaf: same value, level, origin, and parent
// back-reference (the copy shares the live tree's parent chain, which is
// how a scheme's snapshot can still resolve neighbors through the
// unmutated tree). Fails with ErrNonLeafCopy for a non-leaf.
func (n *Node) Copy() (*Node, error) {
	if !n.IsLeaf() {
		return nil, ErrNonLeafCopy
	}
	return &Node{
		value:     n.value,
		level:     n.level,
		origin:    n.origin,
		parent:    n.parent,
		absOrigin: n.absOrigin,
		gradient:  n.gradient,
	}, nil
}

// walkLeaves performs the deterministic depth-first walk shared by Leaves.
// It returns false as soon as yield asks to stop, propagating that signal
// up through the recursion.
func (n *Node) walkLeaves(yield func(*Node) bool) bool {
	if n.IsLeaf() {
		return yield(n)
	}
	for _, o := range childOrder {
		if c := n.Child(o); c != nil {
			if !c.walkLeaves(yield) {
				return false
			}
		}
	}
	return true
}

// Leaves returns a lazy, finite, non-restartable sequence of all descendant
// leaves in deterministic depth-first order (children visited in the fixed
// origin order (0,0), (0,1), (1,0), (1,1)). Callers that need multiple
// passes must materialize it, e.g. with slices.Collect.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walkLeaves(yield)
	}
}
