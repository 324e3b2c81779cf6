package node

// step returns the hypothetical same-parent sibling coordinate obtained by
// moving one step from origin o in direction d.
func step(o Origin, d Direction) Origin {
	switch d {
	case Right:
		return Origin{o.X + 1, o.Y}
	case Left:
		return Origin{o.X - 1, o.Y}
	case Up:
		return Origin{o.X, o.Y - 1}
	case Down:
		return Origin{o.X, o.Y + 1}
	default:
		return o
	}
}

// inParentBounds reports whether a coordinate still lies within the
// {0,1}x{0,1} in-parent square.
func inParentBounds(o Origin) bool {
	return o.X >= 0 && o.X <= 1 && o.Y >= 0 && o.Y <= 1
}

// mirror returns the in-parent coordinate obtained by mirroring the axis
// that direction d crosses, and keeping self's own coordinate on the
// other axis. Used when descending into a coarser neighbor's children.
func mirror(self Origin, d Direction) Origin {
	m := self
	switch d {
	case Right:
		m.X = 0
	case Left:
		m.X = 1
	case Up:
		m.Y = 1
	case Down:
		m.Y = 0
	}
	return m
}

// Neighbor returns the same-level or coarser neighbor of n across the face
// indicated by d, or nil if that face lies outside the root domain.
//
// Algorithm:
//  1. No parent -> nil (n is the root).
//  2. Compute the hypothetical same-parent sibling coordinate. If it is
//     still in {0,1}^2, that sibling is the (guaranteed same-level) answer.
//  3. Otherwise the step crosses the parent's boundary: recurse on the
//     parent's own neighbor in the same direction.
//  4. A nil or leaf result from that recursion is returned directly (a
//     leaf result is a neighbor coarser than n, by the mesh's 2:1 grading
//     invariant exactly one level coarser).
//  5. Otherwise descend into that neighbor's children, mirroring the
//     crossed axis and keeping n's own coordinate on the other axis, until
//     the found child reaches n's level or becomes a leaf.
func (n *Node) Neighbor(d Direction) *Node {
	if n.parent == nil {
		return nil
	}

	sibling := step(n.origin, d)
	if inParentBounds(sibling) {
		return n.parent.Child(sibling)
	}

	p := n.parent.Neighbor(d)
	if p == nil || p.IsLeaf() {
		return p
	}

	target := mirror(n.origin, d)
	current := p
	for {
		child := current.Child(target)
		if child == nil {
			return current
		}
		current = child
		if current.level >= n.level || current.IsLeaf() {
			return current
		}
	}
}

// Chain applies Neighbor left-to-right, short-circuiting to nil as soon as
// any link is missing. Used for diagonal queries and buffer composition.
func (n *Node) Chain(ds ...Direction) *Node {
	current := n
	for _, d := range ds {
		if current == nil {
			return nil
		}
		current = current.Neighbor(d)
	}
	return current
}

// offsetChain builds the cardinal-then-diagonal direction sequence that
// walks from a node to the cell (dx, dy) away from it, in-plane, moving in
// the X direction before the Y direction.
func offsetChain(dx, dy int) []Direction {
	dirs := make([]Direction, 0, absInt(dx)+absInt(dy))
	if dx > 0 {
		for i := 0; i < dx; i++ {
			dirs = append(dirs, Right)
		}
	} else if dx < 0 {
		for i := 0; i < -dx; i++ {
			dirs = append(dirs, Left)
		}
	}
	if dy > 0 {
		for i := 0; i < dy; i++ {
			dirs = append(dirs, Down)
		}
	} else if dy < 0 {
		for i := 0; i < -dy; i++ {
			dirs = append(dirs, Up)
		}
	}
	return dirs
}

// Buffer returns the set of nodes whose in-plane integer offset from n is
// in [-radius, radius]^2, excluding n itself. Built by composing cardinal
// and diagonal chains; when several offsets resolve to the same coarser
// ancestor (a node whose level is below the buffer's finest level), that
// ancestor is included only once.
func (n *Node) Buffer(radius int) []*Node {
	seen := make(map[*Node]struct{})
	out := make([]*Node, 0, (2*radius+1)*(2*radius+1)-1)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			target := n.Chain(offsetChain(dx, dy)...)
			if target == nil || target == n {
				continue
			}
			if _, ok := seen[target]; ok {
				continue
			}
			seen[target] = struct{}{}
			out = append(out, target)
		}
	}
	return out
}

// ShallRefine reports whether n is eligible to refine under criterion c:
// c must accept n, and refining must not open a level gap greater than 1
// against any existing cardinal neighbor.
func (n *Node) ShallRefine(c Criterion) bool {
	if !c.Eval(n) {
		return false
	}
	for _, d := range cardinalDirections {
		nb := n.Neighbor(d)
		if nb != nil && absInt(nb.level-(n.level+1)) > 1 {
			return false
		}
	}
	return true
}

// facingChildren returns the two children of a non-leaf neighbor nb that
// share the face crossed by direction d (as seen from the node that looked
// up nb via Neighbor(d)).
func facingChildren(nb *Node, d Direction) (*Node, *Node) {
	switch d {
	case Right:
		return nb.Child(Origin{0, 0}), nb.Child(Origin{0, 1})
	case Left:
		return nb.Child(Origin{1, 0}), nb.Child(Origin{1, 1})
	case Up:
		return nb.Child(Origin{0, 1}), nb.Child(Origin{1, 1})
	case Down:
		return nb.Child(Origin{0, 0}), nb.Child(Origin{1, 0})
	default:
		return nil, nil
	}
}

// finestRelevantNeighborLevel returns the level used to judge coarsening
// eligibility against one cardinal neighbor: the neighbor's own level if it
// is a leaf, or the level of the two face-sharing children (plus one if
// either of those is itself non-leaf, signalling that coarsening would open
// a gap of 2 or more).
func finestRelevantNeighborLevel(nb *Node, d Direction) int {
	if nb.IsLeaf() {
		return nb.level
	}
	c1, c2 := facingChildren(nb, d)
	level := nb.level + 1
	if (c1 != nil && !c1.IsLeaf()) || (c2 != nil && !c2.IsLeaf()) {
		level++
	}
	return level
}

// NeighborSample returns the value and distance factor to use for n's
// cardinal neighbor in direction d when computing a gradient, per the
// neighbor-handling rule: absent neighbor -> ok=false; same-level leaf ->
// (value, 1.0); coarser leaf -> (value, 0.7905), the fine-against-coarse
// cell-center distance; non-leaf (self is coarser) -> (mean of the two
// face-sharing children, 0.75).
func (n *Node) NeighborSample(d Direction) (value float64, distanceFactor float64, ok bool) {
	nb := n.Neighbor(d)
	if nb == nil {
		return 0, 0, false
	}
	if !nb.IsLeaf() {
		c1, c2 := facingChildren(nb, d)
		sum, count := 0.0, 0
		if c1 != nil {
			sum += c1.value
			count++
		}
		if c2 != nil {
			sum += c2.value
			count++
		}
		if count == 0 {
			return 0, 0, false
		}
		return sum / float64(count), 0.75, true
	}
	if nb.level < n.level {
		return nb.value, 0.7905, true
	}
	return nb.value, 1.0, true
}

// ShallCoarsen reports whether n (a would-be-coarsened parent) is eligible
// to coarsen under criterion c: for every cardinal neighbor, the finest
// relevant neighbor level must be within 1 of n's level, and c must reject
// n (refinement is no longer needed here).
func (n *Node) ShallCoarsen(c Criterion) bool {
	for _, d := range cardinalDirections {
		nb := n.Neighbor(d)
		if nb == nil {
			continue
		}
		if absInt(finestRelevantNeighborLevel(nb, d)-n.level) > 1 {
			return false
		}
	}
	return !c.Eval(n)
}
