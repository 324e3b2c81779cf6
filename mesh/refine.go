package mesh

import "github.com/dij0s/amr/node"

// bufferRadius is the Chebyshev radius swept around each flagged leaf
// during Pass 1, in cells. A larger radius buys more headroom against
// grading violations at the cost of more speculative refines; 4 is the
// scheduler's calibrated default.
const bufferRadius = 4

// Refine runs the two-pass buffer-propagation scheduler: Pass 1 refines
// every leaf criterion flags, first pre-refining a Chebyshev buffer zone
// around it so the 2:1 grading invariant holds once it refines; Pass 2
// coarsens sibling groups the criterion no longer wants refined, skipping
// anything refined or protected in Pass 1. Fails with ErrEmptyMesh if no
// root has been installed.
func (m *Mesh) Refine(criterion node.Criterion, minDepth, maxDepth int) error {
	if m.root == nil {
		return ErrEmptyMesh
	}

	toRefine, protected := m.collectRefinements(criterion, maxDepth)
	for l := range toRefine {
		l.Refine()
	}

	toCoarsen := m.collectCoarsenings(criterion, minDepth, toRefine, protected)
	for _, p := range toCoarsen {
		p.Coarsen()
	}

	return nil
}

// collectRefinements implements Pass 1: it mutates the tree (refining
// buffer-zone neighbors as it goes) and returns the set of leaves still
// flagged for refinement after buffer expansion, and the set of nodes that
// must not be coarsened in Pass 2 because they were just refined to shore
// up grading around a flagged cell.
func (m *Mesh) collectRefinements(criterion node.Criterion, maxDepth int) (toRefine, protected map[*node.Node]struct{}) {
	toRefine = make(map[*node.Node]struct{})
	protected = make(map[*node.Node]struct{})

	var leaves []*node.Node
	for l := range m.root.Leaves() {
		leaves = append(leaves, l)
	}

	for _, l := range leaves {
		if !criterion.Eval(l) {
			continue
		}
		if l.Level() < maxDepth {
			for _, b := range l.Buffer(bufferRadius) {
				if b.IsLeaf() && b.Level() < maxDepth && b.ShallRefine(node.Bypass) {
					b.Refine()
					protected[b] = struct{}{}
					continue
				}
				// b cannot be refined here — already a non-leaf (the
				// buffer sweep resolved to a coarser ancestor, itself
				// already shielding a fine zone), already at max_depth,
				// or grading rejects it. If b is already non-leaf, b
				// itself is the node whose children must not be erased
				// by Pass 2; otherwise b's parent is the fine zone's
				// shield. Protect whichever applies.
				if !b.IsLeaf() {
					protected[b] = struct{}{}
				} else if p := b.Parent(); p != nil {
					protected[p] = struct{}{}
				}
			}
		}
		if l.Level() < maxDepth && l.ShallRefine(criterion) {
			toRefine[l] = struct{}{}
		}
	}

	return toRefine, protected
}

// collectCoarsenings implements Pass 2: it re-enumerates the post-Pass-1
// leaf set, groups leaves by parent, and returns the parents eligible for
// coarsening (full sibling group of leaves, not in toRefine or protected,
// at or above min_depth, and criterion-eligible).
func (m *Mesh) collectCoarsenings(criterion node.Criterion, minDepth int, toRefine, protected map[*node.Node]struct{}) []*node.Node {
	groups := make(map[*node.Node][]*node.Node)
	for l := range m.root.Leaves() {
		if p := l.Parent(); p != nil {
			groups[p] = append(groups[p], l)
		}
	}

	var toCoarsen []*node.Node
	for p, children := range groups {
		if len(children) != 4 {
			continue
		}
		if _, blocked := toRefine[p]; blocked {
			continue
		}
		if _, blocked := protected[p]; blocked {
			continue
		}
		if p.Level() < minDepth {
			continue
		}
		if p.ShallCoarsen(criterion) {
			toCoarsen = append(toCoarsen, p)
		}
	}

	return toCoarsen
}
