package node

// Origin is the integer-scaled position of a cell within its parent. Each
// coordinate is in {0, 1}; the root's origin is conventionally {0, 0}.
type Origin struct {
	X, Y int
}

// Direction identifies one of the four cardinal faces of a cell. UP
// decreases Y: this matches raster/image row order (and VTK output), the
// opposite of mathematical convention.
type Direction int

const (
	// Right moves toward increasing X.
	Right Direction = iota
	// Left moves toward decreasing X.
	Left
	// Up moves toward decreasing Y.
	Up
	// Down moves toward increasing Y.
	Down
)

// String renders the cardinal direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return "UNKNOWN"
	}
}

// cardinalDirections is the fixed iteration order used by ShallRefine and
// ShallCoarsen.
var cardinalDirections = [4]Direction{Right, Left, Up, Down}

// childOrder is the fixed depth-first iteration order used by Leaves,
// Inject, and the Refine family; it is the order the leaf-ordering tests
// assert.
var childOrder = [4]Origin{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// AbsoluteOrigin is the rational position of a cell in the unit square,
// in [0, 1) component-wise for any leaf of a tree whose root origin is
// {0, 0} (see Node.AbsoluteOrigin).
type AbsoluteOrigin struct {
	X, Y float64
}

// Criterion produces a boolean verdict for a node: "should this cell be
// refined". Implementations live in package refinement; Node only depends
// on this one-method interface to avoid importing refinement (which itself
// depends on node.Node).
type Criterion interface {
	Eval(n *Node) bool
}

// bypassCriterion always accepts, letting ShallRefine enforce only the
// grading constraint against its neighbors.
type bypassCriterion struct{}

func (bypassCriterion) Eval(*Node) bool { return true }

// Bypass is a Criterion that always accepts. The refine/coarsen scheduler
// uses it during buffer-zone expansion, where only the grading invariant
// (not the caller's own criterion) should gate whether a neighbor refines.
var Bypass Criterion = bypassCriterion{}

// Node is a single cell of the mesh tree. Zero value is not meaningful;
// construct via NewRoot or through Refine/RefineWithGenerator on an
// existing node.
type Node struct {
	value    float64
	level    int
	origin   Origin
	parent   *Node
	children map[Origin]*Node

	absOrigin AbsoluteOrigin // cached at construction, never mutated (I5)
	gradient  float64        // last computed relative gradient; telemetry only
}

// NewRoot creates a level-0 node with no parent. Its absolute origin equals
// its origin (the implicit parent absolute origin is the zero point).
func NewRoot(value float64, origin Origin) *Node {
	return &Node{
		value:     value,
		level:     0,
		origin:    origin,
		absOrigin: AbsoluteOrigin{X: float64(origin.X), Y: float64(origin.Y)},
	}
}

// Value returns the cell-centered scalar field sample.
func (n *Node) Value() float64 { return n.value }

// SetValue overwrites the scalar field sample. Used by numerical schemes
// and injection functions; refine/coarsen manage value transfer themselves.
func (n *Node) SetValue(v float64) { n.value = v }

// Level returns the depth from the root; the root is at level 0.
func (n *Node) Level() int { return n.level }

// Origin returns the in-parent coordinate.
func (n *Node) Origin() Origin { return n.origin }

// Parent returns the non-owning back-reference, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether n has no children. O(1).
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Child returns the child at the given in-parent origin, or nil if n is a
// leaf or has no child at that origin.
func (n *Node) Child(o Origin) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[o]
}

// Children returns the 4 children keyed by in-parent origin, or an empty
// map for a leaf. The returned map is owned by n; callers must not mutate
// it.
func (n *Node) Children() map[Origin]*Node { return n.children }

// AbsoluteOrigin returns the cached rational position of this cell in the
// unit square (I5: reflects the parent chain at construction time, never
// mutated afterward).
func (n *Node) AbsoluteOrigin() AbsoluteOrigin { return n.absOrigin }

// AbsoluteCenteredOrigin returns the absolute origin of this cell's center,
// used by value-dependent injection functions that need a spatial
// coordinate rather than a corner.
func (n *Node) AbsoluteCenteredOrigin() AbsoluteOrigin {
	half := halfCellSize(n.level)
	return AbsoluteOrigin{X: n.absOrigin.X + half, Y: n.absOrigin.Y + half}
}

// Gradient returns the last relative gradient computed by a Gradient
// refinement criterion. Debug/telemetry only; not part of solver state.
func (n *Node) Gradient() float64 { return n.gradient }

// SetGradient stores the last computed relative gradient. Called by
// refinement criteria as a side effect of Eval.
func (n *Node) SetGradient(g float64) { n.gradient = g }
