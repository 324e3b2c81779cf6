package node_test

import (
	"fmt"

	"github.com/dij0s/amr/node"
)

// ExampleNode_Refine demonstrates subdividing a root cell and reading back
// the mean-preserved parent value.
func ExampleNode_Refine() {
	root := node.NewRoot(4.0, node.Origin{})
	i := 0.0
	root.RefineWithGenerator(func() float64 {
		i++
		return i
	})

	fmt.Println(root.Value())
	for _, o := range []node.Origin{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		fmt.Println(o, root.Child(o).Value())
	}
	// Output:
	// 2.5
	// {0 0} 1
	// {0 1} 2
	// {1 0} 3
	// {1 1} 4
}

// ExampleNode_Neighbor demonstrates locating a same-level sibling across a
// shared face.
func ExampleNode_Neighbor() {
	root := node.NewRoot(0, node.Origin{})
	root.RefineWithGenerator(func() float64 { return 0 })

	c00 := root.Child(node.Origin{X: 0, Y: 0})
	right := c00.Neighbor(node.Right)
	fmt.Println(right.Origin())
	// Output:
	// {1 0}
}

// ExampleNode_Leaves demonstrates the deterministic depth-first leaf order.
func ExampleNode_Leaves() {
	root := node.NewRoot(0, node.Origin{})
	i := 0.0
	root.RefineWithGenerator(func() float64 {
		i++
		return i
	})

	for leaf := range root.Leaves() {
		fmt.Println(leaf.Value())
	}
	// Output:
	// 1
	// 2
	// 3
	// 4
}
