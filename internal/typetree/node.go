package typetree

import "github.com/dshills/typepick/internal/catalog"

// Node is one row of the display hierarchy. Grouping nodes represent
// a namespace or enclosing-type segment and never carry a descriptor;
// leaf nodes carry exactly one descriptor and never have children.
type Node struct {
	// ID is a depth-first-unique integer assigned during Build.
	ID int

	// Label is the display text for the row.
	Label string

	// Descriptor is the associated type for leaf nodes, nil for
	// grouping nodes.
	Descriptor *catalog.Descriptor

	// Children are the ordered child nodes. Always nil for leaves.
	Children []*Node
}

// IsLeaf reports whether the node represents a selectable type.
func (n *Node) IsLeaf() bool {
	return n.Descriptor != nil
}

// Walk visits the node and its subtree depth-first in child order.
// Visiting stops early when visit returns false.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Walk visits every node of a forest depth-first in order.
// Visiting stops early when visit returns false.
func Walk(roots []*Node, visit func(*Node) bool) {
	for _, root := range roots {
		if !root.Walk(visit) {
			return
		}
	}
}

// Count returns the total number of nodes in the forest.
func Count(roots []*Node) int {
	n := 0
	Walk(roots, func(*Node) bool {
		n++
		return true
	})
	return n
}

// Find returns the node with the given ID, or nil when absent.
func Find(roots []*Node, id int) *Node {
	var found *Node
	Walk(roots, func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
