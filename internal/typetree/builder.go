// Package typetree builds the hierarchical view of candidate types
// consumed by the picker and its rendering layer.
//
// The tree is a pure value: it is rebuilt wholesale from the filtered
// descriptor list on every query change, never mutated incrementally.
package typetree

import "github.com/dshills/typepick/internal/catalog"

// Build transforms an ordered descriptor list into a forest of
// top-level nodes, grouping by namespace and enclosing-type chain.
//
// For each descriptor the breadcrumb segments except the last select
// or create grouping nodes (deduplicated by exact case-sensitive
// label); the final segment becomes a leaf carrying the descriptor.
// Nil descriptors and descriptors with no breadcrumb contribute
// nothing. Duplicate descriptors produce duplicate leaves in input
// order.
//
// Node IDs are assigned depth-first across the finished forest, so
// the same input always yields an identical tree.
func Build(descriptors []*catalog.Descriptor) []*Node {
	root := &Node{}

	for _, d := range descriptors {
		crumb := d.Breadcrumb()
		if len(crumb) == 0 {
			continue
		}

		parent := root
		for _, segment := range crumb[:len(crumb)-1] {
			parent = findOrCreateGroup(parent, segment)
		}

		parent.Children = append(parent.Children, &Node{
			Label:      crumb[len(crumb)-1],
			Descriptor: d,
		})
	}

	assignIDs(root.Children, 0)
	return root.Children
}

// findOrCreateGroup returns the grouping child of parent with the
// given label, creating and appending it when absent. Leaves are
// never reused as grouping nodes.
func findOrCreateGroup(parent *Node, label string) *Node {
	for _, child := range parent.Children {
		if child.Descriptor == nil && child.Label == label {
			return child
		}
	}
	group := &Node{Label: label}
	parent.Children = append(parent.Children, group)
	return group
}

func assignIDs(nodes []*Node, next int) int {
	for _, n := range nodes {
		n.ID = next
		next++
		next = assignIDs(n.Children, next)
	}
	return next
}
