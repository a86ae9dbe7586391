package tui

import "github.com/dshills/typepick/internal/typetree"

// Row is one visible line of the tree view.
type Row struct {
	// Node is the tree node the row displays.
	Node *typetree.Node

	// Depth is the indentation level, 0 for top-level nodes.
	Depth int

	// Path identifies the node across rebuilds: the labels from the
	// root joined with '/'. Used to key collapse state, which must
	// survive the wholesale tree rebuild on every query change.
	Path string

	// Expanded is true for a grouping row whose children are shown.
	Expanded bool
}

// IsGroup reports whether the row can be expanded or collapsed.
func (r Row) IsGroup() bool {
	return !r.Node.IsLeaf()
}

// flatten produces the visible rows for a forest, skipping the
// subtrees of collapsed grouping nodes. Grouping nodes are unique by
// label among siblings, so a label path identifies them stably.
func flatten(roots []*typetree.Node, collapsed map[string]bool) []Row {
	var rows []Row
	var walk func(nodes []*typetree.Node, depth int, prefix string)
	walk = func(nodes []*typetree.Node, depth int, prefix string) {
		for _, n := range nodes {
			path := prefix + n.Label
			row := Row{
				Node:  n,
				Depth: depth,
				Path:  path,
			}
			if !n.IsLeaf() {
				row.Expanded = !collapsed[path]
			}
			rows = append(rows, row)
			if row.Expanded {
				walk(n.Children, depth+1, path+"/")
			}
		}
	}
	walk(roots, 0, "")
	return rows
}
