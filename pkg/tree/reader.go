package tree

import "github.com/treescope/treescope/pkg/tree/node"

// Reader is the read-only surface of a Tree needed for traversal.
type Reader interface {
	Roots() node.Nodes
	Children(n node.Node) node.Nodes
}
