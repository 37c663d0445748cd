package tree

import "github.com/treescope/treescope/pkg/tree/node"

// NodeVisitor is called once per node during a tree walk.
type NodeVisitor func(node.Node)

// ChildSorter orders the children of a node (in place) before they are walked. The default
// walk order is ascending node ID.
type ChildSorter func(nodes node.Nodes)
