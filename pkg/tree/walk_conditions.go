package tree

import "github.com/treescope/treescope/pkg/tree/node"

type WalkConditions struct {
	// Return true when the walker should stop traversing entirely.
	ShouldTerminate func(node.Node) bool

	// Whether we should visit the current node. Note: this will continue down the tree even if
	// the current node is not visited.
	ShouldVisit func(node.Node) bool

	// Whether we should consider children of this node for future visits.
	ShouldContinueBranch func(node.Node) bool
}
