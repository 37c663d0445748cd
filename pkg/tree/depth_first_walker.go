package tree

import (
	"sort"

	"github.com/treescope/treescope/pkg/tree/node"
)

// DepthFirstWalker implements stateful depth-first tree traversal.
type DepthFirstWalker struct {
	visitor    NodeVisitor
	tree       Reader
	stack      node.Stack
	visited    node.Set
	conditions WalkConditions
	sorter     ChildSorter
}

func NewDepthFirstWalker(reader Reader, visitor NodeVisitor) *DepthFirstWalker {
	return &DepthFirstWalker{
		visitor: visitor,
		tree:    reader,
		visited: node.NewIDSet(),
	}
}

func NewDepthFirstWalkerWithConditions(reader Reader, visitor NodeVisitor, conditions WalkConditions) *DepthFirstWalker {
	return &DepthFirstWalker{
		visitor:    visitor,
		tree:       reader,
		visited:    node.NewIDSet(),
		conditions: conditions,
	}
}

// NewDepthFirstWalkerWithSorter walks children in the order imposed by the given sorter rather
// than ascending node ID.
func NewDepthFirstWalkerWithSorter(reader Reader, visitor NodeVisitor, sorter ChildSorter) *DepthFirstWalker {
	return &DepthFirstWalker{
		visitor: visitor,
		tree:    reader,
		visited: node.NewIDSet(),
		sorter:  sorter,
	}
}

func (w *DepthFirstWalker) Walk(from node.Node) node.Node {
	w.stack.Push(from)

	for w.stack.Size() > 0 {
		current := w.stack.Pop()
		if w.conditions.ShouldTerminate != nil && w.conditions.ShouldTerminate(current) {
			return current
		}
		cid := current.ID()

		// visit
		if w.visitor != nil && !w.visited.Contains(cid) {
			if w.conditions.ShouldVisit == nil || w.conditions.ShouldVisit(current) {
				w.visitor(current)
				w.visited.Add(cid)
			}
		}

		if w.conditions.ShouldContinueBranch != nil && !w.conditions.ShouldContinueBranch(current) {
			continue
		}

		// enqueue children in walk order (the stack reverses, so push the last child first)
		children := w.tree.Children(current)
		if w.sorter != nil {
			w.sorter(children)
		} else {
			sort.Sort(children)
		}
		for i := len(children) - 1; i >= 0; i-- {
			w.stack.Push(children[i])
		}
	}

	return nil
}

func (w *DepthFirstWalker) WalkAll() {
	for _, from := range w.tree.Roots() {
		w.Walk(from)
	}
}

func (w *DepthFirstWalker) Visited(n node.Node) bool {
	return w.visited.Contains(n.ID())
}
