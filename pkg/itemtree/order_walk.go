package itemtree

import (
	"sort"
	"strings"

	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/itemtree/itemnode"
	"github.com/treescope/treescope/pkg/tree"
	"github.com/treescope/treescope/pkg/tree/node"
	"github.com/treescope/treescope/pkg/treeorder"
)

// WalkByDisplayOrder visits every node depth-first with each node's children sorted by the
// given order index: assigned orders first (ascending), then folders the index has no opinion
// on, then unlisted files, with case-folded name as the tiebreak.
func (t *ItemTree) WalkByDisplayOrder(idx *treeorder.OrderIndex, visitor func(*itemnode.ItemNode)) {
	wrapped := func(n node.Node) {
		visitor(n.(*itemnode.ItemNode))
	}
	tree.NewDepthFirstWalkerWithSorter(t.tree, wrapped, displayOrderSorter(idx)).WalkAll()
}

func displayOrderSorter(idx *treeorder.OrderIndex) tree.ChildSorter {
	return func(nodes node.Nodes) {
		sort.SliceStable(nodes, func(i, j int) bool {
			a, b := nodes[i].(*itemnode.ItemNode), nodes[j].(*itemnode.ItemNode)
			ao, bo := displayOrderOf(idx, a), displayOrderOf(idx, b)
			if ao != bo {
				return ao < bo
			}
			if a.Folder != b.Folder {
				return a.Folder
			}
			return item.Fold(a.Name()) < item.Fold(b.Name())
		})
	}
}

func displayOrderOf(idx *treeorder.OrderIndex, n *itemnode.ItemNode) int {
	order, ok := idx.Evaluate(n.Name(), n.Folder, n.ItemType, n.Metadata())
	if !ok {
		// no opinion (folders the item list never mentions); sort with the end-of-list group
		return treeorder.MaxOrder
	}
	return order
}

// Render returns an indented text listing of the tree in display order, suitable for snapshot
// comparison. Folders carry a trailing separator.
func (t *ItemTree) Render(idx *treeorder.OrderIndex) string {
	var sb strings.Builder

	var walk func(n *itemnode.ItemNode, depth int)
	walk = func(n *itemnode.ItemNode, depth int) {
		name := n.Name()
		if name == "" {
			name = "/"
		} else if n.Folder {
			name += item.DirSeparator
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(name)
		sb.WriteString("\n")

		children := t.tree.Children(n)
		displayOrderSorter(idx)(children)
		for _, child := range children {
			walk(child.(*itemnode.ItemNode), depth+1)
		}
	}
	walk(t.Root(), 0)

	return sb.String()
}
