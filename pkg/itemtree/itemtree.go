package itemtree

import (
	"fmt"
	"strings"

	"github.com/scylladb/go-set/strset"

	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/itemtree/itemnode"
	"github.com/treescope/treescope/pkg/tree"
	"github.com/treescope/treescope/pkg/tree/node"
)

// ItemTree is a file/folder tree of project items, addressed case-insensitively by path.
type ItemTree struct {
	tree       *tree.Tree
	basenames  *strset.Set
	byBasename map[string][]node.ID
}

// New creates an ItemTree with a root "/" folder node.
func New() *ItemTree {
	t := tree.New()
	_ = t.AddRoot(itemnode.NewFolder("/"))

	return &ItemTree{
		tree:       t,
		basenames:  strset.New(),
		byBasename: make(map[string][]node.ID),
	}
}

// Root returns the tree's root folder node.
func (t *ItemTree) Root() *itemnode.ItemNode {
	return t.tree.Node(itemnode.IDByPath("/")).(*itemnode.ItemNode)
}

// HasPath indicates the given path exists in the tree (compared case-insensitively).
func (t *ItemTree) HasPath(p item.Path) bool {
	return t.tree.HasNode(itemnode.IDByPath(nodePath(p)))
}

// Node returns the node at the given path, or nil.
func (t *ItemTree) Node(p item.Path) *itemnode.ItemNode {
	n := t.tree.Node(itemnode.IDByPath(nodePath(p)))
	if n == nil {
		return nil
	}
	return n.(*itemnode.ItemNode)
}

// AddFolder adds a folder (and any missing ancestor folders) at the given path, returning the
// folder node. Adding an existing folder is a no-op returning the existing node.
func (t *ItemTree) AddFolder(p item.Path) (*itemnode.ItemNode, error) {
	segments := p.Segments()
	if len(segments) == 0 {
		return t.Root(), nil
	}

	parent := node.Node(t.Root())
	fullPath := ""
	for _, segment := range segments {
		fullPath += item.DirSeparator + segment

		if existing := t.Node(item.Path(fullPath)); existing != nil {
			if !existing.Folder {
				return nil, fmt.Errorf("path %q already exists in the tree as a file", fullPath)
			}
			parent = existing
			continue
		}

		n := itemnode.NewFolder(item.Path(fullPath))
		if err := t.tree.AddChild(parent, n); err != nil {
			return nil, err
		}
		parent = n
	}

	return parent.(*itemnode.ItemNode), nil
}

// AddFile adds a file (and any missing ancestor folders) at the given path, returning the file
// node. Adding an existing file is a no-op returning the existing node.
func (t *ItemTree) AddFile(p item.Path, itemType string) (*itemnode.ItemNode, error) {
	segments := p.Segments()
	if len(segments) == 0 {
		return nil, fmt.Errorf("cannot add file with empty path %q", string(p))
	}

	parent, err := t.AddFolder(item.Path(strings.Join(segments[:len(segments)-1], item.DirSeparator)))
	if err != nil {
		return nil, err
	}

	fullPath := item.Path(item.DirSeparator + strings.Join(segments, item.DirSeparator))
	if existing := t.Node(fullPath); existing != nil {
		if existing.Folder {
			return nil, fmt.Errorf("path %q already exists in the tree as a folder", fullPath)
		}
		return existing, nil
	}

	n := itemnode.NewFile(fullPath, itemType)
	if err := t.tree.AddChild(parent, n); err != nil {
		return nil, err
	}

	basename := item.Fold(n.Name())
	t.basenames.Add(basename)
	t.byBasename[basename] = append(t.byBasename[basename], n.ID())

	return n, nil
}

// AllFiles returns all file nodes, optionally limited to the given item types (compared
// case-insensitively).
func (t *ItemTree) AllFiles(types ...string) []*itemnode.ItemNode {
	typeSet := strset.New()
	for _, itemType := range types {
		typeSet.Add(item.Fold(itemType))
	}

	var files []*itemnode.ItemNode
	for _, n := range t.tree.Nodes() {
		in := n.(*itemnode.ItemNode)
		if in.Folder {
			continue
		}
		if !typeSet.IsEmpty() && !typeSet.Has(item.Fold(in.ItemType)) {
			continue
		}
		files = append(files, in)
	}
	return files
}

// Walk visits every node depth-first in ascending path order.
func (t *ItemTree) Walk(visitor func(*itemnode.ItemNode), conditions *tree.WalkConditions) {
	wrapped := func(n node.Node) {
		visitor(n.(*itemnode.ItemNode))
	}
	if conditions != nil {
		tree.NewDepthFirstWalkerWithConditions(t.tree, wrapped, *conditions).WalkAll()
		return
	}
	tree.NewDepthFirstWalker(t.tree, wrapped).WalkAll()
}

// nodePath is the canonical in-tree form of a path: "/"-separated with a leading separator.
func nodePath(p item.Path) item.Path {
	segments := p.Segments()
	if len(segments) == 0 {
		return "/"
	}
	return item.Path(item.DirSeparator + strings.Join(segments, item.DirSeparator))
}
