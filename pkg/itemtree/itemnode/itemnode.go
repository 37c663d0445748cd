package itemnode

import (
	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/tree/node"
)

// ItemNode is a single file or folder within an item tree.
type ItemNode struct {
	// Path is the full path of the node from the tree root, normalized to "/" separators.
	Path item.Path

	// RootedPath is the node's fully-qualified path as resolved by the project's rooting
	// capability, when known.
	RootedPath item.Path

	// ItemType is the project item type for the node ("Folder" for folders).
	ItemType string

	// Folder indicates the node may have children.
	Folder bool
}

func NewFolder(p item.Path) *ItemNode {
	return &ItemNode{
		Path:     p,
		ItemType: item.FolderType,
		Folder:   true,
	}
}

func NewFile(p item.Path, itemType string) *ItemNode {
	return &ItemNode{
		Path:     p,
		ItemType: itemType,
	}
}

// ID is the node's case-insensitive path identity within a tree.
func (n *ItemNode) ID() node.ID {
	return IDByPath(n.Path)
}

// Name is the node's own display name (its leaf name).
func (n *ItemNode) Name() string {
	return n.Path.Basename()
}

// Metadata is the property bag handed to order queries for this node, preferring the
// fully-qualified path when one was resolved.
func (n *ItemNode) Metadata() item.Metadata {
	fullPath := n.RootedPath
	if fullPath == "" {
		fullPath = n.Path
	}
	return item.Metadata{
		item.FullPathKey: string(fullPath),
	}
}

func IDByPath(p item.Path) node.ID {
	return node.ID(p.Key())
}
