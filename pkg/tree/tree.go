package tree

import (
	"fmt"

	"github.com/treescope/treescope/pkg/tree/node"
)

// Tree represents a simple tree data structure.
type Tree struct {
	nodes    map[node.ID]node.Node
	children map[node.ID]map[node.ID]node.Node
	parent   map[node.ID]node.Node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{
		nodes:    make(map[node.ID]node.Node),
		children: make(map[node.ID]map[node.ID]node.Node),
		parent:   make(map[node.ID]node.Node),
	}
}

// Roots is all of the nodes with no parents.
func (t *Tree) Roots() node.Nodes {
	var nodes = make([]node.Node, 0)
	for _, n := range t.nodes {
		if parent := t.parent[n.ID()]; parent == nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// HasNode indicates if the given node ID exists in the tree.
func (t *Tree) HasNode(id node.ID) bool {
	return t.nodes[id] != nil
}

// Node returns a node object for the given ID.
func (t *Tree) Node(id node.ID) node.Node {
	return t.nodes[id]
}

// Nodes returns all nodes in the tree.
func (t *Tree) Nodes() node.Nodes {
	if len(t.nodes) == 0 {
		return nil
	}
	nodes := make([]node.Node, len(t.nodes))
	i := 0
	for _, n := range t.nodes {
		nodes[i] = n
		i++
	}

	return nodes
}

// Parent returns the parent of the given node, or nil for roots.
func (t *Tree) Parent(n node.Node) node.Node {
	return t.parent[n.ID()]
}

// Children returns all children of the given node.
func (t *Tree) Children(n node.Node) node.Nodes {
	children := make([]node.Node, 0, len(t.children[n.ID()]))
	for _, child := range t.children[n.ID()] {
		children = append(children, child)
	}
	return children
}

// addNode adds the node to the tree; returns an error on node ID collisions.
func (t *Tree) addNode(n node.Node) error {
	if _, exists := t.nodes[n.ID()]; exists {
		return fmt.Errorf("node ID collision: %+v", n.ID())
	}
	t.nodes[n.ID()] = n
	t.children[n.ID()] = make(map[node.ID]node.Node)
	t.parent[n.ID()] = nil
	return nil
}

// AddRoot adds a node to the tree (with no parent).
func (t *Tree) AddRoot(n node.Node) error {
	return t.addNode(n)
}

// AddChild adds a node to the tree under the given parent.
func (t *Tree) AddChild(from, to node.Node) error {
	var (
		fid = from.ID()
		tid = to.ID()
		err error
	)

	if fid == tid {
		return fmt.Errorf("should not add self edge")
	}

	if _, ok := t.nodes[fid]; !ok {
		err = t.addNode(from)
		if err != nil {
			return err
		}
	} else {
		t.nodes[fid] = from
	}
	if _, ok := t.nodes[tid]; !ok {
		err = t.addNode(to)
		if err != nil {
			return err
		}
	} else {
		t.nodes[tid] = to
	}

	t.children[fid][tid] = to
	t.parent[tid] = from
	return nil
}
