package node

// Node is a single addressable member of a tree.
type Node interface {
	ID() ID
}

type Nodes []Node

func (n Nodes) Len() int {
	return len(n)
}

func (n Nodes) Swap(i, j int) {
	n[i], n[j] = n[j], n[i]
}

func (n Nodes) Less(i, j int) bool {
	return n[i].ID() < n[j].ID()
}
