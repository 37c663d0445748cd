package node

type Stack []Node

func (s *Stack) Size() int {
	return len(*s)
}

func (s *Stack) Push(n Node) {
	*s = append(*s, n)
}

func (s *Stack) Pop() Node {
	if len(*s) == 0 {
		return nil
	}
	n := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return n
}
