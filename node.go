package sortedlist

// node holds one value and the arena offset of the next node.
type node struct {
	value Value
	next  uint32
}

func (n *node) compare(v Value) (int, error) {
	return n.value.Compare(v)
}

func (n *node) compareNode(o *node) (int, error) {
	return n.compare(o.value)
}
