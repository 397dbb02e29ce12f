package sortedlist

// nilNode is the offset of the reserved slot, it marks the end of a chain.
const nilNode uint32 = 0

// maxPresize bounds the capacity hint given to newArena, larger lists grow
// on demand.
const maxPresize = 1 << 16

// arena stores the nodes of a single list. Links are offsets into nodes and
// released slots are recycled before the slice grows.
type arena struct {
	nodes []node
	free  []uint32
}

func newArena(capacity uint32) *arena {
	nodes := make([]node, 1, int(min(capacity, maxPresize))+1)
	return &arena{nodes: nodes}
}

// alloc
func (a *arena) alloc(v Value, next uint32) uint32 {
	if n := len(a.free); n > 0 {
		off := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[off] = node{value: v, next: next}
		return off
	}
	a.nodes = append(a.nodes, node{value: v, next: next})
	return uint32(len(a.nodes) - 1)
}

// get
func (a *arena) get(off uint32) *node {
	return &a.nodes[off]
}

// release
func (a *arena) release(off uint32) {
	a.nodes[off] = node{}
	a.free = append(a.free, off)
}

// reset drops every node at once and keeps the allocated capacity.
func (a *arena) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = a.free[:0]
}

// live returns the number of slots in use.
func (a *arena) live() int {
	return len(a.nodes) - 1 - len(a.free)
}
