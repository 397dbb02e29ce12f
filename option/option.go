package option

// Option for SortedLinkedList.
type Option struct {
	// Kind is the element type, "string" or "integer".
	Kind string

	// Capacity is the number of nodes preallocated by the list.
	Capacity uint32
}

// DefaultOption
var DefaultOption = &Option{
	Kind:     "integer",
	Capacity: 16,
}
