package list

// node is a list node. It is owned by its predecessor.
type node[V any] struct {
	next  *node[V]
	value V
}

// link inserts s after n.
func (n *node[V]) link(s *node[V]) {
	s.next = n.next
	n.next = s
}

// unlink removes the node after n and returns it detached.
func (n *node[V]) unlink() *node[V] {
	s := n.next
	n.next = s.next
	s.next = nil
	return s
}

// release drops everything the detached node references.
func (n *node[V]) release() V {
	v := n.value
	var zero V
	n.value = zero
	return v
}
