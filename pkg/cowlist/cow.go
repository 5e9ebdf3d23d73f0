package cowlist

// Every method that modifies a list calls unshare or unshareMapping before
// touching any node. Nodes of a chain with more than one owner are never
// written to.
//
// A node whose chain field is c is reachable from the head of every list
// whose chain is c; unlinked nodes have their chain field cleared.

// unshare makes l the only owner of its nodes, copying them if needed.
func (l *List[T]) unshare() { l.unshareMapping(nil) }

// unshareMapping is like unshare, and also returns the node of l that
// corresponds to n after the copy. If no copy was made, it returns n itself.
func (l *List[T]) unshareMapping(n *Node[T]) *Node[T] {
	if l.chain == nil {
		l.chain = &chain{owners: 1}
		return n
	}
	if l.chain.owners <= 1 {
		return n
	}
	logger.Printf("copying %d shared nodes", l.len)
	l.chain.owners--
	c := &chain{owners: 1}
	var head, tail, mapped *Node[T]
	for old := l.head; old != nil; old = old.next {
		m := &Node[T]{value: old.value, chain: c}
		if tail == nil {
			head = m
		} else {
			tail.next = m
		}
		tail = m
		if old == n {
			mapped = m
		}
	}
	l.head, l.tail, l.chain = head, tail, c
	return mapped
}

// owns reports whether n is a node of l.
func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && l.chain != nil && n.chain == l.chain
}
