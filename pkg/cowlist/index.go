package cowlist

import "iter"

// Index is a position in a list: either one of its nodes, or the end of the
// list. The zero value is the end position.
//
// An Index is only valid until the list is modified.
type Index[T any] struct {
	node *Node[T]
}

// Start returns the position of the first value of l, which is End() if l is
// empty.
func (l *List[T]) Start() Index[T] { return Index[T]{l.head} }

// End returns the position after the last value of l.
func (l *List[T]) End() Index[T] { return Index[T]{} }

// Next returns the position after i. The position after the end is the end.
func (i Index[T]) Next() Index[T] {
	if i.node == nil {
		return i
	}
	return Index[T]{i.node.next}
}

// AtEnd reports whether i is the end position.
func (i Index[T]) AtEnd() bool { return i.node == nil }

// Node returns the node at i, or nil at the end position.
func (i Index[T]) Node() *Node[T] { return i.node }

// Value returns the value at i. It panics if i is the end position.
func (i Index[T]) Value() T {
	if i.node == nil {
		panic("cowlist: Value called on end position")
	}
	return i.node.value
}

// Equal reports whether i and j are the same position.
func (i Index[T]) Equal(j Index[T]) bool { return i.node == j.node }

// Before reports whether i is strictly before j, that is, whether j can be
// reached by advancing i at least once. It walks the nodes after i, so it
// takes O(n) time.
func (i Index[T]) Before(j Index[T]) bool {
	if i.node == nil || i.node == j.node {
		return false
	}
	if j.node == nil {
		return true
	}
	for n := i.node.next; n != nil; n = n.next {
		if n == j.node {
			return true
		}
	}
	return false
}

// All returns an iterator over the values of l, from first to last. The
// iterator can be used multiple times as long as l is not modified in
// between.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.Start(); !i.AtEnd(); i = i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}
