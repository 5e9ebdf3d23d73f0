// Package cowlist implements a singly-linked list with value semantics.
//
// Cloning a list is O(1): the clone shares all the nodes of the original.
// The first modification of either list copies the nodes, so that changes to
// one list are never visible through another:
//
//	a := cowlist.New(1, 2, 3)
//	b := a.Clone() // a and b share nodes
//	b.Push(0)      // b copies the nodes before pushing
//	// a is [1 2 3], b is [0 1 2 3]
//
// Lists are not safe for concurrent modification.
package cowlist

import (
	"errors"
	"fmt"
	"io"

	"src.cowl.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[cowlist] ")

// ErrForeignNode is returned when a node argument does not belong to the
// current chain of the list. This is the case for nodes of other lists, nodes
// that have been removed, and nodes obtained before the list copied its chain.
var ErrForeignNode = errors.New("node does not belong to the list")

// List is a singly-linked list with value semantics. The zero value is an
// empty list ready to use.
//
// A List must not be copied by assignment, since the copy would share nodes
// without knowing about it; use Clone instead.
type List[T any] struct {
	noCopy noCopy

	head  *Node[T]
	tail  *Node[T]
	chain *chain
	len   int
}

// noCopy makes go vet's copylocks check report copies of List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns a list containing the given values.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Clone returns a list with the same values as l. The new list shares the
// nodes of l until either of them is modified.
func (l *List[T]) Clone() *List[T] {
	if l.head == nil {
		return &List[T]{}
	}
	l.chain.owners++
	return &List[T]{head: l.head, tail: l.tail, chain: l.chain, len: l.len}
}

// Release empties l and gives up its share of the nodes. If exactly one other
// list shared the nodes with l, that list can then modify them without
// copying.
func (l *List[T]) Release() {
	if l.chain != nil {
		l.chain.owners--
	}
	l.head, l.tail, l.chain, l.len = nil, nil, nil, 0
}

// Len returns the number of values in l.
func (l *List[T]) Len() int { return l.len }

// IsEmpty reports whether l has no values.
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Head returns the first node, or nil if l is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil if l is empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Shared reports whether l currently shares its nodes with another list, in
// which case the next modification of l copies them.
func (l *List[T]) Shared() bool {
	return l.chain != nil && l.chain.owners > 1
}

// SharesWith reports whether l and other are backed by the same nodes.
func (l *List[T]) SharesWith(other *List[T]) bool {
	return l.head != nil && l.head == other.head
}

// Push inserts v at the front of l.
func (l *List[T]) Push(v T) {
	l.unshare()
	l.head = &Node[T]{value: v, next: l.head, chain: l.chain}
	if l.tail == nil {
		l.tail = l.head
	}
	l.len++
}

// Append inserts v at the end of l.
func (l *List[T]) Append(v T) {
	l.unshare()
	if l.head == nil {
		l.Push(v)
		return
	}
	n := &Node[T]{value: v, chain: l.chain}
	l.tail.next = n
	l.tail = n
	l.len++
}

// Node returns the i-th node of l, counting from 0, or nil if there is no
// such node. It takes O(i) time.
func (l *List[T]) Node(i int) *Node[T] {
	if i < 0 {
		return nil
	}
	n := l.head
	for ; i > 0 && n != nil; i-- {
		n = n.next
	}
	return n
}

// InsertAfter inserts v after the node n and returns the new node. It returns
// ErrForeignNode if n is not a node of l.
//
// If l shares its nodes, n is mapped to the corresponding node of the copy.
func (l *List[T]) InsertAfter(n *Node[T], v T) (*Node[T], error) {
	if !l.owns(n) {
		return nil, ErrForeignNode
	}
	n = l.unshareMapping(n)
	if n == l.tail {
		l.Append(v)
		return l.tail, nil
	}
	n.next = &Node[T]{value: v, next: n.next, chain: l.chain}
	l.len++
	return n.next, nil
}

// Pop removes the first value of l and returns it. It returns false if l is
// empty.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	l.unshare()
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.len--
	n.detach()
	return n.value, true
}

// RemoveLast removes the last value of l and returns it. It returns false if
// l is empty. It takes O(n) time, since the node before the tail has to be
// found by walking from the head.
func (l *List[T]) RemoveLast() (T, bool) {
	if l.head == nil || l.head.next == nil {
		return l.Pop()
	}
	l.unshare()
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	n := l.tail
	prev.next = nil
	l.tail = prev
	l.len--
	n.detach()
	return n.value, true
}

// RemoveAfter removes the value after the node n and returns it. It returns
// false if n is the last node, and ErrForeignNode if n is not a node of l.
func (l *List[T]) RemoveAfter(n *Node[T]) (T, bool, error) {
	var zero T
	if !l.owns(n) {
		return zero, false, ErrForeignNode
	}
	if n.next == nil {
		return zero, false, nil
	}
	n = l.unshareMapping(n)
	removed := n.next
	if removed == l.tail {
		l.tail = n
	}
	n.next = removed.next
	l.len--
	removed.detach()
	return removed.value, true, nil
}

// Reverse reverses l in place.
func (l *List[T]) Reverse() {
	if l.head == nil {
		return
	}
	l.unshare()
	var prev *Node[T]
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head, l.tail = l.tail, l.head
}

// Middle returns the middle node of l, or nil if l is empty. For a list with
// an even number of values, it returns the first node of the second half.
func (l *List[T]) Middle() *Node[T] {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		fast = fast.next.next
		slow = slow.next
	}
	return slow
}

// WriteReverse writes the values of l to w from last to first, one per line.
func (l *List[T]) WriteReverse(w io.Writer) error {
	values := l.Slice()
	for i := len(values) - 1; i >= 0; i-- {
		if _, err := fmt.Fprintln(w, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Slice returns the values of l in a new slice.
func (l *List[T]) Slice() []T {
	values := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// String renders l like "1 -> 2 -> 3", or "Empty list" if l is empty.
func (l *List[T]) String() string {
	if l.head == nil {
		return "Empty list"
	}
	return l.head.String()
}
