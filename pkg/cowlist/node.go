package cowlist

import (
	"fmt"
	"strings"
)

// Node is a cell in the chain of a List. A node may be shared by several
// lists, so it can only be read through a Node reference; use the methods of
// List to modify a list.
type Node[T any] struct {
	value T
	next  *Node[T]
	// The chain the node belongs to, or nil after the node has been unlinked.
	chain *chain
}

// chain identifies a chain of nodes. It is shared by all the lists that own
// the chain; owners counts them.
type chain struct {
	owners int
}

// Value returns the value held in the node.
func (n *Node[T]) Value() T { return n.value }

// Next returns the node after n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] { return n.next }

// String renders n and all the nodes after it, like "1 -> 2 -> 3".
func (n *Node[T]) String() string {
	var sb strings.Builder
	for m := n; m != nil; m = m.next {
		if m != n {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, m.value)
	}
	return sb.String()
}

func (n *Node[T]) detach() {
	n.next = nil
	n.chain = nil
}
