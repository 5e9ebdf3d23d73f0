package cowlist

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.cowl.sh/pkg/tt"
)

func TestScenario(t *testing.T) {
	var l List[int]
	l.Append(1)
	l.Append(2)
	l.Append(3)
	checkValues(t, &l, 1, 2, 3)

	v, ok := l.Pop()
	if v != 1 || !ok {
		t.Errorf("Pop() -> (%v, %v), want (1, true)", v, ok)
	}
	checkValues(t, &l, 2, 3)

	l.Push(0)
	checkValues(t, &l, 0, 2, 3)

	l.Reverse()
	checkValues(t, &l, 3, 2, 0)
}

func TestPushAndAppendOrder(t *testing.T) {
	var l List[string]
	l.Push("b")
	l.Append("c")
	l.Push("a")
	l.Append("d")
	checkValues(t, &l, "a", "b", "c", "d")
}

func TestPushThenPop(t *testing.T) {
	for _, values := range [][]int{nil, {1}, {1, 2, 3}} {
		l := New(values...)
		l.Push(42)
		v, ok := l.Pop()
		if v != 42 || !ok {
			t.Errorf("Pop() after Push(42) -> (%v, %v)", v, ok)
		}
		checkValues(t, l, values...)
	}
}

func TestAppendThenRemoveLast(t *testing.T) {
	for _, values := range [][]int{nil, {1}, {1, 2, 3}} {
		l := New(values...)
		l.Append(42)
		v, ok := l.RemoveLast()
		if v != 42 || !ok {
			t.Errorf("RemoveLast() after Append(42) -> (%v, %v)", v, ok)
		}
		checkValues(t, l, values...)
		// The tail must have been moved back too.
		l.Append(43)
		if got := l.Tail().Value(); got != 43 {
			t.Errorf("Tail().Value() -> %v, want 43", got)
		}
	}
}

func TestEmptyList(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() || l.Len() != 0 {
		t.Errorf("zero List is not empty")
	}
	if v, ok := l.Pop(); ok {
		t.Errorf("Pop() on empty list -> (%v, true)", v)
	}
	if v, ok := l.RemoveLast(); ok {
		t.Errorf("RemoveLast() on empty list -> (%v, true)", v)
	}
	if n := l.Node(0); n != nil {
		t.Errorf("Node(0) on empty list -> %v", n)
	}
	if n := l.Middle(); n != nil {
		t.Errorf("Middle() on empty list -> %v", n)
	}
	if l.Head() != nil || l.Tail() != nil {
		t.Errorf("empty list has head or tail")
	}
}

func TestPopUntilEmpty(t *testing.T) {
	l := New(1, 2)
	l.Pop()
	l.Pop()
	if !l.IsEmpty() || l.Tail() != nil {
		t.Errorf("list not empty after popping all values")
	}
	l.Append(3)
	checkValues(t, l, 3)
	if l.Head() != l.Tail() {
		t.Errorf("head and tail differ in single-value list")
	}
}

func TestNode(t *testing.T) {
	l := New("a", "b", "c")
	nodeValue := func(i int) (string, bool) {
		n := l.Node(i)
		if n == nil {
			return "", false
		}
		return n.Value(), true
	}
	tt.Test(t, tt.Fn("Node", nodeValue), tt.Table{
		tt.Args(0).Rets("a", true),
		tt.Args(2).Rets("c", true),
		tt.Args(3).Rets("", false),
		tt.Args(100).Rets("", false),
		tt.Args(-1).Rets("", false),
	})
}

func TestMiddle(t *testing.T) {
	middle := func(values []int) (int, bool) {
		n := New(values...).Middle()
		if n == nil {
			return 0, false
		}
		return n.Value(), true
	}
	tt.Test(t, tt.Fn("Middle", middle), tt.Table{
		tt.Args([]int{1, 2, 3, 4, 5}).Rets(3, true),
		tt.Args([]int{1, 2, 3, 4}).Rets(3, true),
		tt.Args([]int{1, 2}).Rets(2, true),
		tt.Args([]int{1}).Rets(1, true),
		tt.Args([]int{}).Rets(0, false),
	})
}

func TestReverseTwiceRestoresOrder(t *testing.T) {
	for _, values := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4, 5}} {
		l := New(values...)
		l.Reverse()
		want := make([]int, len(values))
		for i, v := range values {
			want[len(values)-1-i] = v
		}
		checkValues(t, l, want...)
		l.Reverse()
		checkValues(t, l, values...)
	}
}

func TestReverseUpdatesTail(t *testing.T) {
	l := New(1, 2, 3)
	l.Reverse()
	l.Append(4)
	checkValues(t, l, 3, 2, 1, 4)
}

func TestInsertAfter(t *testing.T) {
	l := New(1, 2, 4)
	n, err := l.InsertAfter(l.Node(1), 3)
	if err != nil || n.Value() != 3 {
		t.Errorf("InsertAfter(node 1, 3) -> (%v, %v)", n, err)
	}
	checkValues(t, l, 1, 2, 3, 4)

	n, err = l.InsertAfter(l.Tail(), 5)
	if err != nil || n != l.Tail() {
		t.Errorf("InsertAfter(tail, 5) -> (%v, %v), want the new tail", n, err)
	}
	checkValues(t, l, 1, 2, 3, 4, 5)
	if l.Len() != 5 {
		t.Errorf("Len() -> %d, want 5", l.Len())
	}
}

func TestRemoveAfter(t *testing.T) {
	l := New(1, 2, 3, 4)

	v, ok, err := l.RemoveAfter(l.Node(1))
	if v != 3 || !ok || err != nil {
		t.Errorf("RemoveAfter(node 1) -> (%v, %v, %v), want (3, true, nil)", v, ok, err)
	}
	checkValues(t, l, 1, 2, 4)

	// Removing the tail moves the tail back.
	v, ok, err = l.RemoveAfter(l.Node(1))
	if v != 4 || !ok || err != nil {
		t.Errorf("RemoveAfter(node 1) -> (%v, %v, %v), want (4, true, nil)", v, ok, err)
	}
	checkValues(t, l, 1, 2)
	if l.Tail().Value() != 2 {
		t.Errorf("tail not updated after removing the last node")
	}

	// Nothing after the tail.
	v, ok, err = l.RemoveAfter(l.Tail())
	if ok || err != nil {
		t.Errorf("RemoveAfter(tail) -> (%v, %v, %v), want (0, false, nil)", v, ok, err)
	}
	checkValues(t, l, 1, 2)
}

func TestForeignNodes(t *testing.T) {
	l := New(1, 2, 3)
	other := New(1, 2, 3)
	removedList := New(1, 2)
	removed := removedList.Head()
	removedList.Pop()

	for _, tc := range []struct {
		name string
		node *Node[int]
	}{
		{"nil", nil},
		{"node of another list", other.Node(1)},
		{"removed node", removed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.InsertAfter(tc.node, 9); !errors.Is(err, ErrForeignNode) {
				t.Errorf("InsertAfter -> error %v, want ErrForeignNode", err)
			}
			if _, _, err := l.RemoveAfter(tc.node); !errors.Is(err, ErrForeignNode) {
				t.Errorf("RemoveAfter -> error %v, want ErrForeignNode", err)
			}
			checkValues(t, l, 1, 2, 3)
			checkValues(t, other, 1, 2, 3)
		})
	}
}

func TestNodeFromDivergedCloneIsForeign(t *testing.T) {
	a := New(1, 2, 3)
	b := a.Clone()
	n := a.Node(0)
	b.Push(0)

	// b now has its own nodes, so n does not belong to it.
	if _, err := b.InsertAfter(n, 9); !errors.Is(err, ErrForeignNode) {
		t.Errorf("InsertAfter with node from a -> %v, want ErrForeignNode", err)
	}
	// a still owns n.
	if _, err := a.InsertAfter(n, 9); err != nil {
		t.Errorf("InsertAfter with node from a on a -> %v", err)
	}
	checkValues(t, a, 1, 9, 2, 3)
	checkValues(t, b, 0, 1, 2, 3)
}

func TestString(t *testing.T) {
	tt.Test(t, tt.Fn("String", func(l *List[int]) string { return l.String() }), tt.Table{
		tt.Args(New[int]()).Rets("Empty list"),
		tt.Args(New(1)).Rets("1"),
		tt.Args(New(1, 2, 3)).Rets("1 -> 2 -> 3"),
	})
	if s := New("a", "b").Node(1).String(); s != "b" {
		t.Errorf("String of last node -> %q, want %q", s, "b")
	}
}

func TestWriteReverse(t *testing.T) {
	var sb strings.Builder
	err := New(1, 2, 3).WriteReverse(&sb)
	if err != nil {
		t.Errorf("WriteReverse -> error %v", err)
	}
	if got := sb.String(); got != "3\n2\n1\n" {
		t.Errorf("WriteReverse writes %q, want %q", got, "3\n2\n1\n")
	}

	sb.Reset()
	New[int]().WriteReverse(&sb)
	if sb.Len() != 0 {
		t.Errorf("WriteReverse of empty list writes %q", sb.String())
	}
}

func TestWriteReverse_LongList(t *testing.T) {
	const n = 1 << 20
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Push(i)
	}
	var buf bytes.Buffer
	if err := l.WriteReverse(&buf); err != nil {
		t.Fatalf("WriteReverse -> error %v", err)
	}
	if !strings.HasPrefix(buf.String(), "0\n1\n2\n") {
		t.Errorf("WriteReverse writes %q...", buf.String()[:10])
	}
}

var errWrite = errors.New("cannot write")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteReverse_WriteError(t *testing.T) {
	err := New(1).WriteReverse(failingWriter{})
	if err != errWrite {
		t.Errorf("WriteReverse -> error %v, want %v", err, errWrite)
	}
}

func TestRelease(t *testing.T) {
	a := New(1, 2)
	b := a.Clone()
	b.Release()
	if !b.IsEmpty() {
		t.Errorf("list not empty after Release")
	}
	if a.Shared() {
		t.Errorf("list still shared after its clone is released")
	}
	head := a.Head()
	a.Push(0)
	if a.Node(1) != head {
		t.Errorf("Push copied nodes after the only other owner was released")
	}
}

func checkValues[T any](t *testing.T, l *List[T], want ...T) {
	t.Helper()
	if want == nil {
		want = []T{}
	}
	if diff := cmp.Diff(want, l.Slice()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if l.Len() != len(want) {
		t.Errorf("Len() -> %d, want %d", l.Len(), len(want))
	}
	checkInvariants(t, l)
}

// Checks that the tail is reachable from the head and is the last node.
func checkInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if (l.head == nil) != (l.tail == nil) {
		t.Errorf("head is %v but tail is %v", l.head, l.tail)
		return
	}
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		last = n
		if n.chain != l.chain {
			t.Errorf("node %v belongs to another chain", n.value)
		}
	}
	if last != l.tail {
		t.Errorf("tail is not the last node")
	}
}
