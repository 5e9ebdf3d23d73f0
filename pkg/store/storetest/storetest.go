// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.cowl.sh/pkg/cowlist"
	"src.cowl.sh/pkg/store/storedefs"
)

var (
	cmds     = []string{"new a", "push a 1", "append a 2", "print a"}
	wantCmds = []storedefs.Cmd{
		{Text: "new a", Seq: 1},
		{Text: "push a 1", Seq: 2},
		{Text: "append a 2", Seq: 3},
		{Text: "print a", Seq: 4}}
)

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> %v, %v, want %v, nil",
			startSeq, err, 1)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) -> %v, %v, want %v, nil",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> %v, %v, want %v, nil",
			endSeq, err, wantedEndSeq)
	}

	// Cmd
	for i, wantCmd := range cmds {
		seq := i + startSeq
		cmd, err := store.Cmd(seq)
		if cmd != wantCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> %v, %v, want %v, nil",
				seq, cmd, err, wantCmd)
		}
	}
	if _, err := store.Cmd(endSeq); !errors.Is(err, storedefs.ErrNoMatchingCmd) {
		t.Errorf("store.Cmd(%v) -> error %v, want ErrNoMatchingCmd", endSeq, err)
	}

	// CmdsWithSeq
	for _, tc := range []struct {
		from, upto int
		want       []storedefs.Cmd
	}{
		{0, 100, wantCmds},
		{1, 3, wantCmds[:2]},
		{3, 5, wantCmds[2:]},
		{5, 10, nil},
	} {
		got, err := store.CmdsWithSeq(tc.from, tc.upto)
		if err != nil {
			t.Errorf("store.CmdsWithSeq(%v, %v) -> error %v", tc.from, tc.upto, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("store.CmdsWithSeq(%v, %v) (-want +got):\n%s", tc.from, tc.upto, diff)
		}
	}
}

// TestList tests the saved list functionality of a Store.
func TestList(t *testing.T, store storedefs.Store) {
	if names, err := store.ListNames(); len(names) != 0 || err != nil {
		t.Errorf("store.ListNames() -> %v, %v, want empty, nil", names, err)
	}

	b := cowlist.New("x", "y")
	a := cowlist.New[string]()
	for name, l := range map[string]*cowlist.List[string]{"b": b, "a": a} {
		if err := store.PutList(name, l); err != nil {
			t.Errorf("store.PutList(%q) -> error %v", name, err)
		}
	}

	names, err := store.ListNames()
	if err != nil {
		t.Errorf("store.ListNames() -> error %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("store.ListNames() (-want +got):\n%s", diff)
	}

	for name, want := range map[string][]string{"a": {}, "b": {"x", "y"}} {
		l, err := store.GetList(name)
		if err != nil {
			t.Errorf("store.GetList(%q) -> error %v", name, err)
			continue
		}
		if diff := cmp.Diff(want, l.Slice()); diff != "" {
			t.Errorf("store.GetList(%q) (-want +got):\n%s", name, diff)
		}
	}

	// Saving replaces.
	b.Push("w")
	store.PutList("b", b)
	if l, _ := store.GetList("b"); l == nil || l.Len() != 3 {
		t.Errorf("store.GetList(%q) after replacing -> %v", "b", l)
	}

	if err := store.DelList("a"); err != nil {
		t.Errorf("store.DelList(%q) -> error %v", "a", err)
	}
	if _, err := store.GetList("a"); !errors.Is(err, storedefs.ErrNoList) {
		t.Errorf("store.GetList of deleted list -> error %v, want ErrNoList", err)
	}
	if err := store.DelList("a"); !errors.Is(err, storedefs.ErrNoList) {
		t.Errorf("store.DelList of deleted list -> error %v, want ErrNoList", err)
	}
}
