package script

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"src.cowl.sh/pkg/cowlist"
)

type command struct {
	params   []string
	variadic bool
	desc     string
	fn       func(s *Session, args []string) error
}

func (c *command) usage(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, p := range c.params {
		sb.WriteString(" " + p)
	}
	if c.variadic {
		sb.WriteString(" ...")
	}
	return sb.String()
}

// Populated in init to break the initialization cycle with help.
var commands map[string]*command

func init() {
	commands = map[string]*command{
		"new": {[]string{"NAME"}, true,
			"create a list with the given values", newCmd},
		"clone": {[]string{"SRC", "DST"}, false,
			"make DST a copy of SRC, sharing nodes until either is modified", cloneCmd},
		"drop": {[]string{"NAME"}, false,
			"forget a list", dropCmd},

		"push": {[]string{"NAME", "VALUE"}, false,
			"insert a value at the front", listValueCmd((*cowlist.List[string]).Push)},
		"append": {[]string{"NAME", "VALUE"}, false,
			"insert a value at the end", listValueCmd((*cowlist.List[string]).Append)},
		"insert": {[]string{"NAME", "INDEX", "VALUE"}, false,
			"insert a value after the node at INDEX", insertCmd},
		"pop": {[]string{"NAME"}, false,
			"remove and print the first value", removeCmd((*cowlist.List[string]).Pop)},
		"remove-last": {[]string{"NAME"}, false,
			"remove and print the last value", removeCmd((*cowlist.List[string]).RemoveLast)},
		"remove-after": {[]string{"NAME", "INDEX"}, false,
			"remove and print the value after the node at INDEX", removeAfterCmd},
		"reverse": {[]string{"NAME"}, false,
			"reverse a list", reverseCmd},

		"node": {[]string{"NAME", "INDEX"}, false,
			"print the value of the node at INDEX", nodeCmd},
		"middle": {[]string{"NAME"}, false,
			"print the value of the middle node", middleCmd},
		"print": {[]string{"NAME"}, false,
			"print a list", printCmd},
		"print-reverse": {[]string{"NAME"}, false,
			"print the values of a list from last to first", printReverseCmd},
		"len": {[]string{"NAME"}, false,
			"print the number of values", lenCmd},
		"shared": {[]string{"NAME"}, false,
			"print whether a list shares nodes with another list", sharedCmd},
		"lists": {nil, false,
			"print the names of all lists", listsCmd},

		"save": {[]string{"NAME"}, false,
			"save a list to the store", saveCmd},
		"load": {[]string{"NAME"}, false,
			"load a list from the store", loadCmd},
		"forget": {[]string{"NAME"}, false,
			"delete a list from the store", forgetCmd},
		"saved": {nil, false,
			"print the names of all saved lists", savedCmd},
		"history": {nil, true,
			"print the last N commands (default 10)", historyCmd},

		"help": {nil, false,
			"show this help", helpCmd},
	}
}

const none = "(none)"

func newCmd(s *Session, args []string) error {
	s.set(args[0], cowlist.New(args[1:]...))
	return nil
}

func cloneCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	s.set(args[1], l.Clone())
	return nil
}

func dropCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	l.Release()
	delete(s.lists, args[0])
	return nil
}

func listValueCmd(f func(*cowlist.List[string], string)) func(*Session, []string) error {
	return func(s *Session, args []string) error {
		l, err := s.list(args[0])
		if err != nil {
			return err
		}
		f(l, args[1])
		return nil
	}
}

func insertCmd(s *Session, args []string) error {
	l, n, err := s.listAndNode(args[0], args[1])
	if err != nil {
		return err
	}
	inserted, err := l.InsertAfter(n, args[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, inserted.Value())
	return nil
}

func removeCmd(f func(*cowlist.List[string]) (string, bool)) func(*Session, []string) error {
	return func(s *Session, args []string) error {
		l, err := s.list(args[0])
		if err != nil {
			return err
		}
		s.printValue(f(l))
		return nil
	}
}

func removeAfterCmd(s *Session, args []string) error {
	l, n, err := s.listAndNode(args[0], args[1])
	if err != nil {
		return err
	}
	v, ok, err := l.RemoveAfter(n)
	if err != nil {
		return err
	}
	s.printValue(v, ok)
	return nil
}

func reverseCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	l.Reverse()
	return nil
}

func nodeCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	i, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	s.printNode(l.Node(i))
	return nil
}

func middleCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	s.printNode(l.Middle())
	return nil
}

func printCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, l)
	return err
}

func printReverseCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	return l.WriteReverse(s.out)
}

func lenCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, l.Len())
	return nil
}

func sharedCmd(s *Session, args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, l.Shared())
	return nil
}

func listsCmd(s *Session, _ []string) error {
	for _, name := range slices.Sorted(maps.Keys(s.lists)) {
		fmt.Fprintln(s.out, name)
	}
	return nil
}

func saveCmd(s *Session, args []string) error {
	if err := s.needStore(); err != nil {
		return err
	}
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	return s.store.PutList(args[0], l)
}

func loadCmd(s *Session, args []string) error {
	if err := s.needStore(); err != nil {
		return err
	}
	l, err := s.store.GetList(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	s.set(args[0], l)
	return nil
}

func forgetCmd(s *Session, args []string) error {
	if err := s.needStore(); err != nil {
		return err
	}
	if err := s.store.DelList(args[0]); err != nil {
		return fmt.Errorf("forget %s: %w", args[0], err)
	}
	return nil
}

func savedCmd(s *Session, _ []string) error {
	if err := s.needStore(); err != nil {
		return err
	}
	names, err := s.store.ListNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
	return nil
}

func historyCmd(s *Session, args []string) error {
	if err := s.needStore(); err != nil {
		return err
	}
	n := 10
	if len(args) > 1 {
		return fmt.Errorf("%w: usage: history [N]", ErrBadArgs)
	} else if len(args) == 1 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("%w: usage: history [N]", ErrBadArgs)
		}
	}
	next, err := s.store.NextCmdSeq()
	if err != nil {
		return err
	}
	cmds, err := s.store.CmdsWithSeq(next-n, next)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		fmt.Fprintf(s.out, "%5d  %s\n", cmd.Seq, cmd.Text)
	}
	return nil
}

func helpCmd(s *Session, _ []string) error {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		fmt.Fprintf(s.out, "%-30s %s\n", cmd.usage(name), cmd.desc)
	}
	return nil
}

func (s *Session) listAndNode(name, index string) (*cowlist.List[string], *cowlist.Node[string], error) {
	l, err := s.list(name)
	if err != nil {
		return nil, nil, err
	}
	i, err := parseIndex(index)
	if err != nil {
		return nil, nil, err
	}
	n := l.Node(i)
	if n == nil {
		return nil, nil, fmt.Errorf("%w: %d is out of range for %s with %d values",
			ErrBadIndex, i, name, l.Len())
	}
	return l, n, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadIndex, s)
	}
	return i, nil
}

func (s *Session) printValue(v string, ok bool) {
	if ok {
		fmt.Fprintln(s.out, v)
	} else {
		fmt.Fprintln(s.out, none)
	}
}

func (s *Session) printNode(n *cowlist.Node[string]) {
	if n == nil {
		fmt.Fprintln(s.out, none)
	} else {
		fmt.Fprintln(s.out, n.Value())
	}
}
