// Package script implements a line-oriented command language for working with
// named lists of strings.
//
// Each line holds one command followed by its arguments, separated by
// whitespace. Text from "#" to the end of a line is ignored. For example:
//
//	new a 1 2 3
//	clone a b  # b shares the nodes of a
//	push b 0   # b copies the nodes first
//	print a
//	print b
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"src.cowl.sh/pkg/cowlist"
	"src.cowl.sh/pkg/logutil"
	"src.cowl.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[script] ")

// Errors reported by commands. They are wrapped with more details.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("bad arguments")
	ErrUnknownList    = errors.New("unknown list")
	ErrBadIndex       = errors.New("bad index")
	ErrNoStore        = errors.New("no store available")
)

// Error is an error from a command, together with the line it occurred on.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Session keeps the named lists that commands work on.
type Session struct {
	out   io.Writer
	store storedefs.Store
	lists map[string]*cowlist.List[string]
}

// NewSession creates a new Session writing output to out. The store may be
// nil, in which case commands that need it fail with ErrNoStore.
func NewSession(out io.Writer, store storedefs.Store) *Session {
	return &Session{out, store, make(map[string]*cowlist.List[string])}
}

// List returns the list with the given name, or nil if there is no such list.
func (s *Session) List(name string) *cowlist.List[string] {
	return s.lists[name]
}

// Run executes all the lines read from r, stopping at the first error. The
// error is an *Error identifying the line.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if err := s.Exec(scanner.Text()); err != nil {
			return &Error{line, err}
		}
	}
	return scanner.Err()
}

// Exec executes a single line. Empty lines and comments do nothing.
func (s *Session) Exec(line string) error {
	fields := Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(args) < len(cmd.params) || (!cmd.variadic && len(args) > len(cmd.params)) {
		return fmt.Errorf("%w: usage: %s", ErrBadArgs, cmd.usage(name))
	}
	logger.Printf("exec %q", line)
	return cmd.fn(s, args)
}

// Fields splits a line into command name and arguments, dropping comments.
func Fields(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

func (s *Session) list(name string) (*cowlist.List[string], error) {
	l, ok := s.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	return l, nil
}

// Replaces the list with the given name, giving up the share of the old list.
func (s *Session) set(name string, l *cowlist.List[string]) {
	if old, ok := s.lists[name]; ok && old != l {
		old.Release()
	}
	s.lists[name] = l
}

func (s *Session) needStore() error {
	if s.store == nil {
		return ErrNoStore
	}
	return nil
}
