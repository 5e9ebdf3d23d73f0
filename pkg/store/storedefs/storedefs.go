// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"src.cowl.sh/pkg/cowlist"
)

// ErrNoMatchingCmd is the error returned when a command history query
// completes with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// ErrNoList is the error returned when a saved list is not found.
var ErrNoList = errors.New("no such saved list")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)

	PutList(name string, l *cowlist.List[string]) error
	GetList(name string) (*cowlist.List[string], error)
	DelList(name string) error
	ListNames() ([]string, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
