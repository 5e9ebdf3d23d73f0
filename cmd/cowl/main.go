// Cowl runs scripts that build and change copy-on-write lists. It can also be
// used interactively, and keeps saved lists and command history in a
// database.
package main

import (
	"os"

	"src.cowl.sh/pkg/buildinfo"
	"src.cowl.sh/pkg/prog"
	"src.cowl.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, &shell.Program{})))
}
