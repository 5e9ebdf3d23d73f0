package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.cowl.sh/pkg/rc"
	"src.cowl.sh/pkg/script"
	"src.cowl.sh/pkg/store/storedefs"
	"src.cowl.sh/pkg/strutil"
)

// Runs commands read from a terminal until EOF. Errors are shown and do not
// stop the loop.
func interact(fds [3]*os.File, session *script.Session, st storedefs.Store, cfg *rc.Config) {
	in := bufio.NewReader(fds[0])
	for {
		fmt.Fprint(fds[2], cfg.Prompt)
		line, err := in.ReadString('\n')
		line = strutil.ChopLineEnding(line)
		if len(script.Fields(line)) > 0 {
			if cfg.History && st != nil {
				if _, err := st.AddCmd(line); err != nil {
					logger.Println("failed to add command to history:", err)
				}
			}
			if err := session.Exec(line); err != nil {
				fmt.Fprintln(fds[2], err)
			}
		}
		if err != nil {
			if err != io.EOF {
				logger.Println("failed to read command:", err)
			}
			fmt.Fprintln(fds[2])
			return
		}
	}
}
