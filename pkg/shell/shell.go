// Package shell is the main subprogram of cowl. It runs commands of the
// language implemented by package script, either from a script file, from
// the command line, or from stdin.
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"src.cowl.sh/pkg/errutil"
	"src.cowl.sh/pkg/logutil"
	"src.cowl.sh/pkg/prog"
	"src.cowl.sh/pkg/rc"
	"src.cowl.sh/pkg/script"
	"src.cowl.sh/pkg/store"
	"src.cowl.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires an argument")
	}

	cfg := loadConfig(fds[2], f)
	closeLog := func() error { return nil }
	if f.Log == "" && cfg.Log != "" {
		if err := logutil.SetOutputFile(cfg.Log); err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		} else {
			closeLog = func() error { return logutil.SetOutputFile("") }
		}
	}
	st := openStore(fds[2], f, cfg)
	defer func() {
		var closeStore error
		if st != nil {
			closeStore = st.Close()
		}
		if err := errutil.Multi(closeStore, closeLog()); err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		}
	}()

	// A nil DBStore converts to a nil storedefs.Store.
	session := script.NewSession(fds[1], st)

	if len(args) > 0 {
		return runScript(session, args[0], f.CodeInArg)
	}
	if sys.IsATTY(fds[0]) {
		interact(fds, session, st, cfg)
		return nil
	}
	return session.Run(fds[0])
}

// Loads rc.yaml, falling back to the default configuration if -norc is given
// or if the file cannot be loaded.
func loadConfig(stderr *os.File, f *prog.Flags) *rc.Config {
	if f.NoRc {
		return rc.Default()
	}
	path := f.RC
	if path == "" {
		var err error
		path, err = rc.Path()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return rc.Default()
		}
	}
	cfg, err := rc.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot load rc.yaml:", err)
		return rc.Default()
	}
	logger.Println("loaded config from", path)
	return cfg
}

// Opens the database given by -db or the db field of the config. It returns
// nil if neither is set or the database cannot be opened.
func openStore(stderr *os.File, f *prog.Flags, cfg *rc.Config) store.DBStore {
	db := f.DB
	if db == "" {
		db = cfg.DB
	}
	if db == "" {
		return nil
	}
	err := os.MkdirAll(filepath.Dir(db), 0700)
	if err == nil {
		var st store.DBStore
		st, err = store.NewStore(db)
		if err == nil {
			return st
		}
	}
	fmt.Fprintln(stderr, "Warning: cannot open database:", err)
	fmt.Fprintln(stderr, "Saved lists and history are not available.")
	return nil
}

func runScript(session *script.Session, arg0 string, codeInArg bool) error {
	if codeInArg {
		return session.Run(strings.NewReader(arg0))
	}
	name, err := filepath.Abs(arg0)
	if err != nil {
		return fmt.Errorf("cannot get full path of script %q: %w", arg0, err)
	}
	code, err := readFileUTF8(name)
	if err != nil {
		return fmt.Errorf("cannot read script %q: %w", name, err)
	}
	if err := session.Run(strings.NewReader(code)); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
