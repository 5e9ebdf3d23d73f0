package store

import (
	"path/filepath"

	"src.cowl.sh/pkg/must"
	"src.cowl.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The store is
// closed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st := must.OK1(NewStore(filepath.Join(dir, "db")))
	c.Cleanup(func() { st.Close() })
	return st
}
