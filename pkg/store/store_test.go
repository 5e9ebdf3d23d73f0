package store

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
	"src.cowl.sh/pkg/must"
	"src.cowl.sh/pkg/store/storetest"
	"src.cowl.sh/pkg/testutil"
)

func TestCmd(t *testing.T) {
	storetest.TestCmd(t, MustTempStore(t))
}

func TestList(t *testing.T) {
	storetest.TestList(t, MustTempStore(t))
}

func TestGetList_CorruptValue(t *testing.T) {
	st := MustTempStore(t).(*dbStore)
	must.OK(st.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketList)).Put([]byte("bad"), []byte("a: b"))
	}))
	if _, err := st.GetList("bad"); err == nil {
		t.Errorf("GetList of corrupt value -> no error")
	}
}

func TestNewStore_PersistsAcrossReopen(t *testing.T) {
	dbname := filepath.Join(testutil.TempDir(t), "db")

	st := must.OK1(NewStore(dbname))
	must.OK1(st.AddCmd("print a"))
	must.OK(st.Close())

	st = must.OK1(NewStore(dbname))
	defer st.Close()
	if cmd, err := st.Cmd(1); cmd != "print a" || err != nil {
		t.Errorf("Cmd(1) after reopening -> %q, %v", cmd, err)
	}
}

func TestNewStore_BadPath(t *testing.T) {
	dir := testutil.TempDir(t)
	if _, err := NewStore(filepath.Join(dir, "no", "such", "dir", "db")); err == nil {
		t.Errorf("NewStore with bad path -> no error")
	}
}
