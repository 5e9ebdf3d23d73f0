package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"src.cowl.sh/pkg/must"
)

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Errorf("TempDir returns %q which cannot be stated", dir)
	}
	if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
}

func TestTempDir_DirHasSymlinksResolved(t *testing.T) {
	dir := TempDir(t)

	resolved := must.OK1(filepath.EvalSymlinks(dir))
	if dir != resolved {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)

	must.OK(os.WriteFile(filepath.Join(dir, "a"), []byte("test"), 0600))

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestChdir(t *testing.T) {
	dir := TempDir(t)
	original := must.OK1(os.Getwd())

	c := &cleanuper{}
	Chdir(c, dir)

	if after := must.OK1(os.Getwd()); after != dir {
		t.Errorf("pwd is now %q, want %q", after, dir)
	}

	c.runCleanups()
	if restored := must.OK1(os.Getwd()); restored != original {
		t.Errorf("pwd restored to %q, want %q", restored, original)
	}
}

func TestApplyDir(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{
		"a": "a content",
		"d": Dir{
			"d1": "d1 content",
			"dd": Dir{"dd1": "dd1 content"},
		},
	})
	ApplyDir(Dir{"d": Dir{"d2": "d2 content"}})

	for name, want := range map[string]string{
		"a":        "a content",
		"d/d1":     "d1 content",
		"d/d2":     "d2 content",
		"d/dd/dd1": "dd1 content",
	} {
		if got := must.ReadFileString(name); got != want {
			t.Errorf("%s has content %q, want %q", name, got, want)
		}
	}
}

func TestRecover(t *testing.T) {
	if r := Recover(func() {}); r != nil {
		t.Errorf("Recover returns %v for function that does not panic", r)
	}
	if r := Recover(func() { panic("boom") }); r != "boom" {
		t.Errorf("Recover returns %v, want boom", r)
	}
}

func TestSet(t *testing.T) {
	v := 1
	c := &cleanuper{}
	Set(c, &v, 2)
	if v != 2 {
		t.Errorf("after Set, v = %d, want 2", v)
	}
	c.runCleanups()
	if v != 1 {
		t.Errorf("after cleanup, v = %d, want 1", v)
	}
}

func TestSetenv(t *testing.T) {
	const name = "COWL_TESTUTIL_VAR"
	c := &cleanuper{}
	Setenv(c, name, "value")
	if got := os.Getenv(name); got != "value" {
		t.Errorf("after Setenv, $%s = %q", name, got)
	}
	c.runCleanups()
	if _, ok := os.LookupEnv(name); ok {
		t.Errorf("after cleanup, $%s is still set", name)
	}
}

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}
