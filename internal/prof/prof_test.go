package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartWritesRequestedProfiles(t *testing.T) {
	dir := t.TempDir()
	p := Profiles{
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	stop, err := Start(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{p.Mem, p.Trace} {
		st, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(path))
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); !os.IsNotExist(err) {
		t.Error("cpu profile written without a path")
	}
}

func TestStartFailsOnBadPath(t *testing.T) {
	if _, err := Start(Profiles{CPU: filepath.Join(t.TempDir(), "missing", "cpu.pprof")}); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
