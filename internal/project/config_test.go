package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `[build]
max_diagnostics = 5
library_dirs = ["vendor/lib", "/opt/lib"]

[trace]
level = "phase"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Build.MaxDiagnostics != 5 {
		t.Errorf("max_diagnostics = %d", cfg.Build.MaxDiagnostics)
	}
	if cfg.Build.SystemLibraryDir != "/usr/lib" {
		t.Errorf("default system dir lost: %q", cfg.Build.SystemLibraryDir)
	}
	want := []string{filepath.Join(dir, "vendor/lib"), "/opt/lib"}
	for i, d := range cfg.Build.LibraryDirs {
		if d != want[i] {
			t.Errorf("library_dirs[%d] = %q, want %q", i, d, want[i])
		}
	}
	if cfg.Trace.Level != "phase" || cfg.Trace.Output != "-" {
		t.Errorf("trace = %+v", cfg.Trace)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown key", "[build]\njobs = 4\n", ErrUnknownKey},
		{"negative limit", "[build]\nmax_diagnostics = -1\n", ErrInvalidValue},
		{"bad level", "[trace]\nlevel = \"loud\"\n", ErrInvalidValue},
		{"bad mode", "[trace]\nmode = \"disk\"\n", ErrInvalidValue},
		{"bad format", "[trace]\nformat = \"xml\"\n", ErrInvalidValue},
		{"empty system dir", "[build]\nsystem_library_dir = \" \"\n", ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.content)
			if _, err := LoadConfig(path); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	path := writeManifest(t, t.TempDir(), "[build\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[build]\nmax_diagnostics = 7\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if m.Root != root || m.Config.Build.MaxDiagnostics != 7 {
		t.Fatalf("manifest %+v", m)
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	var a, b, c Digest
	a[0], b[0], c[0] = 1, 2, 3
	if Combine(a, b, c) == Combine(a, c, b) {
		t.Fatal("dependency order must change the digest")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatal("combine is not deterministic")
	}
}
