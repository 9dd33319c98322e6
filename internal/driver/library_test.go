package driver_test

import (
	"path/filepath"
	"testing"

	"flint/internal/driver"
)

func TestResolveLibraryPath(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/main.fl":      "",
		"src/local.so":     "",
		"vendor/libz.so":   "",
		"system/libc.so.6": "",
		"system/libm.a":    "",
	})
	from := filepath.Join(dir, "src", "main.fl")
	dirs := []string{filepath.Join(dir, "vendor"), filepath.Join(dir, "system")}
	abs := filepath.Join(dir, "system", "libm.a")

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"local.so", filepath.Join(dir, "src", "local.so"), true},
		{"z", filepath.Join(dir, "vendor", "libz.so"), true},
		{"libc.so.6", filepath.Join(dir, "system", "libc.so.6"), true},
		{"m", abs, true},
		{abs, abs, true},
		{filepath.Join(dir, "missing.so"), filepath.Join(dir, "missing.so"), false},
		{"Cocoa.framework", "Cocoa.framework", true},
		{"nothing", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := driver.ResolveLibraryPath(tc.name, from, dirs)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ResolveLibraryPath(%q) = %q, %v; want %q, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSessionLibrarySearchOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.fl":          "#library \"ssl\"\n#library \"crypto\"\n",
		"extra/libssl.so":  "",
		"sys/libssl.so":    "",
		"sys/libcrypto.so": "",
	})
	s := driver.NewSession(driver.Options{
		SystemLibraryDir: filepath.Join(dir, "sys"),
		LibraryDirs:      []string{filepath.Join(dir, "extra")},
	})
	u, err := s.CheckFile(filepath.Join(dir, "main.fl"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "extra", "libssl.so"), filepath.Join(dir, "sys", "libcrypto.so")}
	if len(u.Libraries) != 2 || u.Libraries[0] != want[0] || u.Libraries[1] != want[1] {
		t.Fatalf("libraries %q, want %q", u.Libraries, want)
	}
}
