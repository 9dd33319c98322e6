package driver

import (
	"os"
	"path/filepath"
	"strings"

	"flint/internal/sema"
)

var _ sema.Loader = (*Session)(nil)

// ResolveLibraryPath finds the file a #library name refers to. An absolute
// name is used as is; otherwise the directory of relativeTo is tried first,
// then each of dirs in order. A bare name without an extension also matches
// lib<name>.so and lib<name>.a. Framework names are passed to the linker
// untouched.
func ResolveLibraryPath(name, relativeTo string, dirs []string) (string, bool) {
	if name == "" {
		return "", false
	}
	if strings.HasSuffix(name, ".framework") {
		return name, true
	}
	if filepath.IsAbs(name) {
		return name, exists(name)
	}
	var search []string
	if relativeTo != "" {
		search = append(search, filepath.Dir(relativeTo))
	}
	search = append(search, dirs...)
	for _, dir := range search {
		for _, cand := range libraryNames(name) {
			p := filepath.Join(dir, cand)
			if exists(p) {
				return p, true
			}
		}
	}
	return "", false
}

func libraryNames(name string) []string {
	if filepath.Ext(name) != "" || strings.ContainsRune(name, filepath.Separator) {
		return []string{name}
	}
	return []string{name, "lib" + name + ".so", "lib" + name + ".a"}
}

func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
