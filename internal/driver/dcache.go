package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"flint/internal/diag"
	"flint/internal/project"
	"flint/internal/source"
)

// Current schema version - increment when Summary format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит итоги проверки корневых файлов на диске.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Summary is what a check run leaves behind. It is stored under the digest
// of the root file and is valid while every file in Files keeps its hash.
type Summary struct {
	Schema uint16

	Path      string
	Files     []string
	Hashes    []project.Digest
	Libraries []string

	Errors   int
	Warnings int
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app>, falling back to
// ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put writes the summary atomically.
func (c *DiskCache) Put(key project.Digest, sum *Summary) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	sum.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(sum); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads the summary stored under key. A missing entry or one written
// by another schema version is a miss.
func (c *DiskCache) Get(key project.Digest) (*Summary, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var sum Summary
	if err := msgpack.NewDecoder(f).Decode(&sum); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", f.Name(), err)
	}
	if sum.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return &sum, true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// FileDigest hashes a file the way the FileSet does, after BOM and CRLF
// normalization.
func FileDigest(path string) (project.Digest, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return project.Digest{}, err
	}
	return project.Digest(fs.Get(id).Hash), nil
}

// Fresh reports whether every file the summary was built from is unchanged.
func (sum *Summary) Fresh() bool {
	if len(sum.Files) != len(sum.Hashes) {
		return false
	}
	for i, path := range sum.Files {
		d, err := FileDigest(path)
		if err != nil || d != sum.Hashes[i] {
			return false
		}
	}
	return true
}

// Summarize condenses a checked unit for the disk cache.
func (s *Session) Summarize(u *Unit) *Summary {
	sum := &Summary{Path: u.Path, Libraries: append([]string(nil), u.Libraries...)}
	for _, f := range s.files() {
		sum.Files = append(sum.Files, f.Path)
		sum.Hashes = append(sum.Hashes, project.Digest(f.Hash))
	}
	for _, d := range s.Diagnostics() {
		switch d.Severity {
		case diag.SevError:
			sum.Errors++
		case diag.SevWarning:
			sum.Warnings++
		}
	}
	return sum
}

func (s *Session) files() []*source.File {
	out := make([]*source.File, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, u.Source)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
