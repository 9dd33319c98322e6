package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"flint/internal/trace"
)

// FileResult is the outcome of checking one root file in its own session.
type FileResult struct {
	Path    string
	Session *Session
	Unit    *Unit
	// Err is set when the root file could not be opened.
	Err error
}

// ListFiles returns the sorted *.fl files below dir.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".fl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckFiles checks every root file in a separate Session, up to jobs at a
// time. Results keep the order of paths. Sessions never share state, so
// each one stays single-threaded. Without opts.Tracer the tracer attached
// to ctx is used.
func CheckFiles(ctx context.Context, paths []string, opts Options, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
	}
	sp := trace.Begin(opts.Tracer, trace.ScopeDriver, "check_files", opts.ParentSpan)
	defer sp.End(fmt.Sprintf("%d files", len(paths)))
	opts.ParentSpan = sp.ID()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален, мьютекс не нужен
			s := NewSession(opts)
			u, err := s.CheckFile(path)
			results[i] = FileResult{Path: path, Session: s, Unit: u, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
