package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/driver"
	"flint/internal/observ"
	"flint/internal/project"
	"flint/internal/sema"
	"flint/internal/trace"
	"flint/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.fl|directory>...",
	Short: "Type-check flint source files",
	Long: `Check parses and type-checks each root file together with everything it
imports. A directory stands for every *.fl file below it; each root file is
checked in its own session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel sessions (0=auto)")
	checkCmd.Flags().Bool("cache", false, "skip root files whose last clean check is still fresh")
	checkCmd.Flags().Bool("dump-types", false, "print the AST annotated with checked types")
	checkCmd.Flags().Bool("symbols", false, "print the declarations of each root file")
	checkCmd.Flags().Bool("no-notes", false, "omit diagnostic notes")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("timings", false, "print phase timings to stderr")
}

type checkFlags struct {
	format    string
	jobs      int
	cache     bool
	dumpTypes bool
	symbols   bool
	notes     bool
	timings   bool
	pathMode  diagfmt.PathMode
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var f checkFlags
	var err error
	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.format != "pretty" && f.format != "json" {
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.cache, err = flags.GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.dumpTypes, err = flags.GetBool("dump-types"); err != nil {
		return f, fmt.Errorf("failed to get dump-types flag: %w", err)
	}
	if f.symbols, err = flags.GetBool("symbols"); err != nil {
		return f, fmt.Errorf("failed to get symbols flag: %w", err)
	}
	noNotes, err := flags.GetBool("no-notes")
	if err != nil {
		return f, fmt.Errorf("failed to get no-notes flag: %w", err)
	}
	f.notes = !noNotes
	fullPath, err := flags.GetBool("fullpath")
	if err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if fullPath {
		f.pathMode = diagfmt.PathModeAbsolute
	}
	if f.timings, err = flags.GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return f, nil
}

// fileReport is one root file in JSON output.
type fileReport struct {
	Path        string                     `json:"path"`
	Cached      bool                       `json:"cached,omitempty"`
	Error       string                     `json:"error,omitempty"`
	Libraries   []string                   `json:"libraries,omitempty"`
	Diagnostics *diagfmt.DiagnosticsOutput `json:"result,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	cf, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	tr, err := setupTracing(s, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	failed := false
	defer func() { tr.finish(failed || err != nil) }()
	ctx := trace.WithTracer(cmd.Context(), tr.tracer)

	var timer *observ.Timer
	if cf.timings {
		timer = observ.NewTimer()
		defer func() { _ = timer.WriteSummary(cmd.ErrOrStderr()) }()
	}

	endCollect := timer.Begin("collect")
	paths, err := collectRoots(args)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if cf.cache {
		if cache, err = driver.OpenDiskCache("flint"); err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}
	todo, keys, cached := splitCached(cache, paths)
	endCollect(fmt.Sprintf("%d files, %d cached", len(paths), len(cached)))

	endCheck := timer.Begin("check")
	results, err := driver.CheckFiles(ctx, todo, s.driverOptions(), cf.jobs)
	endCheck("")
	if err != nil {
		return err
	}
	defer timer.Begin("report")("")

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	reports := make([]fileReport, 0, len(paths))
	for _, p := range cached {
		reports = append(reports, fileReport{Path: p, Cached: true})
	}
	for i, res := range results {
		if res.Err != nil {
			failed = true
			reports = append(reports, fileReport{Path: res.Path, Error: res.Err.Error()})
			if cf.format == "pretty" {
				fmt.Fprintf(stderr, "%s: %v\n", res.Path, res.Err)
			}
			continue
		}
		fs := res.Session.FileSet()
		diags := res.Session.Diagnostics()
		if hasErrors(diags) {
			failed = true
		}

		switch cf.format {
		case "json":
			out := diagfmt.BuildDiagnosticsOutput(diags, fs, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         cf.pathMode,
				IncludeNotes:     cf.notes,
			})
			reports = append(reports, fileReport{Path: res.Path, Libraries: res.Unit.Libraries, Diagnostics: &out})
		default:
			opts := diagfmt.PrettyOpts{Color: s.color, Context: 2, PathMode: cf.pathMode, ShowNotes: cf.notes}
			if err := diagfmt.Pretty(stderr, diags, fs, opts); err != nil {
				return err
			}
		}
		if err := dumpUnit(stdout, res, cf); err != nil {
			return err
		}

		if cache != nil && len(diags) == 0 {
			// кэшируем только чистые проверки: диагностики не сохраняются
			if err := cache.Put(keys[i], res.Session.Summarize(res.Unit)); err != nil {
				fmt.Fprintf(stderr, "cache: %v\n", err)
			}
		}
	}

	if cf.format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Files []fileReport `json:"files"`
		}{reports}); err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// collectRoots expands directories into their *.fl files.
func collectRoots(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat path: %w", err)
		}
		if !st.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, err := driver.ListFiles(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}

// splitCached returns the paths that still need checking with their cache
// keys, and the paths whose cached summary is fresh.
func splitCached(cache *driver.DiskCache, paths []string) (todo []string, keys []project.Digest, cached []string) {
	for _, p := range paths {
		var key project.Digest
		if cache != nil {
			if d, err := driver.FileDigest(p); err == nil {
				key = d
				if sum, ok, err := cache.Get(d); err == nil && ok && sum.Fresh() {
					cached = append(cached, p)
					continue
				}
			}
		}
		todo = append(todo, p)
		keys = append(keys, key)
	}
	return todo, keys, cached
}

func dumpUnit(w io.Writer, res driver.FileResult, cf checkFlags) error {
	if !cf.dumpTypes && !cf.symbols {
		return nil
	}
	env := res.Session.Env()
	fs := res.Session.FileSet()
	if cf.dumpTypes {
		opts := diagfmt.ASTOpts{Annotate: typeAnnotator(env)}
		if err := diagfmt.FormatASTPretty(w, env.Builder, res.Unit.File, fs, opts); err != nil {
			return err
		}
	}
	if cf.symbols {
		fmt.Fprintf(w, "# %s\n", res.Path)
		return diagfmt.FormatSymbols(w, env.Symbols, env.Types, res.Unit.Scope, fs)
	}
	return nil
}

func typeAnnotator(env *sema.Env) func(ast.NodeID) string {
	return func(id ast.NodeID) string {
		t := env.Info.TypeOf(id)
		if t == types.NoTypeID {
			return ""
		}
		return env.Types.String(t)
	}
}

func hasErrors(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}
