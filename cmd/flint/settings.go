package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/driver"
	"flint/internal/project"
)

// settings is flint.toml with command-line flags applied on top.
type settings struct {
	config   project.Config
	manifest string // "" without flint.toml
	color    bool
}

// loadSettings reads flint.toml above the working directory, if there is
// one, and overrides its values with every flag set explicitly.
func loadSettings(cmd *cobra.Command) (settings, error) {
	s := settings{config: project.DefaultConfig()}
	m, ok, err := project.LoadManifest(".")
	if err != nil {
		return s, err
	}
	if ok {
		s.config = m.Config
		s.manifest = m.Path
	}

	flags := cmd.Flags()
	if flags.Changed("max-diagnostics") {
		if s.config.Build.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("system-library-dir") {
		if s.config.Build.SystemLibraryDir, err = flags.GetString("system-library-dir"); err != nil {
			return s, fmt.Errorf("failed to get system-library-dir flag: %w", err)
		}
	}
	if flags.Changed("library-dir") {
		dirs, err := flags.GetStringSlice("library-dir")
		if err != nil {
			return s, fmt.Errorf("failed to get library-dir flag: %w", err)
		}
		// флаги идут первыми в порядке поиска
		s.config.Build.LibraryDirs = append(dirs, s.config.Build.LibraryDirs...)
	}
	if flags.Changed("trace-level") {
		if s.config.Trace.Level, err = flags.GetString("trace-level"); err != nil {
			return s, fmt.Errorf("failed to get trace-level flag: %w", err)
		}
	}
	if flags.Changed("trace-mode") {
		if s.config.Trace.Mode, err = flags.GetString("trace-mode"); err != nil {
			return s, fmt.Errorf("failed to get trace-mode flag: %w", err)
		}
	}
	if flags.Changed("trace-format") {
		if s.config.Trace.Format, err = flags.GetString("trace-format"); err != nil {
			return s, fmt.Errorf("failed to get trace-format flag: %w", err)
		}
	}
	if flags.Changed("trace-output") {
		if s.config.Trace.Output, err = flags.GetString("trace-output"); err != nil {
			return s, fmt.Errorf("failed to get trace-output flag: %w", err)
		}
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		s.color = true
	case "off":
	case "auto":
		s.color = isTerminal(os.Stderr)
	default:
		return s, fmt.Errorf("unknown color mode: %s", colorFlag)
	}
	return s, nil
}

// driverOptions leaves the tracer unset; sessions take it from the context.
func (s settings) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics:   s.config.Build.MaxDiagnostics,
		SystemLibraryDir: s.config.Build.SystemLibraryDir,
		LibraryDirs:      s.config.Build.LibraryDirs,
	}
}
