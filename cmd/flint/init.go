package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"flint/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new flint project",
	Long: `Initialize a new flint project by writing flint.toml with the default
settings and a main.fl entry point. Without [path] the current directory is
used; a missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	manifest, err := defaultManifest()
	if err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, manifest, 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "main.fl")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainFL), 0o600); err != nil {
			return fmt.Errorf("failed to write main.fl: %w", err)
		}
		createdMain = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized flint project in %s\n", target)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintln(out, "  - main.fl")
	} else {
		fmt.Fprintln(out, "  - main.fl (existing)")
	}
	return nil
}

// defaultManifest encodes project.DefaultConfig so every key flint reads
// is listed with its default.
func defaultManifest() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# flint project settings\n")
	if err := toml.NewEncoder(&buf).Encode(project.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

const defaultMainFL = `square :: fn (x: $T) -> T {
	return x * x
}

main :: fn () {
	n := square(7)
	f := square(1.5)
}
`
