package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "flint",
	Short:         "Flint language front end",
	Long:          `Flint tokenizes, parses and type-checks .fl source files`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errFailed is returned after diagnostics with errors have already been
// printed; main exits with status 1 without printing it.
var errFailed = errors.New("check failed")

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect per phase")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both); ring is written only on failure")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("trace-output", "-", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("system-library-dir", "", "directory searched last for #library names")
	rootCmd.PersistentFlags().StringSlice("library-dir", nil, "extra directories searched for #library names")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
	rootCmd.PersistentPreRunE = startProfiles
}

func main() {
	err := rootCmd.Execute()
	if perr := stopProfiles(); perr != nil {
		fmt.Fprintf(os.Stderr, "flint: profile: %v\n", perr)
	}
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "flint: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
