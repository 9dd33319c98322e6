package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flint/internal/diagfmt"
	"flint/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.fl",
	Short: "Parse a flint source file and output its AST",
	Long:  `Parse builds the syntax tree of a single flint source file without following its imports`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], s.config.Build.MaxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{Color: s.color, Context: 2, ShowNotes: true}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag.Items(), result.FileSet, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatASTPretty(out, result.Builder, result.AST, result.FileSet, diagfmt.ASTOpts{})
	case "tree":
		err = diagfmt.FormatASTTree(out, result.Builder, result.AST, diagfmt.ASTOpts{})
	case "json":
		err = diagfmt.FormatASTJSON(out, result.Builder, result.AST, diagfmt.ASTOpts{})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errFailed
	}
	return nil
}
