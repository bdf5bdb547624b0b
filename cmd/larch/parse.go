package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"larch/internal/diagfmt"
	"larch/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lr",
	Short: "Parse a larch source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "tree":
		diagfmt.FormatTree(os.Stdout, result.Tree)
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
