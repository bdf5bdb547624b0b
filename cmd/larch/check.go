package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"larch/internal/diagfmt"
	"larch/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.lr|dir]",
	Short: "Check larch sources for errors without generating code",
	Long: `Check runs the full front end (tokenize, parse, bind, type-check) on a
single file or on every *.lr file under a directory. Without an argument it
checks the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = all CPUs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return checkDir(cmd, target, format)
	}
	return checkFile(cmd, target, format)
}

func checkFile(cmd *cobra.Command, path, format string) error {
	result, err := driver.Check(path, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return reportCheck(cmd, format, []driver.CheckDirResult{{Path: path, Result: result}})
}

func checkDir(cmd *cobra.Command, dir, format string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	results, err := driver.CheckDir(context.Background(), dir, maxDiagnostics(cmd), jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return reportCheck(cmd, format, results)
}

func reportCheck(cmd *cobra.Command, format string, results []driver.CheckDirResult) error {
	hasErrors := false
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
		switch format {
		case "pretty":
			if printDiagnostics(cmd, r.Result.Bag, r.Result.FileSet) {
				hasErrors = true
			}
		case "json":
			r.Result.Bag.Sort()
			if err := diagfmt.JSON(os.Stdout, r.Result.Bag, r.Result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				Max:              maxDiagnostics(cmd),
			}); err != nil {
				return err
			}
			if r.Result.Bag.HasErrors() {
				hasErrors = true
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	if hasErrors {
		return fmt.Errorf("check found errors")
	}
	return nil
}
