package main

import (
	"os"

	"github.com/spf13/cobra"

	"larch/internal/diag"
	"larch/internal/diagfmt"
	"larch/internal/source"
)

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 100
	}
	return n
}

// printDiagnostics renders the bag to stderr and reports whether it held
// any errors.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) bool {
	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Max:       maxDiagnostics(cmd),
			ShowNotes: true,
		})
	}
	return bag.HasErrors()
}
