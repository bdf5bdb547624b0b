package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"larch/internal/driver"
	"larch/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.lr|path]",
	Short: "Compile larch sources to Python",
	Long: `Build compiles a larch source file to Python. Given a directory (or no
argument), it locates larch.toml, builds the entry file from [package], and
writes the output under the [build] out directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output file (default: derived from the input name)")
	buildCmd.Flags().Bool("no-cache", false, "bypass the on-disk build cache")
	buildCmd.Flags().Bool("stdout", false, "print generated Python instead of writing a file")
}

func runBuild(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	input, output, err := resolveBuildPaths(cmd, target)
	if err != nil {
		return err
	}

	result, err := buildInput(cmd, input)
	if err != nil {
		return err
	}
	if printDiagnostics(cmd, result.Bag, result.FileSet) {
		return fmt.Errorf("build failed")
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		fmt.Fprint(cmd.OutOrStdout(), result.Python)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(result.Python), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	return nil
}

func resolveBuildPaths(cmd *cobra.Command, target string) (input, output string, err error) {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return "", "", err
	}

	if strings.HasSuffix(target, ".lr") {
		input = target
		output = out
		if output == "" {
			output = strings.TrimSuffix(target, ".lr") + ".py"
		}
		return input, output, nil
	}

	manifestPath, ok, err := project.FindLarchToml(target)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("no larch.toml found from %q; pass a .lr file or run 'larch init'", target)
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return "", "", err
	}

	input = manifest.EntryPath()
	output = out
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(manifest.Package.Entry), ".lr")
		output = filepath.Join(manifest.OutDir(), base+".py")
	}
	return input, output, nil
}

func buildInput(cmd *cobra.Command, input string) (*driver.BuildResult, error) {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if noCache {
		return driver.Build(input, maxDiagnostics(cmd))
	}

	cache, err := driver.OpenDiskCache("larch")
	if err != nil {
		// Cache trouble never blocks a build.
		return driver.Build(input, maxDiagnostics(cmd))
	}
	result, _, err := driver.BuildCached(input, cache, maxDiagnostics(cmd))
	if result == nil {
		return nil, err
	}
	// A failed cache write never blocks a completed build.
	return result, nil
}
