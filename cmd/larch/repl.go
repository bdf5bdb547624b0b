package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"larch/internal/driver"
	"larch/internal/version"
)

func buildSnippet(cmd *cobra.Command, src string) *driver.BuildResult {
	return driver.BuildSource("<repl>", []byte(src), maxDiagnostics(cmd))
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive larch session",
	Long: `Repl reads larch expressions from standard input. A blank line ends the
current snippet and evaluates everything entered so far; Ctrl-D exits.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Bool("exec", false, "run the generated Python with python3 instead of printing it")
}

func runRepl(cmd *cobra.Command, args []string) error {
	execPython, err := cmd.Flags().GetBool("exec")
	if err != nil {
		return err
	}
	if execPython {
		if _, err := exec.LookPath("python3"); err != nil {
			return fmt.Errorf("--exec requires python3 on PATH: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(os.Stdin)
	if interactive {
		fmt.Fprintf(out, "Larch version %s REPL\n", version.Version)
		fmt.Fprintln(out, "Enter an expression; a blank line evaluates it. Ctrl-D exits.")
	}

	session := replSession{execPython: execPython}
	scanner := bufio.NewScanner(os.Stdin)
	var buffer []string
	for {
		if interactive {
			if len(buffer) == 0 {
				fmt.Fprint(out, ">>> ")
			} else {
				fmt.Fprint(out, "... ")
			}
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			buffer = append(buffer, line)
			continue
		}
		if len(buffer) == 0 {
			continue
		}
		session.evaluate(cmd, strings.Join(buffer, "\n"))
		buffer = buffer[:0]
	}
	if len(buffer) > 0 {
		session.evaluate(cmd, strings.Join(buffer, "\n"))
	}
	return scanner.Err()
}

type replSession struct {
	execPython bool
	// history holds every snippet accepted so far, so later snippets can
	// refer to earlier bindings.
	history string
}

func (s *replSession) evaluate(cmd *cobra.Command, snippet string) {
	full := s.history + snippet
	result := buildSnippet(cmd, full)
	if printDiagnostics(cmd, result.Bag, result.FileSet) {
		return
	}
	s.history = full + "\n"

	if !s.execPython {
		fmt.Fprint(cmd.OutOrStdout(), result.Python)
		return
	}
	// The whole accumulated program runs again, like earlier snippets
	// being replayed in a fresh interpreter.
	py := exec.Command("python3", "-c", result.Python)
	py.Stdout = cmd.OutOrStdout()
	py.Stderr = cmd.ErrOrStderr()
	if err := py.Run(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "python3: %v\n", err)
	}
}
