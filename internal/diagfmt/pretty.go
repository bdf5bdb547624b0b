package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"larch/internal/diag"
	"larch/internal/source"
)

// Pretty formats diagnostics in a human-readable way. It walks bag.Items()
// (the bag is expected to be sorted beforehand). For each diagnostic it
// prints:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with a ^~~~ underline covering the span,
// then the notes in the same format.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	for i := range maxItems {
		d := items[i]
		printHeader(w, fs, d, opts)
		printSpan(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "  %s: %s\n", colorize(opts, noteColor, "note"), note.Msg)
				printSpan(w, fs, note.Span, opts)
			}
		}
	}

	if hidden := bag.Len() - maxItems; hidden > 0 {
		fmt.Fprintf(w, "... and %d more diagnostic(s)\n", hidden)
	}
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue, color.Bold)
	gutterColor  = color.New(color.FgHiBlack)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return infoColor
}

func colorize(opts PrettyOpts, c *color.Color, s string) string {
	if !opts.Color {
		return s
	}
	return c.Sprint(s)
}

func printHeader(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	pos, _ := fs.Resolve(d.Primary)
	label := fmt.Sprintf("%s %s", d.Severity.String(), d.Code.ID())
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		formatPath(f, opts.PathMode), pos.Line, pos.Col,
		colorize(opts, severityColor(d.Severity), label),
		d.Message)
}

// printSpan renders the source line holding the span's start, with a
// caret underline. Spans crossing a newline are clamped to the first line.
func printSpan(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	pos, _ := fs.Resolve(sp)
	line := f.GetLine(pos.Line)

	gutter := fmt.Sprintf("%4d | ", pos.Line)
	blank := strings.Repeat(" ", 4) + " | "
	fmt.Fprintf(w, "%s%s\n", colorize(opts, gutterColor, gutter), line)

	col := int(pos.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	n := int(sp.Len())
	if rest := len(line) - col; n > rest {
		n = rest
	}
	underline := "^"
	if n > 1 {
		underline += strings.Repeat("~", runewidth.StringWidth(line[col:col+n])-1)
	}
	fmt.Fprintf(w, "%s%s%s\n",
		colorize(opts, gutterColor, blank),
		strings.Repeat(" ", pad),
		colorize(opts, noteColor, underline))
}
