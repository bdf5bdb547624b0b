package diagfmt

import (
	"strings"
	"testing"

	"larch/internal/diag"
	"larch/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte("let foo = 1\nfop\n"))

	bag := diag.NewBag(0)
	d := diag.NewError(diag.SemaUnboundName,
		source.Span{File: id, Start: 12, End: 15},
		"I couldn't find a binding in the current scope with the name 'fop'.")
	d = d.WithNote(source.Span{File: id, Start: 4, End: 7}, "Did you mean 'foo', defined here?")
	bag.Add(d)
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := testBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})

	want := "test.lr:2:1: ERROR SEM3000: I couldn't find a binding in the current scope with the name 'fop'.\n" +
		"   2 | fop\n" +
		"     | ^~~\n" +
		"  note: Did you mean 'foo', defined here?\n" +
		"   1 | let foo = 1\n" +
		"     |     ^~~\n"
	if sb.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestPrettyWithoutNotes(t *testing.T) {
	bag, fs := testBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if strings.Contains(sb.String(), "note:") {
		t.Errorf("notes rendered despite ShowNotes=false:\n%s", sb.String())
	}
}

func TestPrettyMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte("x\ny\nz\n"))
	bag := diag.NewBag(0)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewError(diag.SemaUnboundName,
			source.Span{File: id, Start: 2 * i, End: 2*i + 1}, "unbound"))
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Max: 1})
	if !strings.Contains(sb.String(), "... and 2 more diagnostic(s)") {
		t.Errorf("missing truncation notice:\n%s", sb.String())
	}
	if got := strings.Count(sb.String(), "ERROR"); got != 1 {
		t.Errorf("rendered %d diagnostics, want 1", got)
	}
}

func TestPrettyZeroWidthSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte("let x =\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectedExpression,
		source.Span{File: id, Start: 7, End: 7}, "I was expecting an expression."))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if !strings.Contains(sb.String(), "^\n") {
		t.Errorf("zero-width span should render a single caret:\n%s", sb.String())
	}
}
