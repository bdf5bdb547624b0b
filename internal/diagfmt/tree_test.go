package diagfmt

import (
	"strings"
	"testing"

	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
	"larch/internal/source"
)

func TestFormatTree(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte("let foo = 1\nfoo"))
	file := fs.Get(id)
	toks := lexer.Lex(file, lexer.Options{Reporter: diag.NopReporter{}})
	tree := red.NewSyntaxTree(parser.Parse(file, toks, parser.Options{Reporter: diag.NopReporter{}}))

	var sb strings.Builder
	FormatTree(&sb, tree)
	out := sb.String()

	for _, want := range []string{
		"SyntaxTree [0, 15)",
		"  LetExpr [0, 15)",
		`    VariablePattern [4, 7) "foo"`,
		`    IntLiteralExpr [10, 11) "1"`,
		`    IdentifierExpr [12, 15) "foo"`,
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("missing line %q in dump:\n%s", want, out)
		}
	}
}
