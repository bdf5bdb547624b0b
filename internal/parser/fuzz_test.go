package parser

import (
	"testing"

	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/source"
	"larch/internal/testkit"
)

// FuzzParseRoundTrip asserts that arbitrary input, however broken,
// always yields a tree that reproduces the input exactly.
func FuzzParseRoundTrip(f *testing.F) {
	for _, seed := range []string{
		"",
		"let foo = 1\nfoo",
		"let add(x, y) = x + y\nadd(1, 2)",
		"if x then 1 else 2\ny",
		"let foo =\n  let bar = 3\n  bar\nfoo",
		"@ x",
		"f(,1)",
		"print(1, 2",
		"if then 1",
		"1 +",
		"x y z",
		"let = 1",
		"# just a comment\n",
		"let x = if y then 1 else 2",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.lr", []byte(src)))

		tokens := lexer.Lex(file, lexer.Options{Reporter: diag.NopReporter{}})
		if err := testkit.CheckTokenInvariants(tokens, src); err != nil {
			t.Fatal(err)
		}

		tree := red.NewSyntaxTree(Parse(file, tokens, Options{Reporter: diag.NopReporter{}}))
		if err := testkit.CheckTreeInvariants(tree, src); err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckIdentityStability(tree); err != nil {
			t.Fatal(err)
		}
	})
}
