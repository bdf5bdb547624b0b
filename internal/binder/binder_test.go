package binder

import (
	"strings"
	"testing"

	"larch/internal/cst/red"
	"larch/internal/cstquery"
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
	"larch/internal/source"
)

func bindString(t *testing.T, src string) (*red.SyntaxTree, *Bindings, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte(src))
	file := fs.Get(id)
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}

	toks := lexer.Lex(file, lexer.Options{Reporter: reporter})
	tree := red.NewSyntaxTree(parser.Parse(file, toks, parser.Options{Reporter: reporter}))
	bindings := Bind(file, tree, GlobalScope(), reporter)
	return tree, bindings, bag
}

func TestBindLetBody(t *testing.T) {
	tree, bindings, bag := bindString(t, "let foo = 1\nfoo")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}

	letExpr := tree.NExpr().(*red.LetExpr)
	ref := letExpr.NBody().(*red.IdentifierExpr)
	pats := bindings.Get(ref)
	if len(pats) != 1 {
		t.Fatalf("binding count = %d, want 1", len(pats))
	}
	if pats[0] != letExpr.NPattern().(*red.VariablePattern) {
		t.Error("reference did not resolve to the binding pattern")
	}
}

func TestBindNestedShadowing(t *testing.T) {
	tree, bindings, bag := bindString(t, "let foo =\n  let bar = 3\n  bar\nfoo")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}

	var lets []*red.LetExpr
	for le := range cstquery.FindInstances[*red.LetExpr](tree) {
		lets = append(lets, le)
	}
	inner := lets[1]
	innerRef := inner.NBody().(*red.IdentifierExpr)
	pats := bindings.Get(innerRef)
	if len(pats) != 1 || pats[0] != inner.NPattern().(*red.VariablePattern) {
		t.Error("inner reference did not resolve to the inner pattern")
	}
}

func TestParametersVisibleInValueOnly(t *testing.T) {
	_, _, bag := bindString(t, "let add(x, y) = x + y\nadd(1, 2)")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}

	// The parameter must not leak into the body.
	_, _, bag = bindString(t, "let add(x, y) = x + y\nx")
	if !bag.HasErrors() {
		t.Fatal("parameter leaked into the let body")
	}
}

func TestBuiltins(t *testing.T) {
	_, bindings, bag := bindString(t, "print(1)")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	// Builtins resolve without a pattern to point at.
	if bindings.Len() != 0 {
		t.Errorf("bindings = %d, want 0", bindings.Len())
	}
}

func TestUnboundName(t *testing.T) {
	_, _, bag := bindString(t, "let foo = 1\nfop")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1: %v", bag.Len(), bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.SemaUnboundName {
		t.Fatalf("code = %v", d.Code)
	}
	if !strings.Contains(d.Message, "'fop'") {
		t.Errorf("message = %q", d.Message)
	}

	var suggestions []string
	for _, n := range d.Notes {
		suggestions = append(suggestions, n.Msg)
	}
	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "'foo', defined here") {
			found = true
		}
	}
	if !found {
		t.Errorf("no suggestion for 'foo' in %v", suggestions)
	}
}

func TestBuiltinSuggestion(t *testing.T) {
	_, _, bag := bindString(t, "prinf(1)")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	found := false
	for _, n := range bag.Items()[0].Notes {
		if strings.Contains(n.Msg, "'print' (a builtin)") {
			found = true
		}
	}
	if !found {
		t.Errorf("no builtin suggestion in %v", bag.Items()[0].Notes)
	}
}
