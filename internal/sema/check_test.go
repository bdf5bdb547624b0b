package sema

import (
	"strings"
	"testing"

	"larch/internal/binder"
	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
	"larch/internal/source"
)

func checkString(t *testing.T, src string) (*red.SyntaxTree, *Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte(src))
	file := fs.Get(id)
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}

	toks := lexer.Lex(file, lexer.Options{Reporter: reporter})
	tree := red.NewSyntaxTree(parser.Parse(file, toks, parser.Options{Reporter: reporter}))
	bindings := binder.Bind(file, tree, binder.GlobalScope(), reporter)
	result := Check(file, tree, bindings, reporter)
	return tree, result, bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	var codes []diag.Code
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestWellTypedPrograms(t *testing.T) {
	sources := []string{
		"let x = 1\nx + 2",
		"let add(x, y) = x + y\nadd(1, 2)",
		"if 1 then 2 else 3",
		"print(1)",
		"let x = 5\nif x then x * 2 else x - 1",
		"let x = 1",
	}
	for _, src := range sources {
		t.Run(strings.ReplaceAll(src, "\n", "\\n"), func(t *testing.T) {
			_, _, bag := checkString(t, src)
			if bag.Len() != 0 {
				t.Errorf("diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestLiteralAndBindingTypes(t *testing.T) {
	tree, result, _ := checkString(t, "let x = 1\nx")
	letExpr := tree.NExpr().(*red.LetExpr)

	if ty := result.TyOf(letExpr.NValue()); ty != IntTy {
		t.Errorf("value type = %v, want int", ty)
	}
	if ty := result.TyOf(letExpr.NBody()); ty != IntTy {
		t.Errorf("body type = %v, want int", ty)
	}
	pat := letExpr.NPattern().(*red.VariablePattern)
	if ty := result.PatternTypes[pat]; ty != IntTy {
		t.Errorf("pattern type = %v, want int", ty)
	}
}

func TestFunctionBindingType(t *testing.T) {
	tree, result, _ := checkString(t, "let f(a) = a + 1\nf")
	letExpr := tree.NExpr().(*red.LetExpr)
	pat := letExpr.NPattern().(*red.VariablePattern)

	fn, ok := result.PatternTypes[pat].(FnTy)
	if !ok {
		t.Fatalf("pattern type = %v, want a function type", result.PatternTypes[pat])
	}
	if len(fn.Params) != 1 || fn.Result != IntTy {
		t.Errorf("function type = %v", fn)
	}
}

func TestCallingNonFunction(t *testing.T) {
	_, _, bag := checkString(t, "let x = 1\nx(2)")
	codes := codesOf(bag)
	if len(codes) != 1 || codes[0] != diag.SemaNotAFunction {
		t.Fatalf("codes = %v", codes)
	}
	if !strings.Contains(bag.Items()[0].Message, "type 'int'") {
		t.Errorf("message = %q", bag.Items()[0].Message)
	}
}

func TestWrongArgumentCount(t *testing.T) {
	_, _, bag := checkString(t, "let f(a, b) = a\nf(1)")
	codes := codesOf(bag)
	if len(codes) != 1 || codes[0] != diag.SemaWrongArgumentCount {
		t.Fatalf("codes = %v", codes)
	}
}

func TestBranchTypeMismatch(t *testing.T) {
	_, _, bag := checkString(t, "if 1 then 2 else print(3)")
	codes := codesOf(bag)
	if len(codes) != 1 || codes[0] != diag.SemaIncompatibleTypes {
		t.Fatalf("codes = %v", codes)
	}
	msg := bag.Items()[0].Message
	if !strings.Contains(msg, "'int'") || !strings.Contains(msg, "'none'") {
		t.Errorf("message = %q", msg)
	}
}

func TestConditionMustBeInt(t *testing.T) {
	_, _, bag := checkString(t, "let f(a) = a\nif f then 1 else 2")
	codes := codesOf(bag)
	if len(codes) != 1 || codes[0] != diag.SemaConditionNotInt {
		t.Fatalf("codes = %v", codes)
	}
}

func TestBinaryOperandMismatch(t *testing.T) {
	_, _, bag := checkString(t, "print(1) + 2")
	codes := codesOf(bag)
	if len(codes) != 1 || codes[0] != diag.SemaIncompatibleTypes {
		t.Fatalf("codes = %v", codes)
	}
}

func TestUnknownSuppressesCascades(t *testing.T) {
	// 'map' has no expressible type; uses of it check anywhere.
	_, _, bag := checkString(t, "map(1, 2) + 3")
	if bag.Len() != 0 {
		t.Errorf("diagnostics: %v", bag.Items())
	}
}

func TestNakedLetIsNone(t *testing.T) {
	tree, result, _ := checkString(t, "let x = 1")
	if ty := result.TyOf(tree.NExpr()); ty != NoneTy {
		t.Errorf("type = %v, want none", ty)
	}
}
