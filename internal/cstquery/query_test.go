package cstquery

import (
	"testing"

	"larch/internal/cst/green"
	"larch/internal/cst/red"
	"larch/internal/token"
)

func tok(kind token.Kind, text string) *token.Token {
	return &token.Token{Kind: kind, Text: text}
}

func trailing(kind token.Kind, text string, tr ...token.Trivium) *token.Token {
	return &token.Token{Kind: kind, Text: text, Trailing: tr}
}

func dummy(kind token.Kind) *token.Token {
	t := token.Dummy(kind)
	return &t
}

var (
	space   = token.Trivium{Kind: token.TriviaSpace, Text: " "}
	newline = token.Trivium{Kind: token.TriviaNewline, Text: "\n"}
)

// nestedLets builds the tree for:
//
//	let foo =
//	  let bar = 3
//	  bar
//	foo
//
// with both in-tokens inserted by the pre-parser.
func nestedLets() *red.SyntaxTree {
	inner := green.NewLetExpr(
		&token.Token{Kind: token.KwLet, Text: "let", Leading: []token.Trivium{{Kind: token.TriviaSpace, Text: "  "}}, Trailing: []token.Trivium{space}},
		green.NewVariablePattern(trailing(token.Ident, "bar", space)),
		nil,
		trailing(token.Equals, "=", space),
		green.NewIntLiteralExpr(trailing(token.IntLit, "3", newline)),
		dummy(token.DummyIn),
		green.NewIdentifierExpr(&token.Token{Kind: token.Ident, Text: "bar", Leading: []token.Trivium{{Kind: token.TriviaSpace, Text: "  "}}, Trailing: []token.Trivium{newline}}),
	)
	outer := green.NewLetExpr(
		trailing(token.KwLet, "let", space),
		green.NewVariablePattern(trailing(token.Ident, "foo", space)),
		nil,
		trailing(token.Equals, "=", newline),
		inner,
		dummy(token.DummyIn),
		green.NewIdentifierExpr(tok(token.Ident, "foo")),
	)
	return red.NewSyntaxTree(green.NewSyntaxTree(outer, dummy(token.EOF)))
}

func TestFindInstancesNestedLets(t *testing.T) {
	const src = "let foo =\n  let bar = 3\n  bar\nfoo"
	tree := nestedLets()
	if got := tree.FullText(); got != src {
		t.Fatalf("FullText = %q, want %q", got, src)
	}

	var lets []*red.LetExpr
	for le := range FindInstances[*red.LetExpr](tree) {
		lets = append(lets, le)
	}
	if len(lets) != 2 {
		t.Fatalf("found %d let expressions, want 2", len(lets))
	}
	if lets[0].Offset() >= lets[1].Offset() {
		t.Fatal("let expressions out of source order")
	}

	// The inner binding's pattern is identity-stable: a second query
	// reaches the same node the accessor already handed out.
	innerPat := lets[1].NPattern()
	var pats []*red.VariablePattern
	for p := range FindInstances[*red.VariablePattern](tree) {
		pats = append(pats, p)
	}
	if len(pats) != 2 {
		t.Fatalf("found %d patterns, want 2", len(pats))
	}
	if pats[1] != innerPat {
		t.Fatal("query returned a different node than the accessor")
	}
}

func TestFindInstancesIsRestartable(t *testing.T) {
	tree := nestedLets()
	seq := FindInstances[*red.IdentifierExpr](tree)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 2 || b != 2 {
		t.Fatalf("counts = %d, %d, want 2, 2", a, b)
	}
}

func TestFindInstancesEarlyStop(t *testing.T) {
	tree := nestedLets()
	var first *red.LetExpr
	for le := range FindInstances[*red.LetExpr](tree) {
		first = le
		break
	}
	if first == nil || first.Offset() != 0 {
		t.Fatal("early break did not stop at the outer let")
	}
}

func TestFindInstancesCallArguments(t *testing.T) {
	// "print(1, 2)"
	g := green.NewSyntaxTree(
		green.NewFunctionCallExpr(
			green.NewIdentifierExpr(tok(token.Ident, "print")),
			green.NewArgumentList(
				tok(token.LParen, "("),
				[]*green.Argument{
					green.NewArgument(green.NewIntLiteralExpr(tok(token.IntLit, "1")), tok(token.Comma, ",")),
					green.NewArgument(green.NewIntLiteralExpr(&token.Token{Kind: token.IntLit, Text: "2", Leading: []token.Trivium{space}}), nil),
				},
				tok(token.RParen, ")"),
			),
		),
		dummy(token.EOF),
	)
	tree := red.NewSyntaxTree(g)

	var lits []*red.IntLiteralExpr
	for l := range FindInstances[*red.IntLiteralExpr](tree) {
		lits = append(lits, l)
	}
	if len(lits) != 2 {
		t.Fatalf("found %d int literals, want 2", len(lits))
	}
	if lits[0].Text() != "1" || lits[1].Text() != "2" {
		t.Fatalf("literals = %q, %q", lits[0].Text(), lits[1].Text())
	}
}

func TestAncestors(t *testing.T) {
	tree := nestedLets()
	outer := tree.NExpr().(*red.LetExpr)
	inner := outer.NValue().(*red.LetExpr)
	body := inner.NBody().(*red.IdentifierExpr)

	var chain []red.Node
	for a := range Ancestors(body) {
		chain = append(chain, a)
	}
	if len(chain) != 3 {
		t.Fatalf("ancestor chain length = %d, want 3", len(chain))
	}
	if chain[0] != red.Node(inner) || chain[1] != red.Node(outer) || chain[2] != red.Node(tree) {
		t.Fatal("ancestor chain out of order")
	}
}

func TestContaining(t *testing.T) {
	const src = "let foo =\n  let bar = 3\n  bar\nfoo"
	tree := nestedLets()

	off := len("let foo =\n  let bar = ") // the "3"
	n := Containing(tree, off)
	if _, ok := n.(*red.IntLiteralExpr); !ok {
		t.Fatalf("containing node is %T, want *red.IntLiteralExpr", n)
	}
	if Containing(tree, len(src)+10) != nil {
		t.Fatal("offset past the file should contain nothing")
	}
}
