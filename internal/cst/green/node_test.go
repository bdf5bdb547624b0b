package green

import (
	"testing"

	"larch/internal/token"
)

func tok(kind token.Kind, text string) *token.Token {
	return &token.Token{Kind: kind, Text: text}
}

func spaced(kind token.Kind, text string, leading, trailing string) *token.Token {
	t := &token.Token{Kind: kind, Text: text}
	if leading != "" {
		t.Leading = []token.Trivium{{Kind: token.TriviaSpace, Text: leading}}
	}
	if trailing != "" {
		t.Trailing = []token.Trivium{{Kind: token.TriviaSpace, Text: trailing}}
	}
	return t
}

// letFooTree builds the tree for "let foo = 1\nfoo" the way the parser
// would: the in-token is a zero-width dummy, the newline is trailing
// trivia of the value token.
func letFooTree() *SyntaxTree {
	tLet := spaced(token.KwLet, "let", "", " ")
	tFoo := spaced(token.Ident, "foo", "", " ")
	tEq := spaced(token.Equals, "=", "", " ")
	tOne := &token.Token{
		Kind: token.IntLit, Text: "1",
		Trailing: []token.Trivium{{Kind: token.TriviaNewline, Text: "\n"}},
	}
	tIn := token.Dummy(token.DummyIn)
	tBody := tok(token.Ident, "foo")
	tEOF := token.Dummy(token.EOF)

	letExpr := NewLetExpr(
		tLet,
		NewVariablePattern(tFoo),
		nil,
		tEq,
		NewIntLiteralExpr(tOne),
		&tIn,
		NewIdentifierExpr(tBody),
	)
	return NewSyntaxTree(letExpr, &tEOF)
}

func TestFullTextRoundTrip(t *testing.T) {
	const src = "let foo = 1\nfoo"
	tree := letFooTree()
	if got := tree.FullText(); got != src {
		t.Fatalf("FullText = %q, want %q", got, src)
	}
	if got := tree.FullWidth(); got != len(src) {
		t.Fatalf("FullWidth = %d, want %d", got, len(src))
	}
}

func TestWidthAdditivity(t *testing.T) {
	var walk func(n Node)
	walk = func(n Node) {
		sum := 0
		for _, c := range n.Children() {
			sum += c.FullWidth()
			if child, ok := c.Node(); ok {
				walk(child)
			}
		}
		if sum != n.FullWidth() {
			t.Errorf("%T: children sum %d != FullWidth %d", n, sum, n.FullWidth())
		}
		if n.Width() != n.FullWidth()-n.LeadingWidth()-n.TrailingWidth() {
			t.Errorf("%T: Width %d violates decomposition", n, n.Width())
		}
	}
	walk(letFooTree())
}

func TestTriviaWidths(t *testing.T) {
	tree := letFooTree()
	letExpr := tree.NExpr().(*LetExpr)

	// "let foo = 1\n" then "foo": the value's trailing newline belongs to
	// the IntLiteralExpr, so the let expression as a whole has no leading
	// or trailing trivia of its own.
	if got := letExpr.LeadingWidth(); got != 0 {
		t.Errorf("LetExpr.LeadingWidth = %d, want 0", got)
	}
	if got := letExpr.TrailingWidth(); got != 0 {
		t.Errorf("LetExpr.TrailingWidth = %d, want 0", got)
	}

	value := letExpr.NValue().(*IntLiteralExpr)
	if got := value.TrailingWidth(); got != 1 {
		t.Errorf("IntLiteralExpr.TrailingWidth = %d, want 1", got)
	}
	if got, want := value.Text(), "1"; got != want {
		t.Errorf("IntLiteralExpr.Text = %q, want %q", got, want)
	}
	if got, want := value.FullText(), "1\n"; got != want {
		t.Errorf("IntLiteralExpr.FullText = %q, want %q", got, want)
	}
}

func TestTextStripsOuterTrivia(t *testing.T) {
	tIdent := spaced(token.Ident, "bar", "  ", " ")
	expr := NewIdentifierExpr(tIdent)

	if got, want := expr.FullText(), "  bar "; got != want {
		t.Errorf("FullText = %q, want %q", got, want)
	}
	if got, want := expr.Text(), "bar"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got, want := expr.LeadingText(), "  "; got != want {
		t.Errorf("LeadingText = %q, want %q", got, want)
	}
	if got, want := expr.TrailingText(), " "; got != want {
		t.Errorf("TrailingText = %q, want %q", got, want)
	}
}

func TestDummyTokensAreNotPresent(t *testing.T) {
	// A let whose in-token is a dummy: the last present token is the body
	// identifier, so its trailing trivia is the node's trailing trivia.
	tLet := spaced(token.KwLet, "let", "", " ")
	tName := spaced(token.Ident, "x", "", " ")
	tEq := spaced(token.Equals, "=", "", " ")
	tVal := spaced(token.IntLit, "2", "", "")
	tIn := token.Dummy(token.DummyIn)
	tBody := spaced(token.Ident, "x", " ", "  ")

	letExpr := NewLetExpr(
		tLet,
		NewVariablePattern(tName),
		nil,
		tEq,
		NewIntLiteralExpr(tVal),
		&tIn,
		NewIdentifierExpr(tBody),
	)
	if got := letExpr.TrailingWidth(); got != 2 {
		t.Errorf("TrailingWidth = %d, want 2", got)
	}

	// EOF is a dummy too: the root's trailing trivia comes from the body.
	tEOF := token.Dummy(token.EOF)
	tree := NewSyntaxTree(letExpr, &tEOF)
	if got := tree.TrailingWidth(); got != 2 {
		t.Errorf("root TrailingWidth = %d, want 2", got)
	}
}

func TestAbsentChildren(t *testing.T) {
	// A recovered parse can leave slots empty. Absent slots are zero
	// width and contribute no text.
	letExpr := NewLetExpr(
		spaced(token.KwLet, "let", "", " "),
		NewVariablePattern(tok(token.Ident, "x")),
		nil,
		nil,
		nil,
		nil,
		nil,
	)
	if got, want := letExpr.FullText(), "let x"; got != want {
		t.Errorf("FullText = %q, want %q", got, want)
	}
	absent := 0
	for _, c := range letExpr.Children() {
		if c.IsAbsent() {
			absent++
		}
	}
	if absent != 5 {
		t.Errorf("absent children = %d, want 5", absent)
	}
}

func TestParameterList(t *testing.T) {
	params := NewParameterList(
		tok(token.LParen, "("),
		[]*Parameter{
			NewParameter(NewVariablePattern(tok(token.Ident, "x")), spaced(token.Comma, ",", "", " ")),
			NewParameter(NewVariablePattern(tok(token.Ident, "y")), nil),
		},
		tok(token.RParen, ")"),
	)
	if got, want := params.FullText(), "(x, y)"; got != want {
		t.Errorf("FullText = %q, want %q", got, want)
	}
	if got := len(params.Parameters()); got != 2 {
		t.Errorf("Parameters len = %d, want 2", got)
	}
	if got := len(params.Children()); got != 4 {
		t.Errorf("Children len = %d, want 4", got)
	}
}

func TestBinaryAndCall(t *testing.T) {
	call := NewFunctionCallExpr(
		NewIdentifierExpr(tok(token.Ident, "f")),
		NewArgumentList(
			tok(token.LParen, "("),
			[]*Argument{
				NewArgument(NewIntLiteralExpr(tok(token.IntLit, "1")), spaced(token.Comma, ",", "", " ")),
				NewArgument(NewIntLiteralExpr(tok(token.IntLit, "2")), nil),
			},
			tok(token.RParen, ")"),
		),
	)
	sum := NewBinaryExpr(
		call,
		spaced(token.Plus, "+", " ", " "),
		NewIntLiteralExpr(tok(token.IntLit, "3")),
	)
	if got, want := sum.FullText(), "f(1, 2) + 3"; got != want {
		t.Errorf("FullText = %q, want %q", got, want)
	}
	if got := sum.Width(); got != len("f(1, 2) + 3") {
		t.Errorf("Width = %d, want %d", got, len("f(1, 2) + 3"))
	}
}
