package red

import (
	"larch/internal/cst/green"
	"larch/internal/token"
)

// Slot indices into each green node's Children(), used to position red
// children. They must match the child order the green constructors build.
const (
	slotTreeExpr = 0

	slotLetPattern       = 1
	slotLetParameterList = 2
	slotLetValue         = 4
	slotLetBody          = 6

	slotIfCondition = 1
	slotIfThen      = 3
	slotIfElse      = 5

	slotBinaryLhs = 0
	slotBinaryRhs = 2

	slotCallReceiver     = 0
	slotCallArgumentList = 1

	slotListFirstElem = 1
)

// SyntaxTree is the red root. It has no parent and sits at offset zero.
type SyntaxTree struct {
	base
	node *green.SyntaxTree

	cExpr Expr
}

// NewSyntaxTree builds a red root over a green tree. Roots are cheap:
// a consumer that wants a private facade just builds another one.
func NewSyntaxTree(g *green.SyntaxTree) *SyntaxTree {
	return &SyntaxTree{base: newBase(nil, g, 0), node: g}
}

func (n *SyntaxTree) NExpr() Expr {
	if n.cExpr == nil {
		g := n.node.NExpr()
		if g == nil {
			return nil
		}
		n.cExpr = wrapExpr(g, n, n.slotOffset(slotTreeExpr))
	}
	return n.cExpr
}

func (n *SyntaxTree) TEOF() *token.Token { return n.node.TEOF() }

func (n *SyntaxTree) Children() []Node {
	return appendPresent(nil, n.NExpr())
}

// VariablePattern binds a single identifier.
type VariablePattern struct {
	base
	node *green.VariablePattern
}

func (n *VariablePattern) TIdentifier() *token.Token { return n.node.TIdentifier() }
func (n *VariablePattern) Children() []Node          { return nil }
func (n *VariablePattern) isPattern()                {}

// Parameter is one element of a parameter list.
type Parameter struct {
	base
	node *green.Parameter

	cPattern Pattern
}

func (n *Parameter) NPattern() Pattern {
	if n.cPattern == nil {
		g := n.node.NPattern()
		if g == nil {
			return nil
		}
		n.cPattern = wrapPattern(g, n, n.slotOffset(0))
	}
	return n.cPattern
}

func (n *Parameter) TComma() *token.Token { return n.node.TComma() }

func (n *Parameter) Children() []Node {
	return appendPresent(nil, n.NPattern())
}

// ParameterList is the parenthesized parameter list of a function binding.
// The element list materializes as a whole on first access.
type ParameterList struct {
	base
	node *green.ParameterList

	cParameters []*Parameter
}

func (n *ParameterList) TLParen() *token.Token { return n.node.TLParen() }
func (n *ParameterList) TRParen() *token.Token { return n.node.TRParen() }

func (n *ParameterList) Parameters() []*Parameter {
	if n.cParameters == nil {
		gps := n.node.Parameters()
		off := n.slotOffset(slotListFirstElem)
		ps := make([]*Parameter, len(gps))
		for i, gp := range gps {
			ps[i] = &Parameter{base: newBase(n, gp, off), node: gp}
			off += gp.FullWidth()
		}
		n.cParameters = ps
	}
	return n.cParameters
}

func (n *ParameterList) Children() []Node {
	ps := n.Parameters()
	out := make([]Node, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// Argument is one element of an argument list.
type Argument struct {
	base
	node *green.Argument

	cExpr Expr
}

func (n *Argument) NExpr() Expr {
	if n.cExpr == nil {
		g := n.node.NExpr()
		if g == nil {
			return nil
		}
		n.cExpr = wrapExpr(g, n, n.slotOffset(0))
	}
	return n.cExpr
}

func (n *Argument) TComma() *token.Token { return n.node.TComma() }

func (n *Argument) Children() []Node {
	return appendPresent(nil, n.NExpr())
}

// ArgumentList is the parenthesized argument list of a call.
type ArgumentList struct {
	base
	node *green.ArgumentList

	cArguments []*Argument
}

func (n *ArgumentList) TLParen() *token.Token { return n.node.TLParen() }
func (n *ArgumentList) TRParen() *token.Token { return n.node.TRParen() }

func (n *ArgumentList) Arguments() []*Argument {
	if n.cArguments == nil {
		gas := n.node.Arguments()
		off := n.slotOffset(slotListFirstElem)
		as := make([]*Argument, len(gas))
		for i, ga := range gas {
			as[i] = &Argument{base: newBase(n, ga, off), node: ga}
			off += ga.FullWidth()
		}
		n.cArguments = as
	}
	return n.cArguments
}

func (n *ArgumentList) Children() []Node {
	as := n.Arguments()
	out := make([]Node, len(as))
	for i, a := range as {
		out[i] = a
	}
	return out
}

// LetExpr is a let-binding.
type LetExpr struct {
	base
	node *green.LetExpr

	cPattern       Pattern
	cParameterList *ParameterList
	cValue         Expr
	cBody          Expr
}

func (n *LetExpr) TLet() *token.Token    { return n.node.TLet() }
func (n *LetExpr) TEquals() *token.Token { return n.node.TEquals() }
func (n *LetExpr) TIn() *token.Token     { return n.node.TIn() }

func (n *LetExpr) NPattern() Pattern {
	if n.cPattern == nil {
		g := n.node.NPattern()
		if g == nil {
			return nil
		}
		n.cPattern = wrapPattern(g, n, n.slotOffset(slotLetPattern))
	}
	return n.cPattern
}

func (n *LetExpr) NParameterList() *ParameterList {
	if n.cParameterList == nil {
		g := n.node.NParameterList()
		if g == nil {
			return nil
		}
		n.cParameterList = &ParameterList{
			base: newBase(n, g, n.slotOffset(slotLetParameterList)),
			node: g,
		}
	}
	return n.cParameterList
}

func (n *LetExpr) NValue() Expr {
	if n.cValue == nil {
		g := n.node.NValue()
		if g == nil {
			return nil
		}
		n.cValue = wrapExpr(g, n, n.slotOffset(slotLetValue))
	}
	return n.cValue
}

func (n *LetExpr) NBody() Expr {
	if n.cBody == nil {
		g := n.node.NBody()
		if g == nil {
			return nil
		}
		n.cBody = wrapExpr(g, n, n.slotOffset(slotLetBody))
	}
	return n.cBody
}

func (n *LetExpr) Children() []Node {
	out := appendPresent(nil, n.NPattern())
	if pl := n.NParameterList(); pl != nil {
		out = append(out, pl)
	}
	out = appendPresent(out, n.NValue())
	return appendPresent(out, n.NBody())
}

func (n *LetExpr) isExpr() {}

// IfExpr is a conditional.
type IfExpr struct {
	base
	node *green.IfExpr

	cCondition Expr
	cThen      Expr
	cElse      Expr
}

func (n *IfExpr) TIf() *token.Token    { return n.node.TIf() }
func (n *IfExpr) TThen() *token.Token  { return n.node.TThen() }
func (n *IfExpr) TElse() *token.Token  { return n.node.TElse() }
func (n *IfExpr) TEndif() *token.Token { return n.node.TEndif() }

func (n *IfExpr) NCondition() Expr {
	if n.cCondition == nil {
		g := n.node.NCondition()
		if g == nil {
			return nil
		}
		n.cCondition = wrapExpr(g, n, n.slotOffset(slotIfCondition))
	}
	return n.cCondition
}

func (n *IfExpr) NThen() Expr {
	if n.cThen == nil {
		g := n.node.NThen()
		if g == nil {
			return nil
		}
		n.cThen = wrapExpr(g, n, n.slotOffset(slotIfThen))
	}
	return n.cThen
}

func (n *IfExpr) NElse() Expr {
	if n.cElse == nil {
		g := n.node.NElse()
		if g == nil {
			return nil
		}
		n.cElse = wrapExpr(g, n, n.slotOffset(slotIfElse))
	}
	return n.cElse
}

func (n *IfExpr) Children() []Node {
	out := appendPresent(nil, n.NCondition())
	out = appendPresent(out, n.NThen())
	return appendPresent(out, n.NElse())
}

func (n *IfExpr) isExpr() {}

// IdentifierExpr is a reference to a bound name.
type IdentifierExpr struct {
	base
	node *green.IdentifierExpr
}

func (n *IdentifierExpr) TIdentifier() *token.Token { return n.node.TIdentifier() }
func (n *IdentifierExpr) Children() []Node          { return nil }
func (n *IdentifierExpr) isExpr()                   {}

// IntLiteralExpr is an integer literal.
type IntLiteralExpr struct {
	base
	node *green.IntLiteralExpr
}

func (n *IntLiteralExpr) TIntLiteral() *token.Token { return n.node.TIntLiteral() }
func (n *IntLiteralExpr) Children() []Node          { return nil }
func (n *IntLiteralExpr) isExpr()                   {}

// BinaryExpr is an infix operation.
type BinaryExpr struct {
	base
	node *green.BinaryExpr

	cLhs Expr
	cRhs Expr
}

func (n *BinaryExpr) TOperator() *token.Token { return n.node.TOperator() }

func (n *BinaryExpr) NLhs() Expr {
	if n.cLhs == nil {
		g := n.node.NLhs()
		if g == nil {
			return nil
		}
		n.cLhs = wrapExpr(g, n, n.slotOffset(slotBinaryLhs))
	}
	return n.cLhs
}

func (n *BinaryExpr) NRhs() Expr {
	if n.cRhs == nil {
		g := n.node.NRhs()
		if g == nil {
			return nil
		}
		n.cRhs = wrapExpr(g, n, n.slotOffset(slotBinaryRhs))
	}
	return n.cRhs
}

func (n *BinaryExpr) Children() []Node {
	out := appendPresent(nil, n.NLhs())
	return appendPresent(out, n.NRhs())
}

func (n *BinaryExpr) isExpr() {}

// FunctionCallExpr is a call.
type FunctionCallExpr struct {
	base
	node *green.FunctionCallExpr

	cReceiver     Expr
	cArgumentList *ArgumentList
}

func (n *FunctionCallExpr) NReceiver() Expr {
	if n.cReceiver == nil {
		g := n.node.NReceiver()
		if g == nil {
			return nil
		}
		n.cReceiver = wrapExpr(g, n, n.slotOffset(slotCallReceiver))
	}
	return n.cReceiver
}

func (n *FunctionCallExpr) NArgumentList() *ArgumentList {
	if n.cArgumentList == nil {
		g := n.node.NArgumentList()
		if g == nil {
			return nil
		}
		n.cArgumentList = &ArgumentList{
			base: newBase(n, g, n.slotOffset(slotCallArgumentList)),
			node: g,
		}
	}
	return n.cArgumentList
}

func (n *FunctionCallExpr) Children() []Node {
	out := appendPresent(nil, n.NReceiver())
	if al := n.NArgumentList(); al != nil {
		out = append(out, al)
	}
	return out
}

func (n *FunctionCallExpr) isExpr() {}

// appendPresent appends a node child unless the slot was absent. The nil
// checks go through the interface value, so callers pass accessor results
// directly.
func appendPresent(out []Node, n Node) []Node {
	if n == nil {
		return out
	}
	return append(out, n)
}
