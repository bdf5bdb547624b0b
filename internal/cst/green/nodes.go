package green

import (
	"larch/internal/token"
)

// SyntaxTree is the root of a compiled unit: one optional top-level
// expression plus the EOF marker.
type SyntaxTree struct {
	node
	nExpr Expr
	tEOF  *token.Token
}

func NewSyntaxTree(nExpr Expr, tEOF *token.Token) *SyntaxTree {
	return &SyntaxTree{
		node:  newNode([]Child{NodeChild(nExpr), TokenChild(tEOF)}),
		nExpr: nExpr,
		tEOF:  tEOF,
	}
}

func (n *SyntaxTree) NExpr() Expr        { return n.nExpr }
func (n *SyntaxTree) TEOF() *token.Token { return n.tEOF }

// VariablePattern binds a single identifier.
type VariablePattern struct {
	node
	tIdentifier *token.Token
}

func NewVariablePattern(tIdentifier *token.Token) *VariablePattern {
	return &VariablePattern{
		node:        newNode([]Child{TokenChild(tIdentifier)}),
		tIdentifier: tIdentifier,
	}
}

func (n *VariablePattern) TIdentifier() *token.Token { return n.tIdentifier }
func (n *VariablePattern) isPattern()                {}

// Parameter is one comma-terminated element of a parameter list.
type Parameter struct {
	node
	nPattern Pattern
	tComma   *token.Token
}

func NewParameter(nPattern Pattern, tComma *token.Token) *Parameter {
	return &Parameter{
		node:     newNode([]Child{NodeChild(nPattern), TokenChild(tComma)}),
		nPattern: nPattern,
		tComma:   tComma,
	}
}

func (n *Parameter) NPattern() Pattern    { return n.nPattern }
func (n *Parameter) TComma() *token.Token { return n.tComma }

// ParameterList is the parenthesized parameter list of a function
// let-binding.
type ParameterList struct {
	node
	tLParen    *token.Token
	parameters []*Parameter
	tRParen    *token.Token
}

func NewParameterList(tLParen *token.Token, parameters []*Parameter, tRParen *token.Token) *ParameterList {
	children := make([]Child, 0, len(parameters)+2)
	children = append(children, TokenChild(tLParen))
	for _, p := range parameters {
		children = append(children, NodeChild(p))
	}
	children = append(children, TokenChild(tRParen))
	return &ParameterList{
		node:       newNode(children),
		tLParen:    tLParen,
		parameters: parameters,
		tRParen:    tRParen,
	}
}

func (n *ParameterList) TLParen() *token.Token    { return n.tLParen }
func (n *ParameterList) Parameters() []*Parameter { return n.parameters }
func (n *ParameterList) TRParen() *token.Token    { return n.tRParen }

// Argument is one comma-terminated element of an argument list.
type Argument struct {
	node
	nExpr  Expr
	tComma *token.Token
}

func NewArgument(nExpr Expr, tComma *token.Token) *Argument {
	return &Argument{
		node:   newNode([]Child{NodeChild(nExpr), TokenChild(tComma)}),
		nExpr:  nExpr,
		tComma: tComma,
	}
}

func (n *Argument) NExpr() Expr          { return n.nExpr }
func (n *Argument) TComma() *token.Token { return n.tComma }

// ArgumentList is the parenthesized argument list of a function call.
type ArgumentList struct {
	node
	tLParen   *token.Token
	arguments []*Argument
	tRParen   *token.Token
}

func NewArgumentList(tLParen *token.Token, arguments []*Argument, tRParen *token.Token) *ArgumentList {
	children := make([]Child, 0, len(arguments)+2)
	children = append(children, TokenChild(tLParen))
	for _, a := range arguments {
		children = append(children, NodeChild(a))
	}
	children = append(children, TokenChild(tRParen))
	return &ArgumentList{
		node:      newNode(children),
		tLParen:   tLParen,
		arguments: arguments,
		tRParen:   tRParen,
	}
}

func (n *ArgumentList) TLParen() *token.Token  { return n.tLParen }
func (n *ArgumentList) Arguments() []*Argument { return n.arguments }
func (n *ArgumentList) TRParen() *token.Token  { return n.tRParen }

// LetExpr is a let-binding: `let pattern(params) = value <in> body`. The
// in-token is always a pre-parser dummy; the parameter list is present only
// for function bindings.
type LetExpr struct {
	node
	tLet           *token.Token
	nPattern       Pattern
	nParameterList *ParameterList
	tEquals        *token.Token
	nValue         Expr
	tIn            *token.Token
	nBody          Expr
}

func NewLetExpr(
	tLet *token.Token,
	nPattern Pattern,
	nParameterList *ParameterList,
	tEquals *token.Token,
	nValue Expr,
	tIn *token.Token,
	nBody Expr,
) *LetExpr {
	var paramChild Child
	if nParameterList != nil {
		paramChild = NodeChild(nParameterList)
	}
	return &LetExpr{
		node: newNode([]Child{
			TokenChild(tLet),
			NodeChild(nPattern),
			paramChild,
			TokenChild(tEquals),
			NodeChild(nValue),
			TokenChild(tIn),
			NodeChild(nBody),
		}),
		tLet:           tLet,
		nPattern:       nPattern,
		nParameterList: nParameterList,
		tEquals:        tEquals,
		nValue:         nValue,
		tIn:            tIn,
		nBody:          nBody,
	}
}

func (n *LetExpr) TLet() *token.Token             { return n.tLet }
func (n *LetExpr) NPattern() Pattern              { return n.nPattern }
func (n *LetExpr) NParameterList() *ParameterList { return n.nParameterList }
func (n *LetExpr) TEquals() *token.Token          { return n.tEquals }
func (n *LetExpr) NValue() Expr                   { return n.nValue }
func (n *LetExpr) TIn() *token.Token              { return n.tIn }
func (n *LetExpr) NBody() Expr                    { return n.nBody }
func (n *LetExpr) isExpr()                        {}

// IfExpr is a conditional: `if condition then expr <else expr> <endif>`.
// The endif token is always a pre-parser dummy.
type IfExpr struct {
	node
	tIf        *token.Token
	nCondition Expr
	tThen      *token.Token
	nThen      Expr
	tElse      *token.Token
	nElse      Expr
	tEndif     *token.Token
}

func NewIfExpr(
	tIf *token.Token,
	nCondition Expr,
	tThen *token.Token,
	nThen Expr,
	tElse *token.Token,
	nElse Expr,
	tEndif *token.Token,
) *IfExpr {
	return &IfExpr{
		node: newNode([]Child{
			TokenChild(tIf),
			NodeChild(nCondition),
			TokenChild(tThen),
			NodeChild(nThen),
			TokenChild(tElse),
			NodeChild(nElse),
			TokenChild(tEndif),
		}),
		tIf:        tIf,
		nCondition: nCondition,
		tThen:      tThen,
		nThen:      nThen,
		tElse:      tElse,
		nElse:      nElse,
		tEndif:     tEndif,
	}
}

func (n *IfExpr) TIf() *token.Token    { return n.tIf }
func (n *IfExpr) NCondition() Expr     { return n.nCondition }
func (n *IfExpr) TThen() *token.Token  { return n.tThen }
func (n *IfExpr) NThen() Expr          { return n.nThen }
func (n *IfExpr) TElse() *token.Token  { return n.tElse }
func (n *IfExpr) NElse() Expr          { return n.nElse }
func (n *IfExpr) TEndif() *token.Token { return n.tEndif }
func (n *IfExpr) isExpr()              {}

// IdentifierExpr is a reference to a bound name.
type IdentifierExpr struct {
	node
	tIdentifier *token.Token
}

func NewIdentifierExpr(tIdentifier *token.Token) *IdentifierExpr {
	return &IdentifierExpr{
		node:        newNode([]Child{TokenChild(tIdentifier)}),
		tIdentifier: tIdentifier,
	}
}

func (n *IdentifierExpr) TIdentifier() *token.Token { return n.tIdentifier }
func (n *IdentifierExpr) isExpr()                   {}

// IntLiteralExpr is an integer literal.
type IntLiteralExpr struct {
	node
	tIntLiteral *token.Token
}

func NewIntLiteralExpr(tIntLiteral *token.Token) *IntLiteralExpr {
	return &IntLiteralExpr{
		node:        newNode([]Child{TokenChild(tIntLiteral)}),
		tIntLiteral: tIntLiteral,
	}
}

func (n *IntLiteralExpr) TIntLiteral() *token.Token { return n.tIntLiteral }
func (n *IntLiteralExpr) isExpr()                   {}

// BinaryExpr is an infix operation: operand, operator token, operand.
type BinaryExpr struct {
	node
	nLhs      Expr
	tOperator *token.Token
	nRhs      Expr
}

func NewBinaryExpr(nLhs Expr, tOperator *token.Token, nRhs Expr) *BinaryExpr {
	return &BinaryExpr{
		node: newNode([]Child{
			NodeChild(nLhs),
			TokenChild(tOperator),
			NodeChild(nRhs),
		}),
		nLhs:      nLhs,
		tOperator: tOperator,
		nRhs:      nRhs,
	}
}

func (n *BinaryExpr) NLhs() Expr              { return n.nLhs }
func (n *BinaryExpr) TOperator() *token.Token { return n.tOperator }
func (n *BinaryExpr) NRhs() Expr              { return n.nRhs }
func (n *BinaryExpr) isExpr()                 {}

// FunctionCallExpr is a call: callee expression plus a parenthesized
// argument list.
type FunctionCallExpr struct {
	node
	nReceiver     Expr
	nArgumentList *ArgumentList
}

func NewFunctionCallExpr(nReceiver Expr, nArgumentList *ArgumentList) *FunctionCallExpr {
	var argChild Child
	if nArgumentList != nil {
		argChild = NodeChild(nArgumentList)
	}
	return &FunctionCallExpr{
		node:          newNode([]Child{NodeChild(nReceiver), argChild}),
		nReceiver:     nReceiver,
		nArgumentList: nArgumentList,
	}
}

func (n *FunctionCallExpr) NReceiver() Expr              { return n.nReceiver }
func (n *FunctionCallExpr) NArgumentList() *ArgumentList { return n.nArgumentList }
func (n *FunctionCallExpr) isExpr()                      {}
