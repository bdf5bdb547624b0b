// Package codegen lowers a checked syntax tree to Python source.
//
// Each expression lowers to a fragment: statement lines to run first and a
// Python expression for the value. Nested let-bindings become assignments
// or def-statements ahead of the expression that uses them, so the output
// stays flat and readable.
package codegen

import (
	"fmt"
	"strings"

	"larch/internal/cst/red"
	"larch/internal/token"
)

// Generate emits the Python program for a tree. The tree should be free
// of syntax and semantic errors; absent slots are lowered to 'None' so
// the output is still valid Python either way.
func Generate(tree *red.SyntaxTree) string {
	g := &generator{env: newEnv()}

	expr := tree.NExpr()
	if expr == nil {
		return ""
	}
	frag := g.emitExpr(expr)

	var sb strings.Builder
	for _, line := range frag.code {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if frag.expr != "" {
		sb.WriteString(frag.expr)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fragment is the lowered form of one expression: statements to execute
// beforehand, and the expression producing the value.
type fragment struct {
	code []string
	expr string
}

type generator struct {
	env *env
}

func (g *generator) emitExpr(expr red.Expr) fragment {
	switch expr := expr.(type) {
	case *red.IntLiteralExpr:
		return fragment{expr: tokenText(expr.TIntLiteral())}

	case *red.IdentifierExpr:
		return fragment{expr: tokenText(expr.TIdentifier())}

	case *red.BinaryExpr:
		return g.emitBinary(expr)

	case *red.FunctionCallExpr:
		return g.emitCall(expr)

	case *red.LetExpr:
		return g.emitLet(expr)

	case *red.IfExpr:
		return g.emitIf(expr)
	}
	panic(fmt.Sprintf("codegen: unknown expression kind %T", expr))
}

func tokenText(t *token.Token) string {
	if t == nil {
		return "None"
	}
	return t.Text
}

func (g *generator) emitBinary(expr *red.BinaryExpr) fragment {
	lhs := g.emitExpr2(expr.NLhs())
	rhs := g.emitExpr2(expr.NRhs())
	op := "+"
	if t := expr.TOperator(); t != nil {
		op = t.Text
	}
	return fragment{
		code: append(lhs.code, rhs.code...),
		expr: "(" + lhs.expr + " " + op + " " + rhs.expr + ")",
	}
}

func (g *generator) emitCall(expr *red.FunctionCallExpr) fragment {
	callee := g.emitExpr2(expr.NReceiver())
	code := callee.code

	var argExprs []string
	if list := expr.NArgumentList(); list != nil {
		for _, arg := range list.Arguments() {
			a := g.emitExpr2(arg.NExpr())
			code = append(code, a.code...)
			argExprs = append(argExprs, a.expr)
		}
	}
	return fragment{
		code: code,
		expr: callee.expr + "(" + strings.Join(argExprs, ", ") + ")",
	}
}

func (g *generator) emitLet(expr *red.LetExpr) fragment {
	name := "_"
	if p, ok := expr.NPattern().(*red.VariablePattern); ok && p.TIdentifier() != nil {
		name = p.TIdentifier().Text
	}
	g.env.current().claim(name)

	var code []string
	if params := expr.NParameterList(); params != nil {
		code = g.emitFunctionDef(name, params, expr.NValue())
	} else {
		value := g.emitExpr2(expr.NValue())
		code = append(value.code, name+" = "+value.expr)
	}

	body := expr.NBody()
	if body == nil {
		return fragment{code: code, expr: ""}
	}
	bodyFrag := g.emitExpr(body)
	return fragment{
		code: append(code, bodyFrag.code...),
		expr: bodyFrag.expr,
	}
}

func (g *generator) emitFunctionDef(name string, params *red.ParameterList, value red.Expr) []string {
	g.env.push()
	defer g.env.pop()

	var paramNames []string
	for _, param := range params.Parameters() {
		if p, ok := param.NPattern().(*red.VariablePattern); ok && p.TIdentifier() != nil {
			pname := p.TIdentifier().Text
			g.env.current().claim(pname)
			paramNames = append(paramNames, pname)
		}
	}

	valueFrag := g.emitExpr2(value)
	lines := []string{"def " + name + "(" + strings.Join(paramNames, ", ") + "):"}
	for _, line := range valueFrag.code {
		lines = append(lines, indent(line))
	}
	lines = append(lines, indent("return "+valueFrag.expr))
	return lines
}

func (g *generator) emitIf(expr *red.IfExpr) fragment {
	cond := g.emitExpr2(expr.NCondition())
	thenFrag := g.emitExpr2(expr.NThen())
	elseFrag := fragment{expr: "None"}
	if expr.NElse() != nil {
		elseFrag = g.emitExpr2(expr.NElse())
	}

	// Statement-free branches lower to a conditional expression.
	if len(thenFrag.code) == 0 && len(elseFrag.code) == 0 {
		return fragment{
			code: cond.code,
			expr: "(" + thenFrag.expr + " if " + cond.expr + " else " + elseFrag.expr + ")",
		}
	}

	// Otherwise lower to an if-statement assigning a temporary.
	result := g.env.current().makeSymbol("_if_result")
	code := cond.code
	code = append(code, "if "+cond.expr+":")
	for _, line := range thenFrag.code {
		code = append(code, indent(line))
	}
	code = append(code, indent(result+" = "+thenFrag.expr))
	code = append(code, "else:")
	for _, line := range elseFrag.code {
		code = append(code, indent(line))
	}
	code = append(code, indent(result+" = "+elseFrag.expr))
	return fragment{code: code, expr: result}
}

// emitExpr2 is emitExpr tolerating an absent slot.
func (g *generator) emitExpr2(expr red.Expr) fragment {
	if expr == nil {
		return fragment{expr: "None"}
	}
	return g.emitExpr(expr)
}

func indent(line string) string {
	return "    " + line
}
