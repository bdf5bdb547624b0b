package parser

import (
	"fmt"

	"larch/internal/cst/green"
	"larch/internal/diag"
	"larch/internal/token"
)

// parseExpr parses one expression, or returns nil when none starts here.
// allowNakedLets permits a trailing let-binding with no body, as at the
// top level of a file.
func (p *parser) parseExpr(allowNakedLets bool) green.Expr {
	return p.parseBinary(1, allowNakedLets)
}

func binaryPrec(k token.Kind) int {
	switch k {
	case token.Plus, token.Minus:
		return 1
	case token.Star, token.Slash:
		return 2
	}
	return 0
}

func (p *parser) parseBinary(minPrec int, allowNakedLets bool) green.Expr {
	lhs := p.parsePostfix(allowNakedLets)
	for lhs != nil {
		prec := binaryPrec(p.current().Kind)
		if prec == 0 || prec < minPrec {
			break
		}
		tOp := p.consume()
		rhs := p.parseBinary(prec+1, false)
		if rhs == nil {
			if p.atSilentStop() {
				p.errorAt(diag.SynExpectedExpression, p.currentSpan(),
					fmt.Sprintf("I was expecting an expression after '%s'.", tOp.Text))
			}
			return green.NewBinaryExpr(lhs, tOp, nil)
		}
		lhs = green.NewBinaryExpr(lhs, tOp, rhs)
	}
	return lhs
}

// parsePostfix parses a primary expression and any function calls chained
// onto it, as in f(1)(2).
func (p *parser) parsePostfix(allowNakedLets bool) green.Expr {
	expr := p.parsePrimary(allowNakedLets)
	for expr != nil && p.current().Kind == token.LParen {
		expr = green.NewFunctionCallExpr(expr, p.parseArgumentList())
	}
	return expr
}

func (p *parser) parsePrimary(allowNakedLets bool) green.Expr {
	switch p.current().Kind {
	case token.Ident:
		return green.NewIdentifierExpr(p.consume())
	case token.IntLit:
		return green.NewIntLiteralExpr(p.consume())
	case token.KwLet:
		return p.parseLet(allowNakedLets)
	case token.KwIf:
		return p.parseIf()
	case token.EOF, token.DummyIn, token.DummyEndif:
		// No expression starts here; the caller knows what it was hoping
		// for and reports accordingly.
		return nil
	default:
		p.recover(diag.SynExpectedExpression, p.currentSpan(),
			fmt.Sprintf("I was expecting an expression, but instead got %s.",
				p.current().Kind.Describe()))
		return nil
	}
}

// parseIf parses `if c then a else b`. The closing token is always a
// layout dummy inserted by the pre-parser.
func (p *parser) parseIf() green.Expr {
	ifSpan := p.currentSpan()
	tIf := p.consume()
	ifNote := diag.Note{Span: ifSpan, Msg: "This is the beginning of the if-expression."}

	nCondition := p.parseExpr(false)
	if nCondition == nil {
		if p.atSilentStop() {
			p.errorAt(diag.SynExpectedExpression, p.currentSpan(),
				"I was expecting a condition after 'if'.", ifNote)
		}
		return green.NewIfExpr(tIf, nil, nil, nil, nil, nil, nil)
	}

	tThen, _ := p.expect(token.KwThen, diag.SynExpectedThen, ifNote)
	if tThen == nil {
		return green.NewIfExpr(tIf, nCondition, nil, nil, nil, nil, nil)
	}

	nThen := p.parseExpr(false)
	if nThen == nil && p.atSilentStop() {
		p.errorAt(diag.SynExpectedExpression, p.currentSpan(),
			"I was expecting an expression after 'then'.", ifNote)
	}

	var nElse green.Expr
	tElse := p.eat(token.KwElse)
	if tElse != nil {
		nElse = p.parseExpr(false)
		if nElse == nil && p.atSilentStop() {
			p.errorAt(diag.SynExpectedExpression, p.currentSpan(),
				"I was expecting an expression after 'else'.", ifNote)
		}
	}

	tEndif, _ := p.expect(token.DummyEndif, diag.SynExpectedEndif, ifNote)
	return green.NewIfExpr(tIf, nCondition, tThen, nThen, tElse, nElse, tEndif)
}
