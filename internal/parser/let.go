package parser

import (
	"larch/internal/cst/green"
	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

func (p *parser) parseLet(allowNakedLets bool) green.Expr {
	letSpan := p.currentSpan()
	tLet := p.consume()
	letNote := diag.Note{Span: letSpan, Msg: "This is the beginning of the let-binding."}

	var nPattern green.Pattern
	switch p.current().Kind {
	case token.Equals:
		// The name is missing but the rest of the binding looks intact,
		// as happens mid-rename in an editor. Keep parsing.
		p.errorAt(diag.SynExpectedPattern, p.currentSpan(),
			"I was expecting a pattern after 'let'.", letNote)
	case token.Ident:
		nPattern = green.NewVariablePattern(p.consume())
	default:
		sync := p.recover(diag.SynExpectedPattern, p.currentSpan(),
			"I was expecting a pattern after 'let'.", letNote)
		if p.current().Kind != token.Equals {
			return p.finishLet(tLet, nil, nil, nil, nil, sync, allowNakedLets, letNote)
		}
	}

	var nParams *green.ParameterList
	if p.current().Kind == token.LParen {
		nParams = p.parseParameterList()
	}

	tEquals, sync := p.expect(token.Equals, diag.SynExpectedEquals, letNote)
	if tEquals == nil {
		return p.finishLet(tLet, nPattern, nParams, nil, nil, sync, allowNakedLets, letNote)
	}

	nValue := p.parseExpr(false)
	if nValue == nil {
		sync := p.recover(diag.SynExpectedExpression, p.currentSpan(),
			"I was expecting a value after the '=' in this let-binding.", letNote)
		return p.finishLet(tLet, nPattern, nParams, tEquals, nil, sync, allowNakedLets, letNote)
	}

	return p.finishLet(tLet, nPattern, nParams, tEquals, nValue, 0, allowNakedLets, letNote)
}

// finishLet handles the parts every let-binding path shares: the layout
// dummy closing the binding (unless recovery already consumed it) and the
// body expression.
func (p *parser) finishLet(
	tLet *token.Token,
	nPattern green.Pattern,
	nParams *green.ParameterList,
	tEquals *token.Token,
	nValue green.Expr,
	synced token.Kind,
	allowNakedLets bool,
	letNote diag.Note,
) green.Expr {
	var tIn *token.Token
	if synced == 0 {
		tIn, _ = p.expect(token.DummyIn, diag.SynExpectedDummyIn, letNote)
	}

	nBody := p.parseExpr(allowNakedLets)
	if nBody == nil && !allowNakedLets {
		p.errorAt(diag.SynExpectedLetExpression, p.currentSpan(),
			"I was expecting an expression to follow the previous let-binding.", letNote)
	}

	return green.NewLetExpr(tLet, nPattern, nParams, tEquals, nValue, tIn, nBody)
}

// parseParameterList parses the parenthesized parameters of a function
// binding, `let f(a, b) = ...`. The caller has already seen the '('.
func (p *parser) parseParameterList() *green.ParameterList {
	tLParen := p.eat(token.LParen)
	if tLParen == nil {
		return nil
	}

	var params []*green.Parameter
	var prevSpan source.Span
	for p.current().Kind != token.RParen && p.current().Kind != token.EOF {
		paramSpan := p.currentSpan()
		if p.current().Kind != token.Ident {
			p.errorAt(diag.SynExpectedPattern, p.currentSpan(),
				"I was expecting a parameter pattern, but instead got "+
					p.current().Kind.Describe()+".")
			break
		}
		nPattern := green.NewVariablePattern(p.consume())
		tComma := p.eat(token.Comma)

		if len(params) > 0 && params[len(params)-1].TComma() == nil {
			p.errorAt(diag.SynExpectedComma, paramSpan,
				"I was expecting a ',' before this parameter.",
				diag.Note{Span: prevSpan, Msg: "This is the previous parameter."})
		}
		params = append(params, green.NewParameter(nPattern, tComma))
		prevSpan = paramSpan
	}

	tRParen := p.eat(token.RParen)
	if tRParen == nil {
		p.errorAt(diag.SynExpectedRParen, p.currentSpan(),
			"I was expecting a ')' to indicate the end of this parameter "+
				"list, but instead got "+p.current().Kind.Describe()+".")
	}
	return green.NewParameterList(tLParen, params, tRParen)
}
