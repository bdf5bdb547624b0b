package parser

import (
	"fmt"

	"larch/internal/cst/green"
	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

func (p *parser) parseArgumentList() *green.ArgumentList {
	tLParen := p.eat(token.LParen)
	if tLParen == nil {
		p.errorAt(diag.SynExpectedLParen, p.currentSpan(),
			fmt.Sprintf("I was expecting a '(' to indicate the start of a "+
				"function argument list, but instead got %s.",
				p.current().Kind.Describe()))
		return nil
	}

	var args []*green.Argument
	var prevSpan source.Span
	for p.current().Kind != token.RParen && p.current().Kind != token.EOF {
		argSpan := p.currentSpan()
		nArgument := p.parseArgument()
		if nArgument == nil {
			return green.NewArgumentList(tLParen, args, nil)
		}

		if len(args) > 0 && args[len(args)-1].TComma() == nil {
			p.errorAt(diag.SynExpectedComma, argSpan,
				"I was expecting a ',' before this argument.",
				diag.Note{Span: prevSpan, Msg: "This is the previous argument."})
		}
		args = append(args, nArgument)
		prevSpan = argSpan
	}

	tRParen := p.eat(token.RParen)
	if tRParen == nil {
		p.errorAt(diag.SynExpectedRParen, p.currentSpan(),
			fmt.Sprintf("I was expecting a ')' to indicate the end of this "+
				"function argument list, but instead got %s.",
				p.current().Kind.Describe()))
	}
	return green.NewArgumentList(tLParen, args, tRParen)
}

func (p *parser) parseArgument() *green.Argument {
	nExpr := p.parseExpr(false)
	if nExpr == nil {
		return nil
	}
	return green.NewArgument(nExpr, p.eat(token.Comma))
}
