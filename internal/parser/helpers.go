package parser

import (
	"fmt"

	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

func (p *parser) current() token.Token {
	return p.tokens[p.pos]
}

// consume takes the current token, attaching any pending error tokens as
// leading error trivia so their text stays in the tree.
func (p *parser) consume() *token.Token {
	tok := p.tokens[p.pos]
	p.pos++
	p.offset += tok.FullWidth()

	if len(p.pending) > 0 {
		leading := make([]token.Trivium, 0, len(p.pending)+len(tok.Leading))
		for _, et := range p.pending {
			leading = append(leading, token.Trivium{Kind: token.TriviaError, Text: et.FullText()})
		}
		leading = append(leading, tok.Leading...)
		tok = tok.WithLeading(leading)
		p.pending = nil
	}
	return &tok
}

// eat consumes and returns the current token if it has the wanted kind,
// nil otherwise. It never reports.
func (p *parser) eat(kind token.Kind) *token.Token {
	if p.current().Kind != kind {
		return nil
	}
	return p.consume()
}

func (p *parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes ...diag.Note) {
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
}

func (p *parser) errorAt(code diag.Code, sp source.Span, msg string, notes ...diag.Note) {
	p.report(code, diag.SevError, sp, msg, notes...)
}

// currentSpan is the span diagnostics should point at for the current
// token. Dummy tokens have no text of their own, so the span rewinds to
// the position just after the last real token instead.
func (p *parser) currentSpan() source.Span {
	if p.current().Kind == token.EOF {
		size := p.file.Size()
		return source.Span{File: p.file.ID, Start: size, End: size}
	}

	idx, off := p.pos, p.offset
	rewound := false
	for idx > 0 && p.tokens[idx].Kind.IsDummy() {
		rewound = true
		idx--
		off -= p.tokens[idx].FullWidth()
	}

	tok := p.tokens[idx]
	start := off + tok.LeadingWidth()
	end := start + tok.Width()
	if rewound {
		// Point just past the token we rewound to, not at the token
		// itself.
		start = end
	}
	return source.Span{File: p.file.ID, Start: uint32(start), End: uint32(end)}
}

// recover reports the error, then skips tokens into the pending error run
// until a synchronization point: a layout dummy (consumed) or EOF (left in
// place). Returns the kind synchronized to.
func (p *parser) recover(code diag.Code, sp source.Span, msg string, notes ...diag.Note) token.Kind {
	p.errorAt(code, sp, msg, notes...)
	for p.current().Kind != token.EOF {
		tok := p.tokens[p.pos]
		p.pos++
		p.offset += tok.FullWidth()
		p.pending = append(p.pending, tok)
		if tok.Kind == token.DummyIn || tok.Kind == token.DummyEndif {
			return tok.Kind
		}
	}
	return token.EOF
}

// expect consumes a token of the wanted kind, or reports under the given
// code and recovers. The second result is the recovery sync kind, zero
// when the token was present.
func (p *parser) expect(kind token.Kind, code diag.Code, notes ...diag.Note) (*token.Token, token.Kind) {
	if p.current().Kind == kind {
		return p.consume(), 0
	}
	msg := fmt.Sprintf("I was expecting %s, but instead got %s.",
		kind.Describe(), p.current().Kind.Describe())
	return nil, p.recover(code, p.currentSpan(), msg, notes...)
}

// atSilentStop reports whether parsePrimary would return nil here without
// reporting: at a layout dummy or at EOF. Callers use it to raise a
// context-specific error exactly once.
func (p *parser) atSilentStop() bool {
	switch p.current().Kind {
	case token.EOF, token.DummyIn, token.DummyEndif:
		return true
	}
	return false
}
