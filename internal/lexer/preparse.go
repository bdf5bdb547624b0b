package lexer

import (
	"larch/internal/token"
)

// The pre-parser inserts zero-width dummy tokens where the layout implies a
// construct has ended, in the manner of F#'s lightweight syntax. For
// example:
//
//	let foo = 1
//	foo
//
// becomes, in the token stream:
//
//	let foo = 1 $in
//	foo
//
// which lets the parser treat the lightweight form and an explicit-delimiter
// form identically. A dummy is emitted when a line starts at or left of the
// column where the construct's keyword started.

type layoutFrame struct {
	indent int
	line   int
	kind   token.Kind // KwLet or KwIf
}

func dummyFor(kind token.Kind) token.Token {
	switch kind {
	case token.KwLet:
		return token.Dummy(token.DummyIn)
	case token.KwIf:
		return token.Dummy(token.DummyEndif)
	}
	panic("preparse: no dummy token for kind " + kind.String())
}

// indentationOf returns the width of the leading trivia that sits between
// the last newline and the token itself, i.e. the token's column when it
// starts a line.
func indentationOf(tok token.Token) int {
	indent := 0
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			indent = 0
			continue
		}
		indent += tr.Width()
	}
	return indent
}

func countNewlines(trivia []token.Trivium) int {
	n := 0
	for _, tr := range trivia {
		if tr.Kind == token.TriviaNewline {
			n++
		}
	}
	return n
}

// Preparse threads through the token stream and inserts DummyIn/DummyEndif
// tokens closing let-bindings and if-expressions by indentation. The input
// must end with an EOF token; the output does too, with all remaining
// dummies flushed before it.
func Preparse(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens)+4)
	var stack []layoutFrame

	line := 0
	firstOnLine := true
	indent := 0

	for _, tok := range tokens {
		line += countNewlines(tok.Leading)
		if firstOnLine {
			indent = indentationOf(tok)
			firstOnLine = false
		}

		if tok.Kind != token.EOF {
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if indent > top.indent || line <= top.line {
					break
				}
				// 'then' and 'else' continue the innermost if-expression
				// rather than closing it.
				if top.kind == token.KwIf && (tok.Kind == token.KwThen || tok.Kind == token.KwElse) {
					break
				}
				out = append(out, dummyFor(top.kind))
				stack = stack[:len(stack)-1]
			}
		}

		switch tok.Kind {
		case token.KwLet, token.KwIf:
			stack = append(stack, layoutFrame{indent: indent, line: line, kind: tok.Kind})
		}

		if tok.Kind == token.EOF {
			for len(stack) > 0 {
				out = append(out, dummyFor(stack[len(stack)-1].kind))
				stack = stack[:len(stack)-1]
			}
		}
		out = append(out, tok)

		if tok.IsFollowedByNewline() {
			firstOnLine = true
			line += countNewlines(tok.Trailing)
		}
	}

	return out
}
