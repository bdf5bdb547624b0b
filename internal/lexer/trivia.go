package lexer

import (
	"larch/internal/token"
)

// isHorizontalSpace reports whether b is horizontal whitespace. A lone \r
// (CRLF pairs are normalized away on load) is treated as whitespace so the
// lexer always makes progress.
func isHorizontalSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// lexOneTrivium scans a single trivium at the cursor: a run of horizontal
// whitespace, one newline, or a '#' comment (up to but not including the
// newline). Returns false if the cursor is not at trivia.
func (lx *Lexer) lexOneTrivium(allowNewline bool) (token.Trivium, bool) {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	switch {
	case isHorizontalSpace(b):
		for isHorizontalSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return token.Trivium{Kind: token.TriviaSpace, Text: lx.cursor.TextFrom(start)}, true

	case b == '\n' && allowNewline:
		lx.cursor.Bump()
		return token.Trivium{Kind: token.TriviaNewline, Text: "\n"}, true

	case b == '#':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return token.Trivium{Kind: token.TriviaComment, Text: lx.cursor.TextFrom(start)}, true
	}

	return token.Trivium{}, false
}

// collectLeadingTrivia consumes whitespace, newlines, and comments before a
// token. Newlines are allowed here so that files beginning with blank lines
// still round-trip; between tokens the trailing-trivia rule has already
// claimed everything through the last newline.
func (lx *Lexer) collectLeadingTrivia() []token.Trivium {
	var trivia []token.Trivium
	for !lx.cursor.EOF() {
		tr, ok := lx.lexOneTrivium(true)
		if !ok {
			break
		}
		trivia = append(trivia, tr)
	}
	return trivia
}

// collectTrailingTrivia consumes whitespace/comment/newline trivia after a
// token, then commits only the prefix ending at the last newline of the run.
// A run with no newline is not committed at all: it is left in place for the
// next token to claim as leading trivia. This keeps a logical line of trivia
// attached to the token that ends it, which line-anchored diagnostics rely
// on.
func (lx *Lexer) collectTrailingTrivia() []token.Trivium {
	start := lx.cursor.Mark()

	var run []token.Trivium
	marks := []Mark{start}
	for !lx.cursor.EOF() {
		tr, ok := lx.lexOneTrivium(true)
		if !ok {
			break
		}
		run = append(run, tr)
		marks = append(marks, lx.cursor.Mark())
	}

	lastNewline := -1
	for i, tr := range run {
		if tr.Kind == token.TriviaNewline {
			lastNewline = i
		}
	}
	if lastNewline < 0 {
		lx.cursor.Reset(start)
		return nil
	}

	lx.cursor.Reset(marks[lastNewline+1])
	return run[:lastNewline+1]
}
