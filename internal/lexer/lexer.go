package lexer

import (
	"fmt"

	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

// Lexer turns a source file into a token sequence with attached trivia.
// Every byte of the input ends up in some token's text or trivia, so
// concatenating the full text of the produced tokens reproduces the file
// exactly, lexical errors included.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	done   bool
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading and trailing
// trivia attached. After the EOF token it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.done {
		return token.Dummy(token.EOF)
	}

	leading := lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		// Residual trivia at the end of the file rides on the EOF token so
		// the stream still covers every byte.
		lx.done = true
		return token.Token{Kind: token.EOF, Text: "", Leading: leading}
	}

	var tok token.Token
	b := lx.cursor.Peek()
	switch {
	case isIdentStart(b):
		tok = lx.scanIdentOrKeyword()
	case isDigit(b):
		tok = lx.scanNumber()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = leading
	tok.Trailing = lx.collectTrailingTrivia()
	return tok
}

func isIdentStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// scanIdentOrKeyword scans a maximal identifier run, then reclassifies it
// as a keyword if the whole run spells one. Scanning the full run first is
// what makes the longest match win ('letx' is an identifier, not 'let').
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinue(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(start)
	return token.Token{Kind: token.LookupKeyword(text), Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDigit(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.IntLit, Text: lx.cursor.TextFrom(start)}
}

// scanOperatorOrPunct scans a single-character operator or punctuation
// token. Anything else becomes an Error token covering the maximal run of
// unrecognizable bytes, reported once and kept in the stream so the rest of
// the file still lexes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '=':
		kind = token.Equals
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	default:
		for !lx.cursor.EOF() && isUnknownByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		text := lx.cursor.TextFrom(start)
		lx.report(diag.LexInvalidToken, diag.SevError, lx.cursor.SpanFrom(start),
			fmt.Sprintf("Invalid token '%s'.", text))
		return token.Token{Kind: token.Error, Text: text}
	}
	return token.Token{Kind: kind, Text: lx.cursor.TextFrom(start)}
}

// isUnknownByte reports whether b can extend an Error token's run: anything
// that is not whitespace, a newline, or the start of an identifier or
// number. Known punctuation is swallowed too; one garbled span makes one
// error, not several.
func isUnknownByte(b byte) bool {
	return !isHorizontalSpace(b) && b != '\n' && b != '#' && !isIdentContinue(b)
}

// Lex runs the full tokenization pipeline over a file: scan all tokens,
// insert layout dummies via the pre-parser, and verify that the result
// still covers every source byte.
func Lex(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	tokens = Preparse(tokens)

	total := 0
	for _, tok := range tokens {
		total += tok.FullWidth()
	}
	if total != len(file.Content) {
		lx.report(diag.LexLengthMismatch, diag.SevWarning,
			source.Span{File: file.ID, Start: 0, End: file.Size()},
			fmt.Sprintf(
				"Mismatch between source code length (%d) and total length of "+
					"lexed tokens (%d). The token stream for this file is probably "+
					"incorrect. This is a bug. Please report it!",
				len(file.Content), total))
	}

	return tokens
}
