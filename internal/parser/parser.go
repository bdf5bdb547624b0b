// Package parser builds the green syntax tree from the token stream.
//
// The parser is error-tolerant: it never fails outright. Missing elements
// become absent slots in the tree, and unparseable tokens are consumed and
// reattached as error trivia on the next token that does parse, so the
// resulting tree still covers every byte of the source.
package parser

import (
	"fmt"

	"larch/internal/cst/green"
	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/token"
)

// Options configures a parse.
type Options struct {
	// Reporter receives diagnostics as they are found. Nil discards them.
	Reporter diag.Reporter
}

// Parse parses the pre-parsed token stream of a file. The stream must end
// with an EOF token.
func Parse(file *source.File, tokens []token.Token, opts Options) *green.SyntaxTree {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		panic("parser: token stream must end with EOF")
	}

	p := &parser{file: file, tokens: tokens, opts: opts}
	tree := p.parseFile()

	if total := treeWidth(tree); total != len(file.Content) {
		p.report(diag.SynLengthMismatch, diag.SevWarning,
			source.Span{File: file.ID, Start: 0, End: file.Size()},
			fmt.Sprintf(
				"Mismatch between source code length (%d) and total length of "+
					"parsed tokens (%d). The parse tree for this file is probably "+
					"incorrect. This is a bug. Please report it!",
				len(file.Content), total))
	}
	return tree
}

// treeWidth sums the full widths of every token in the tree. It equals the
// file size whenever the parser accounted for every consumed token.
func treeWidth(n green.Node) int {
	total := 0
	for _, c := range n.Children() {
		if t, ok := c.Token(); ok {
			total += t.FullWidth()
		} else if child, ok := c.Node(); ok {
			total += treeWidth(child)
		}
	}
	return total
}

type parser struct {
	file   *source.File
	tokens []token.Token
	pos    int
	offset int
	opts   Options

	// Tokens consumed during error recovery, waiting to be attached as
	// error trivia to the next regularly consumed token.
	pending []token.Token
}

func (p *parser) parseFile() *green.SyntaxTree {
	// A file of pure trivia parses to a tree with no expression.
	if p.current().Kind == token.EOF {
		return green.NewSyntaxTree(nil, p.consume())
	}

	expr := p.parseExpr(true)

	if p.current().Kind != token.EOF {
		p.recover(diag.SynUnexpectedToken, p.currentSpan(),
			fmt.Sprintf("I was expecting the end of the file, but instead got %s.",
				p.current().Kind.Describe()))
	}
	return green.NewSyntaxTree(expr, p.consume())
}
