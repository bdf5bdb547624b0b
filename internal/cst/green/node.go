package green

import (
	"strings"

	"larch/internal/token"
)

// Child is one slot of a green node: a token, a node, or absent.
// The zero value is the absent slot.
type Child struct {
	tok  *token.Token
	node Node
}

// TokenChild wraps a token in a child slot. A nil token is the absent slot.
func TokenChild(t *token.Token) Child {
	if t == nil {
		return Child{}
	}
	return Child{tok: t}
}

// NodeChild wraps a node in a child slot. A nil node is the absent slot.
func NodeChild(n Node) Child {
	if n == nil {
		return Child{}
	}
	return Child{node: n}
}

// IsAbsent reports whether the slot holds neither a token nor a node.
func (c Child) IsAbsent() bool {
	return c.tok == nil && c.node == nil
}

// Token returns the slot's token, if it holds one.
func (c Child) Token() (*token.Token, bool) {
	return c.tok, c.tok != nil
}

// Node returns the slot's node, if it holds one.
func (c Child) Node() (Node, bool) {
	return c.node, c.node != nil
}

// FullWidth returns the slot's full width; absent slots are zero-width.
func (c Child) FullWidth() int {
	switch {
	case c.tok != nil:
		return c.tok.FullWidth()
	case c.node != nil:
		return c.node.FullWidth()
	}
	return 0
}

// FullText returns the slot's full text; absent slots contribute nothing.
func (c Child) FullText() string {
	switch {
	case c.tok != nil:
		return c.tok.FullText()
	case c.node != nil:
		return c.node.FullText()
	}
	return ""
}

// hasPresent reports whether the slot contains at least one present
// (non-dummy) token.
func (c Child) hasPresent() bool {
	switch {
	case c.tok != nil:
		return !c.tok.IsDummy()
	case c.node != nil:
		return c.node.hasPresent()
	}
	return false
}

// Node is a green syntax tree node. The interface is closed: only the
// concrete kinds in this package implement it.
type Node interface {
	// Children returns the node's slots in schema order.
	Children() []Child
	// FullWidth is the node's width including outermost trivia.
	FullWidth() int
	// Width is FullWidth minus the node's own leading and trailing trivia.
	Width() int
	// LeadingWidth is the width of the first present descendant token's
	// leading trivia, 0 if there is no present descendant.
	LeadingWidth() int
	// TrailingWidth is the analogue for the last present descendant.
	TrailingWidth() int
	// FullText is the exact source text covered by the node.
	FullText() string
	// Text is FullText stripped of the node's own outermost trivia.
	Text() string
	// LeadingText is the text of the node's own leading trivia.
	LeadingText() string
	// TrailingText is the text of the node's own trailing trivia.
	TrailingText() string

	hasPresent() bool
}

// Expr marks expression node kinds; it is used only for slot typing.
type Expr interface {
	Node
	isExpr()
}

// Pattern marks pattern node kinds; it is used only for slot typing.
type Pattern interface {
	Node
	isPattern()
}

// node is the embedded core of every concrete kind: the slot list plus the
// sizes derivable from it. Everything is fixed at construction.
type node struct {
	children  []Child
	fullWidth int
	present   bool
}

func newNode(children []Child) node {
	fullWidth := 0
	present := false
	for _, c := range children {
		fullWidth += c.FullWidth()
		if !present && c.hasPresent() {
			present = true
		}
	}
	return node{children: children, fullWidth: fullWidth, present: present}
}

func (n *node) Children() []Child {
	return n.children
}

func (n *node) FullWidth() int {
	return n.fullWidth
}

func (n *node) hasPresent() bool {
	return n.present
}

// firstPresent returns the first child slot containing a present token,
// or an absent Child if there is none.
func (n *node) firstPresent() Child {
	for _, c := range n.children {
		if c.hasPresent() {
			return c
		}
	}
	return Child{}
}

func (n *node) lastPresent() Child {
	for i := len(n.children) - 1; i >= 0; i-- {
		if c := n.children[i]; c.hasPresent() {
			return c
		}
	}
	return Child{}
}

func (n *node) LeadingWidth() int {
	c := n.firstPresent()
	switch {
	case c.tok != nil:
		return c.tok.LeadingWidth()
	case c.node != nil:
		return c.node.LeadingWidth()
	}
	return 0
}

func (n *node) TrailingWidth() int {
	c := n.lastPresent()
	switch {
	case c.tok != nil:
		return c.tok.TrailingWidth()
	case c.node != nil:
		return c.node.TrailingWidth()
	}
	return 0
}

func (n *node) LeadingText() string {
	c := n.firstPresent()
	switch {
	case c.tok != nil:
		return c.tok.LeadingText()
	case c.node != nil:
		return c.node.LeadingText()
	}
	return ""
}

func (n *node) TrailingText() string {
	c := n.lastPresent()
	switch {
	case c.tok != nil:
		return c.tok.TrailingText()
	case c.node != nil:
		return c.node.TrailingText()
	}
	return ""
}

func (n *node) Width() int {
	return n.fullWidth - n.LeadingWidth() - n.TrailingWidth()
}

func (n *node) FullText() string {
	var sb strings.Builder
	sb.Grow(n.fullWidth)
	for _, c := range n.children {
		sb.WriteString(c.FullText())
	}
	return sb.String()
}

// Text strips the outermost leading and trailing trivia from FullText.
// Trivia strictly between children stays: concatenating the children's
// FullText always reproduces this node's FullText exactly.
func (n *node) Text() string {
	full := n.FullText()
	return full[n.LeadingWidth() : n.fullWidth-n.TrailingWidth()]
}
