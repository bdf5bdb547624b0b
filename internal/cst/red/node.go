package red

import (
	"fmt"

	"larch/internal/cst/green"
)

// OffsetRange is a half-open byte range [Start, End) in the source file,
// excluding the node's own leading and trailing trivia.
type OffsetRange struct {
	Start int
	End   int
}

func (r OffsetRange) Len() int {
	return r.End - r.Start
}

func (r OffsetRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Node is a red tree node. The width and text methods mirror the green
// origin; Offset and OffsetRange add the absolute position the green tree
// does not know.
type Node interface {
	// Parent returns the enclosing red node, nil at the root.
	Parent() Node
	// Offset is the absolute byte offset of the origin's full text,
	// including leading trivia.
	Offset() int
	// OffsetRange is the absolute extent of the node's own text.
	OffsetRange() OffsetRange
	FullWidth() int
	Width() int
	LeadingWidth() int
	TrailingWidth() int
	FullText() string
	Text() string
	// Children returns the node's materialized red child nodes in schema
	// order, skipping token and absent slots.
	Children() []Node

	origin() green.Node
}

// Expr is a red node wrapping a green expression.
type Expr interface {
	Node
	isExpr()
}

// Pattern is a red node wrapping a green pattern.
type Pattern interface {
	Node
	isPattern()
}

type base struct {
	parent Node
	green  green.Node
	offset int
}

func newBase(parent Node, g green.Node, offset int) base {
	return base{parent: parent, green: g, offset: offset}
}

func (b *base) Parent() Node       { return b.parent }
func (b *base) Offset() int        { return b.offset }
func (b *base) FullWidth() int     { return b.green.FullWidth() }
func (b *base) Width() int         { return b.green.Width() }
func (b *base) LeadingWidth() int  { return b.green.LeadingWidth() }
func (b *base) TrailingWidth() int { return b.green.TrailingWidth() }
func (b *base) FullText() string   { return b.green.FullText() }
func (b *base) Text() string       { return b.green.Text() }
func (b *base) origin() green.Node { return b.green }

func (b *base) OffsetRange() OffsetRange {
	return OffsetRange{
		Start: b.offset + b.green.LeadingWidth(),
		End:   b.offset + b.green.FullWidth() - b.green.TrailingWidth(),
	}
}

// slotOffset is the absolute offset of the i-th green child slot: this
// node's offset plus the full widths of every earlier slot.
func (b *base) slotOffset(i int) int {
	off := b.offset
	for _, c := range b.green.Children()[:i] {
		off += c.FullWidth()
	}
	return off
}

// wrapExpr materializes the red facade for a green expression. The set of
// expression kinds is closed, so an unknown concrete type is a bug in the
// caller, not an input error.
func wrapExpr(g green.Expr, parent Node, offset int) Expr {
	switch g := g.(type) {
	case *green.LetExpr:
		return &LetExpr{base: newBase(parent, g, offset), node: g}
	case *green.IfExpr:
		return &IfExpr{base: newBase(parent, g, offset), node: g}
	case *green.IdentifierExpr:
		return &IdentifierExpr{base: newBase(parent, g, offset), node: g}
	case *green.IntLiteralExpr:
		return &IntLiteralExpr{base: newBase(parent, g, offset), node: g}
	case *green.BinaryExpr:
		return &BinaryExpr{base: newBase(parent, g, offset), node: g}
	case *green.FunctionCallExpr:
		return &FunctionCallExpr{base: newBase(parent, g, offset), node: g}
	default:
		panic(fmt.Sprintf("red: unknown expression kind %T", g))
	}
}

func wrapPattern(g green.Pattern, parent Node, offset int) Pattern {
	switch g := g.(type) {
	case *green.VariablePattern:
		return &VariablePattern{base: newBase(parent, g, offset), node: g}
	default:
		panic(fmt.Sprintf("red: unknown pattern kind %T", g))
	}
}
