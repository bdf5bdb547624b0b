// Package testkit holds invariant checks shared by tests across packages.
package testkit

import (
	"fmt"

	"larch/internal/cst/red"
	"larch/internal/cstquery"
	"larch/internal/token"
)

// CheckTreeInvariants runs the structural laws every parsed tree must
// satisfy against the source it was parsed from:
//  1. the root's full text reproduces the source byte-for-byte
//  2. every node's offset range stays within the file and slices the
//     source to exactly the node's own text
//  3. child offsets advance monotonically in slot order and parents
//     link back correctly
func CheckTreeInvariants(tree *red.SyntaxTree, src string) error {
	if got := tree.FullText(); got != src {
		return fmt.Errorf("full text round trip failed:\ngot  %q\nwant %q", got, src)
	}
	for n := range cstquery.Preorder(tree) {
		if err := checkNode(n, src); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n red.Node, src string) error {
	r := n.OffsetRange()
	if r.Start < 0 || r.End > len(src) || r.End < r.Start {
		return fmt.Errorf("%T: offset range %s outside source of length %d", n, r, len(src))
	}
	if got := src[r.Start:r.End]; got != n.Text() {
		return fmt.Errorf("%T: source slice %q does not match Text %q", n, got, n.Text())
	}

	position := n.Offset()
	sum := 0
	for _, child := range n.Children() {
		if child.Parent() != n {
			return fmt.Errorf("%T: child %T has wrong parent", n, child)
		}
		if child.Offset() < position {
			return fmt.Errorf("%T: child %T offset %d precedes position %d", n, child, child.Offset(), position)
		}
		position = child.Offset() + child.FullWidth()
		sum += child.FullWidth()
	}
	// Token slots are not surfaced as children, so the child sum only
	// bounds the node's full width from below.
	if sum > n.FullWidth() {
		return fmt.Errorf("%T: children full widths sum to %d, exceeding node full width %d", n, sum, n.FullWidth())
	}
	return nil
}

// CheckTokenInvariants verifies that a token stream reproduces the source
// and that dummy tokens stay zero-width.
func CheckTokenInvariants(tokens []token.Token, src string) error {
	total := 0
	for _, tok := range tokens {
		if tok.Kind.IsDummy() && tok.Width() != 0 {
			return fmt.Errorf("%s token has width %d", tok.Kind, tok.Width())
		}
		if tok.FullWidth() != tok.LeadingWidth()+tok.Width()+tok.TrailingWidth() {
			return fmt.Errorf("token %s: full width %d != %d + %d + %d",
				tok.Kind, tok.FullWidth(), tok.LeadingWidth(), tok.Width(), tok.TrailingWidth())
		}
		total += tok.FullWidth()
	}
	if total != len(src) {
		return fmt.Errorf("token widths sum to %d, source has %d bytes", total, len(src))
	}

	var sb []byte
	for _, tok := range tokens {
		sb = append(sb, tok.FullText()...)
	}
	if string(sb) != src {
		return fmt.Errorf("token round trip failed:\ngot  %q\nwant %q", sb, src)
	}
	return nil
}

// CheckIdentityStability asserts that repeated traversals hand back the
// identical red nodes, comparing pointers positionally.
func CheckIdentityStability(tree *red.SyntaxTree) error {
	var first []red.Node
	for n := range cstquery.Preorder(tree) {
		first = append(first, n)
	}
	i := 0
	for n := range cstquery.Preorder(tree) {
		if i >= len(first) || first[i] != n {
			return fmt.Errorf("node %d changed identity between traversals", i)
		}
		i++
	}
	if i != len(first) {
		return fmt.Errorf("second traversal yielded %d nodes, first %d", i, len(first))
	}
	return nil
}
