// Package cstquery provides generic traversal over red syntax trees.
package cstquery

import (
	"iter"

	"larch/internal/cst/red"
)

// Preorder yields every node of the subtree rooted at n, parents before
// children, siblings in source order. The sequence is restartable: each
// range starts a fresh walk.
func Preorder(n red.Node) iter.Seq[red.Node] {
	return func(yield func(red.Node) bool) {
		if n != nil {
			preorder(n, yield)
		}
	}
}

func preorder(n red.Node, yield func(red.Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children() {
		if !preorder(c, yield) {
			return false
		}
	}
	return true
}

// FindInstances yields, in source order, every node in the subtree rooted
// at n whose concrete type is T.
func FindInstances[T red.Node](n red.Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range Preorder(n) {
			if match, ok := node.(T); ok {
				if !yield(match) {
					return
				}
			}
		}
	}
}

// Ancestors yields n's enclosing nodes, innermost first, ending at the
// root.
func Ancestors(n red.Node) iter.Seq[red.Node] {
	return func(yield func(red.Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Containing returns the innermost node whose offset range contains the
// byte offset, or nil when the offset lies outside every node's text.
func Containing(root red.Node, offset int) red.Node {
	var best red.Node
	for n := range Preorder(root) {
		r := n.OffsetRange()
		if r.Start <= offset && offset < r.End {
			best = n
		}
	}
	return best
}
