// Package red materializes absolute-position views over the green tree.
//
// A red node is a thin facade: a pointer to its green origin, a pointer to
// its red parent, and the absolute byte offset where the origin's full text
// begins. Child accessors materialize red children on first use and cache
// them, so asking for the same child twice yields the same pointer. That
// makes red node identity a stable map key for later phases.
//
// Red nodes never outlive their green origin and carry no state of their
// own, so a fresh red root over the same green tree is always equivalent.
// A red tree is built and walked by a single goroutine; share the green
// tree, not the red one.
package red
