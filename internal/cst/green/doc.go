// Package green implements the immutable half of the lossless concrete
// syntax tree.
//
// A green node is parent-free and position-free: it knows its children and
// its own width, never where it sits in the file. That makes a green tree
// safe to share: the same subtree can back any number of red trees rooted
// at different offsets, which is what structural reuse across edits would
// build on.
//
// Invariants:
//   - Nodes are immutable after construction; derived sizes are computed
//     once, bottom-up.
//   - FullWidth is the sum of the children's full widths; absent slots
//     contribute zero.
//   - Concatenating the FullText of a node's children reproduces the node's
//     FullText exactly, so the root reproduces the source byte for byte.
//   - Present-child searches skip absent slots and dummy tokens.
package green
