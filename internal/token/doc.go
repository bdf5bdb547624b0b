// Package token defines lexical token kinds and trivia for the Larch
// compiler.
//
// Invariants:
//   - Token.Text holds exactly the token's own characters; surrounding
//     whitespace, newlines, and comments live in Leading/Trailing trivia.
//   - Concatenating FullText over a lexed token sequence reproduces the
//     source file byte for byte.
//   - Dummy tokens (EOF, DummyIn, DummyEndif) have empty text, no trivia,
//     and therefore zero full width.
//   - Widths are byte counts.
package token
