// Package diag carries diagnostics between compiler phases and the CLI.
//
// Phases never print: they report through a Reporter into a Bag, and the
// CLI decides how to render the bag (see internal/diagfmt). Messages follow
// the house style: first person, past progressive, articles spelled out.
// "I was expecting a ')' here", not "missing ')'".
package diag
