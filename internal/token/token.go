package token

import "strings"

// Token is a single source token with its attached trivia. Tokens do not
// carry positions: positions are recovered by summing full widths, which is
// what lets a tree of tokens be relocated without rewriting it.
type Token struct {
	Kind     Kind
	Text     string
	Leading  []Trivium
	Trailing []Trivium
}

// Dummy creates a zero-width placeholder token of the given kind.
func Dummy(kind Kind) Token {
	return Token{Kind: kind, Text: ""}
}

// Width returns the length of the token's own text.
func (t Token) Width() int {
	return len(t.Text)
}

// LeadingWidth returns the total length of the leading trivia.
func (t Token) LeadingWidth() int {
	w := 0
	for _, tr := range t.Leading {
		w += tr.Width()
	}
	return w
}

// TrailingWidth returns the total length of the trailing trivia.
func (t Token) TrailingWidth() int {
	w := 0
	for _, tr := range t.Trailing {
		w += tr.Width()
	}
	return w
}

// FullWidth returns the token's width including surrounding trivia.
func (t Token) FullWidth() int {
	return t.LeadingWidth() + t.Width() + t.TrailingWidth()
}

// LeadingText returns the concatenated leading trivia text.
func (t Token) LeadingText() string {
	var sb strings.Builder
	for _, tr := range t.Leading {
		sb.WriteString(tr.Text)
	}
	return sb.String()
}

// TrailingText returns the concatenated trailing trivia text.
func (t Token) TrailingText() string {
	var sb strings.Builder
	for _, tr := range t.Trailing {
		sb.WriteString(tr.Text)
	}
	return sb.String()
}

// FullText returns leading trivia + text + trailing trivia.
func (t Token) FullText() string {
	return t.LeadingText() + t.Text + t.TrailingText()
}

// IsDummy reports whether the token is a zero-width placeholder.
func (t Token) IsDummy() bool {
	return t.Kind.IsDummy()
}

// IsFollowedByNewline reports whether the trailing trivia contains a line
// break, i.e. whether this token ends its source line.
func (t Token) IsFollowedByNewline() bool {
	for _, tr := range t.Trailing {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

// WithLeading returns a copy of the token with the given leading trivia
// prepended.
func (t Token) WithLeading(leading []Trivium) Token {
	if len(leading) == 0 {
		return t
	}
	merged := make([]Trivium, 0, len(leading)+len(t.Leading))
	merged = append(merged, leading...)
	merged = append(merged, t.Leading...)
	t.Leading = merged
	return t
}
