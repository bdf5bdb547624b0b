package token

import "testing"

func TestTokenWidths(t *testing.T) {
	tok := Token{
		Kind: Ident,
		Text: "foo",
		Leading: []Trivium{
			{Kind: TriviaSpace, Text: "  "},
		},
		Trailing: []Trivium{
			{Kind: TriviaSpace, Text: " "},
			{Kind: TriviaNewline, Text: "\n"},
		},
	}

	if got := tok.Width(); got != 3 {
		t.Errorf("Width: expected 3, got %d", got)
	}
	if got := tok.LeadingWidth(); got != 2 {
		t.Errorf("LeadingWidth: expected 2, got %d", got)
	}
	if got := tok.TrailingWidth(); got != 2 {
		t.Errorf("TrailingWidth: expected 2, got %d", got)
	}
	if got := tok.FullWidth(); got != 7 {
		t.Errorf("FullWidth: expected 7, got %d", got)
	}
	if got := tok.FullText(); got != "  foo \n" {
		t.Errorf("FullText: expected %q, got %q", "  foo \n", got)
	}
	if !tok.IsFollowedByNewline() {
		t.Error("expected IsFollowedByNewline to be true")
	}
}

func TestDummyTokens(t *testing.T) {
	for _, kind := range []Kind{EOF, DummyIn, DummyEndif} {
		tok := Dummy(kind)
		if !tok.IsDummy() {
			t.Errorf("%v: expected IsDummy", kind)
		}
		if tok.FullWidth() != 0 {
			t.Errorf("%v: expected zero full width, got %d", kind, tok.FullWidth())
		}
		if tok.FullText() != "" {
			t.Errorf("%v: expected empty full text", kind)
		}
	}

	tok := Token{Kind: Ident, Text: "x"}
	if tok.IsDummy() {
		t.Error("identifier must not be dummy")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"let", KwLet},
		{"if", KwIf},
		{"then", KwThen},
		{"else", KwElse},
		{"letx", Ident},
		{"foo", Ident},
		{"Let", Ident},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.text); got != tt.want {
			t.Errorf("LookupKeyword(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}

func TestWithLeading(t *testing.T) {
	tok := Token{
		Kind:    Ident,
		Text:    "x",
		Leading: []Trivium{{Kind: TriviaSpace, Text: " "}},
	}
	got := tok.WithLeading([]Trivium{{Kind: TriviaError, Text: "@!"}})
	if got.FullText() != "@! x" {
		t.Errorf("WithLeading: expected %q, got %q", "@! x", got.FullText())
	}
	// The original token is unchanged.
	if tok.FullText() != " x" {
		t.Errorf("original token was mutated: %q", tok.FullText())
	}
}
