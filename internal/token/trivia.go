package token

// TriviaKind classifies insignificant text attached to a token.
type TriviaKind uint8

const (
	// TriviaSpace is a run of horizontal whitespace (spaces and tabs).
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a single line break.
	TriviaNewline
	// TriviaComment is a '#'-to-end-of-line comment.
	TriviaComment
	// TriviaError is source text skipped during parser error recovery,
	// folded into the next token so the file still round-trips.
	TriviaError
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	case TriviaError:
		return "Error"
	}
	return "Unknown"
}

// Trivium is one piece of trivia. Immutable once produced.
type Trivium struct {
	Kind TriviaKind
	Text string
}

// Width returns the trivium's length in bytes.
func (t Trivium) Width() int {
	return len(t.Text)
}
