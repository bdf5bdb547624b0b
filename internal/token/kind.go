package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Error indicates a span of input that matched no token pattern.
	Error Kind = iota
	// EOF marks the end of the source input. It is zero-width.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal token.
	IntLit

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElse represents the 'else' keyword.
	KwElse // else

	// Equals represents the assignment token.
	Equals // =
	// Comma represents the comma token.
	Comma // ,
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /

	// DummyIn is a zero-width token closing a let-binding, inserted by the
	// pre-parser where the layout implies the end of the binding.
	DummyIn
	// DummyEndif is a zero-width token closing an if-expression, inserted
	// by the pre-parser.
	DummyEndif
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "Error"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case IntLit:
		return "IntLit"
	case KwLet:
		return "KwLet"
	case KwIf:
		return "KwIf"
	case KwThen:
		return "KwThen"
	case KwElse:
		return "KwElse"
	case Equals:
		return "Equals"
	case Comma:
		return "Comma"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case DummyIn:
		return "DummyIn"
	case DummyEndif:
		return "DummyEndif"
	}
	return "Unknown"
}

// Describe returns a human-oriented phrase for diagnostics, article
// included, e.g. "an identifier" or "a ')'".
func (k Kind) Describe() string {
	switch k {
	case Error:
		return "an invalid token"
	case EOF:
		return "the end of the file"
	case Ident:
		return "an identifier"
	case IntLit:
		return "an integer literal"
	case KwLet:
		return "a 'let'"
	case KwIf:
		return "an 'if'"
	case KwThen:
		return "a 'then'"
	case KwElse:
		return "an 'else'"
	case Equals:
		return "an '='"
	case Comma:
		return "a ','"
	case LParen:
		return "a '('"
	case RParen:
		return "a ')'"
	case Plus:
		return "a '+'"
	case Minus:
		return "a '-'"
	case Star:
		return "a '*'"
	case Slash:
		return "a '/'"
	case DummyIn:
		return "the end of a 'let' binding"
	case DummyEndif:
		return "the end of an 'if' expression"
	}
	return "an unknown token"
}

// IsDummy reports whether the token kind stands in for a syntactically
// required element the source never spelled out. Dummy tokens are
// zero-width and are skipped by present-child searches.
func (k Kind) IsDummy() bool {
	switch k {
	case EOF, DummyIn, DummyEndif:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is a binary operator.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}
