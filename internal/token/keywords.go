package token

// keywords maps identifier text to its keyword kind.
var keywords = map[string]Kind{
	"let":  KwLet,
	"if":   KwIf,
	"then": KwThen,
	"else": KwElse,
}

// LookupKeyword returns the keyword kind for an identifier's text, or Ident
// if the text is not a keyword.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
