package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"larch/internal/source"
	"larch/internal/token"
)

// TokenOutput is one token in the JSON token dump. Offsets are absolute;
// start/end bound the token text itself, excluding trivia.
type TokenOutput struct {
	Kind     string   `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Leading  []string `json:"leading,omitempty"`
	Trailing []string `json:"trailing,omitempty"`
}

func triviaKinds(trivia []token.Trivium) []string {
	if len(trivia) == 0 {
		return nil
	}
	kinds := make([]string, len(trivia))
	for i, tr := range trivia {
		kinds[i] = tr.Kind.String()
	}
	return kinds
}

// FormatTokensPretty prints one line per token with its position and
// surrounding trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, file source.FileID) error {
	offset := uint32(0)
	for i, tok := range tokens {
		start := offset + uint32(tok.LeadingWidth())
		end := start + uint32(tok.Width())
		startPos := fs.Position(file, start)
		endPos := fs.Position(file, end)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if leading := triviaKinds(tok.Leading); leading != nil {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		if trailing := triviaKinds(tok.Trailing); trailing != nil {
			fmt.Fprintf(w, " (trailing: %s)", strings.Join(trailing, ", "))
		}
		fmt.Fprintln(w)

		offset += uint32(tok.FullWidth())
	}
	return nil
}

// FormatTokensJSON prints the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	offset := 0
	for _, tok := range tokens {
		start := offset + tok.LeadingWidth()
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Start:    start,
			End:      start + tok.Width(),
			Leading:  triviaKinds(tok.Leading),
			Trailing: triviaKinds(tok.Trailing),
		})
		offset += tok.FullWidth()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
