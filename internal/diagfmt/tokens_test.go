package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/source"
)

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte("let x = 1\nx"))
	toks := lexer.Lex(fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}})

	var sb strings.Builder
	if err := FormatTokensJSON(&sb, toks); err != nil {
		t.Fatal(err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded[0].Kind != "KwLet" || decoded[0].Start != 0 || decoded[0].End != 3 {
		t.Errorf("first token = %+v", decoded[0])
	}
	// "x" sits after "let ", so its text span starts at offset 4.
	if decoded[1].Kind != "Ident" || decoded[1].Start != 4 {
		t.Errorf("second token = %+v", decoded[1])
	}
	last := decoded[len(decoded)-1]
	if last.Kind != "EOF" || last.Start != 11 || last.End != 11 {
		t.Errorf("EOF token = %+v", last)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lr", []byte("let x = 1\nx"))
	toks := lexer.Lex(fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}})

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, toks, fs, id); err != nil {
		t.Fatal(err)
	}

	out := sb.String()
	if !strings.Contains(out, "KwLet") || !strings.Contains(out, `"let"`) {
		t.Errorf("missing keyword line:\n%s", out)
	}
	if !strings.Contains(out, "at 1:1-1:4") {
		t.Errorf("missing position for 'let':\n%s", out)
	}
	if !strings.Contains(out, "trailing: Whitespace") {
		t.Errorf("missing trailing trivia:\n%s", out)
	}
}
