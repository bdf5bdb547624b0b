package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"larch/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.lr", "let x = 1\nx")

	result, err := Tokenize(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Bag.Len() != 0 {
		t.Errorf("diagnostics: %v", result.Bag.Items())
	}
	if len(result.Tokens) == 0 || result.Tokens[len(result.Tokens)-1].Kind != token.EOF {
		t.Errorf("token stream does not end with EOF: %v", result.Tokens)
	}
}

func TestParseSourceRoundTrip(t *testing.T) {
	src := "let add(x, y) = x + y\nadd(1, 2)"
	result := ParseSource("main.lr", []byte(src), 0)
	if result.Bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", result.Bag.Items())
	}
	if got := result.Tree.FullText(); got != src {
		t.Errorf("FullText = %q, want %q", got, src)
	}
}

func TestCheckSourceReportsUnbound(t *testing.T) {
	result := CheckSource("main.lr", []byte("print(nope)"), 0)
	if !result.Bag.HasErrors() {
		t.Error("expected an unbound-name error")
	}
}

func TestBuildSource(t *testing.T) {
	result := BuildSource("main.lr", []byte("let x = 1\nprint(x)"), 0)
	if result.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", result.Bag.Items())
	}
	if result.Python != "x = 1\nprint(x)\n" {
		t.Errorf("python = %q", result.Python)
	}
}

func TestBuildSourceSkipsCodegenOnErrors(t *testing.T) {
	result := BuildSource("main.lr", []byte("print(nope)"), 0)
	if !result.Bag.HasErrors() {
		t.Fatal("expected errors")
	}
	if result.Python != "" {
		t.Errorf("python generated despite errors: %q", result.Python)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.lr", "let x = 1\nprint(x)")
	writeSource(t, dir, "b.lr", "print(nope)")
	writeSource(t, dir, "notes.txt", "not a source file")

	results, err := CheckDir(context.Background(), dir, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("checked %d files, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "a.lr" || filepath.Base(results[1].Path) != "b.lr" {
		t.Errorf("results out of order: %v, %v", results[0].Path, results[1].Path)
	}
	if results[0].Result.Bag.HasErrors() {
		t.Errorf("a.lr diagnostics: %v", results[0].Result.Bag.Items())
	}
	if !results[1].Result.Bag.HasErrors() {
		t.Error("b.lr should have an unbound-name error")
	}

	merged := MergeBags(results, 0)
	if !merged.HasErrors() {
		t.Error("merged bag should report errors")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := CheckDir(context.Background(), t.TempDir(), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("expected no results, got %v", results)
	}
}
