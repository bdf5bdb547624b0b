package driver

import (
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/source"
	"larch/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file from disk.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, file, maxDiagnostics), nil
}

// TokenizeSource lexes in-memory content under a virtual file name.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return tokenize(fs, file, maxDiagnostics)
}

func tokenize(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := newBag(maxDiagnostics)
	tokens := lexer.Lex(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
