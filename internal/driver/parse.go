package driver

import (
	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
	"larch/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *red.SyntaxTree
	Bag     *diag.Bag
}

// Parse lexes and parses a single file from disk.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return parse(fs, file, maxDiagnostics), nil
}

// ParseSource lexes and parses in-memory content.
func ParseSource(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return parse(fs, file, maxDiagnostics)
}

func parse(fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := newBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	tokens := lexer.Lex(file, lexer.Options{Reporter: reporter})
	green := parser.Parse(file, tokens, parser.Options{Reporter: reporter})
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    red.NewSyntaxTree(green),
		Bag:     bag,
	}
}
