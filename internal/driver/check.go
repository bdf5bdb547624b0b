package driver

import (
	"larch/internal/binder"
	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/sema"
	"larch/internal/source"
)

type CheckResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tree     *red.SyntaxTree
	Bindings *binder.Bindings
	Types    *sema.Result
	Bag      *diag.Bag
}

// Check runs the full front end on a single file from disk: tokenize,
// parse, bind names, and type-check.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return check(fs, file, maxDiagnostics), nil
}

// CheckSource runs the full front end on in-memory content.
func CheckSource(name string, content []byte, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return check(fs, file, maxDiagnostics)
}

func check(fs *source.FileSet, file *source.File, maxDiagnostics int) *CheckResult {
	parsed := parse(fs, file, maxDiagnostics)
	reporter := diag.BagReporter{Bag: parsed.Bag}

	bindings := binder.Bind(file, parsed.Tree, binder.GlobalScope(), reporter)
	types := sema.Check(file, parsed.Tree, bindings, reporter)
	return &CheckResult{
		FileSet:  fs,
		File:     file,
		Tree:     parsed.Tree,
		Bindings: bindings,
		Types:    types,
		Bag:      parsed.Bag,
	}
}
