package driver

import (
	"larch/internal/codegen"
	"larch/internal/source"
)

type BuildResult struct {
	*CheckResult
	// Python is the generated program, empty when errors prevented
	// code generation.
	Python string
}

// Build checks a single file from disk and, when error-free, lowers it
// to Python.
func Build(path string, maxDiagnostics int) (*BuildResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return build(fs, file, maxDiagnostics), nil
}

// BuildSource checks in-memory content and, when error-free, lowers it
// to Python.
func BuildSource(name string, content []byte, maxDiagnostics int) *BuildResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return build(fs, file, maxDiagnostics)
}

func build(fs *source.FileSet, file *source.File, maxDiagnostics int) *BuildResult {
	checked := check(fs, file, maxDiagnostics)
	result := &BuildResult{CheckResult: checked}
	if !checked.Bag.HasErrors() {
		result.Python = codegen.Generate(checked.Tree)
	}
	return result
}
