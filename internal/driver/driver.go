// Package driver orchestrates the compilation phases: tokenize, parse,
// bind, check, and Python emission. Each entry point owns its FileSet and
// diagnostic bag so callers get a self-contained result.
package driver

import (
	"larch/internal/diag"
	"larch/internal/source"
)

func newBag(maxDiagnostics int) *diag.Bag {
	return diag.NewBag(maxDiagnostics)
}

func loadFile(fs *source.FileSet, path string) (*source.File, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return fs.Get(id), nil
}
