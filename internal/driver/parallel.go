package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"larch/internal/diag"
	"larch/internal/source"
)

// CheckDirResult is the outcome of checking one file of a directory.
type CheckDirResult struct {
	Path   string
	Result *CheckResult
	Err    error
}

// ListSourceFiles returns the sorted list of all *.lr files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lr") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.lr file under dir in parallel. Results come
// back in sorted path order regardless of completion order. jobs <= 0
// means one worker per CPU.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]CheckDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-goroutine, no mutex needed.
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := Check(path, maxDiagnostics)
			results[i] = CheckDirResult{Path: path, Result: result, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MergeBags collects the diagnostics of all per-file results into one
// sorted bag over a combined FileSet view. Since each result owns its
// FileSet, spans stay interpretable only through the per-file results;
// the merged bag serves aggregate queries such as HasErrors.
func MergeBags(results []CheckDirResult, maxDiagnostics int) *diag.Bag {
	merged := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.Result != nil {
			merged.Merge(r.Result.Bag)
		}
	}
	return merged
}

// FileSetOf is a convenience for rendering one per-file result.
func FileSetOf(r CheckDirResult) *source.FileSet {
	if r.Result == nil {
		return nil
	}
	return r.Result.FileSet
}
