package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"larch/internal/diag"
	"larch/internal/project"
	"larch/internal/source"
)

// Bump when the DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores check results on disk, keyed by source content digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedNote mirrors diag.Note without the file identity, which is only
// meaningful within one FileSet.
type CachedNote struct {
	Start   uint32
	End     uint32
	Message string
}

// CachedDiagnostic is one diagnostic in a DiskPayload.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint32
	Start    uint32
	End      uint32
	Message  string
	Notes    []CachedNote
}

// DiskPayload stores a file's check outcome for fast recompilation.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	Diagnostics []CachedDiagnostic
	Python      string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Payloads with
// a stale schema count as a miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func payloadFromResult(result *BuildResult) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        result.File.Path,
		ContentHash: project.Digest(result.File.Hash),
		Python:      result.Python,
	}
	for _, d := range result.Bag.Items() {
		cached := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint32(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, note := range d.Notes {
			cached.Notes = append(cached.Notes, CachedNote{
				Start:   note.Span.Start,
				End:     note.Span.End,
				Message: note.Msg,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, cached)
	}
	return payload
}

func bagFromPayload(payload *DiskPayload, file source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cached := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cached.Severity),
			Code:     diag.Code(cached.Code),
			Message:  cached.Message,
			Primary:  source.Span{File: file, Start: cached.Start, End: cached.End},
		}
		for _, note := range cached.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: file, Start: note.Start, End: note.End},
				Msg:  note.Message,
			})
		}
		bag.Add(d)
	}
	return bag
}

// BuildCached is Build with a read-through disk cache. A cache hit skips
// all phases and replays the recorded diagnostics and generated Python;
// tree-bearing fields of the result are nil in that case. A nil cache
// degrades to a plain Build.
func BuildCached(path string, cache *DiskCache, maxDiagnostics int) (*BuildResult, bool, error) {
	fs := source.NewFileSet()
	file, err := loadFile(fs, path)
	if err != nil {
		return nil, false, err
	}

	key := project.Digest(file.Hash)
	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err == nil && hit {
		return &BuildResult{
			CheckResult: &CheckResult{
				FileSet: fs,
				File:    file,
				Bag:     bagFromPayload(&payload, file.ID, maxDiagnostics),
			},
			Python: payload.Python,
		}, true, nil
	}

	result := build(fs, file, maxDiagnostics)
	if err := cache.Put(key, payloadFromResult(result)); err != nil {
		return result, false, err
	}
	return result, false, nil
}
