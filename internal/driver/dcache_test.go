package driver

import (
	"testing"

	"larch/internal/diag"
	"larch/internal/project"
)

func TestDiskCachePutGet(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := project.HashBytes([]byte("content"))
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "main.lr",
		ContentHash: key,
		Python:      "x = 1\n",
		Diagnostics: []CachedDiagnostic{
			{Severity: uint8(diag.SevWarning), Code: uint32(diag.SynLengthMismatch), Start: 0, End: 3, Message: "m"},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatal(err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if got.Python != payload.Python || len(got.Diagnostics) != 1 || got.Diagnostics[0].Message != "m" {
		t.Errorf("payload round trip: %+v", got)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var got DiskPayload
	hit, err := cache.Get(project.HashBytes([]byte("absent")), &got)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("expected a miss for an unknown key")
	}
}

func TestBuildCached(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, t.TempDir(), "main.lr", "let x = 1\nprint(nope)")

	first, hit, err := BuildCached(path, cache, 0)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("first build should miss the cache")
	}
	if !first.Bag.HasErrors() {
		t.Fatal("expected an unbound-name error")
	}

	second, hit, err := BuildCached(path, cache, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("second build should hit the cache")
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Errorf("replayed %d diagnostics, want %d", second.Bag.Len(), first.Bag.Len())
	}
	got := second.Bag.Items()[0]
	want := first.Bag.Items()[0]
	if got.Code != want.Code || got.Message != want.Message || got.Primary.Start != want.Primary.Start {
		t.Errorf("replayed diagnostic differs:\n%+v\n%+v", got, want)
	}
}

func TestBuildCachedInvalidatesOnEdit(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := writeSource(t, dir, "main.lr", "print(nope)")

	if _, _, err := BuildCached(path, cache, 0); err != nil {
		t.Fatal(err)
	}

	writeSource(t, dir, "main.lr", "let nope = 1\nprint(nope)")
	result, hit, err := BuildCached(path, cache, 0)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("edited file should miss the cache")
	}
	if result.Bag.HasErrors() {
		t.Errorf("diagnostics after fix: %v", result.Bag.Items())
	}
}
