package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanImages(t *testing.T) {
	dir := t.TempDir()

	writeFixture(t, filepath.Join(dir, "a.jpg"), 10, 10)
	writeFixture(t, filepath.Join(dir, "b.PNG"), 10, 10)
	writeFixture(t, filepath.Join(dir, "sub", "c.tif"), 10, 10)
	writeFixture(t, filepath.Join(dir, ".cache", "d.png"), 10, 10) // hidden dir skipped
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	sources, err := ScanImages(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	byRel := map[string]Source{}
	for _, s := range sources {
		byRel[s.RelPath] = s
	}

	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3: %v", len(sources), byRel)
	}

	if s := byRel["a.jpg"]; s.Format != "jpeg" || s.Name != "a.jpg" || s.Size <= 0 {
		t.Errorf("a.jpg: %+v", s)
	}
	if s := byRel["b.PNG"]; s.Format != "png" {
		t.Errorf("b.PNG: %+v", s)
	}
	if s := byRel["sub/c.tif"]; s.Format != "tiff" {
		t.Errorf("sub/c.tif: %+v", s)
	}
	if _, ok := byRel[".cache/d.png"]; ok {
		t.Error("hidden directory was not skipped")
	}
}

func TestScanImages_MissingDir(t *testing.T) {
	if _, err := ScanImages(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
