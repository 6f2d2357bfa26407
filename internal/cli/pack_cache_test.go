package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShouldSkipPackWhenAtlasMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	skip, err := shouldSkipPack(dir, filepath.Join(dir, "atlas.atlas"))
	if err != nil {
		t.Fatalf("shouldSkipPack: %v", err)
	}
	if skip {
		t.Error("should never skip when the atlas file does not exist yet")
	}
}

func TestShouldSkipPackWhenAtlasNewerThanAllInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "a.png")
	if err := os.WriteFile(inputPath, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	atlasPath := filepath.Join(dir, "atlas.atlas")
	if err := os.WriteFile(atlasPath, []byte("manifest"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(atlasPath, future, future); err != nil {
		t.Fatal(err)
	}

	skip, err := shouldSkipPack(dir, atlasPath)
	if err != nil {
		t.Fatalf("shouldSkipPack: %v", err)
	}
	if !skip {
		t.Error("expected to skip when every input is older than the atlas file")
	}
}

func TestShouldSkipPackWhenInputNewerThanAtlas(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	atlasPath := filepath.Join(dir, "atlas.atlas")
	if err := os.WriteFile(atlasPath, []byte("manifest"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(atlasPath, past, past); err != nil {
		t.Fatal(err)
	}

	// Input written after the atlas file, so it's newer.
	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	skip, err := shouldSkipPack(dir, atlasPath)
	if err != nil {
		t.Fatalf("shouldSkipPack: %v", err)
	}
	if skip {
		t.Error("expected not to skip when an input is newer than the atlas file")
	}
}
