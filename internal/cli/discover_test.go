package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 1, A: 255})
		}
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverRectsFindsImagesRecursively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "ui", "b.png"), 8, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	rects, err := discoverRects(dir)
	if err != nil {
		t.Fatalf("discoverRects: %v", err)
	}
	if len(rects) != 2 {
		t.Fatalf("len(rects) = %d, want 2", len(rects))
	}
	// Sorted by path: "a.png" before "ui/b.png".
	if rects[0].Name != "a" || rects[1].Name != "ui/b" {
		t.Errorf("names = %q, %q, want a, ui/b", rects[0].Name, rects[1].Name)
	}
	if rects[1].Width != 8 || rects[1].Height != 2 {
		t.Errorf("ui/b size = %d,%d, want 8,2", rects[1].Width, rects[1].Height)
	}
	if !rects[0].CanRotate {
		t.Error("discovered rects should default to CanRotate=true")
	}
	if rects[0].Index != -1 {
		t.Errorf("Index = %d, want -1", rects[0].Index)
	}
}

func TestDiscoverRectsEmptyDirectory(t *testing.T) {
	t.Parallel()

	rects, err := discoverRects(t.TempDir())
	if err != nil {
		t.Fatalf("discoverRects: %v", err)
	}
	if len(rects) != 0 {
		t.Errorf("len(rects) = %d, want 0", len(rects))
	}
}

func TestScaleRectsScalesDimensionsIndependently(t *testing.T) {
	t.Parallel()

	original := []*atlas.Rect{
		{Name: "a", Width: 100, Height: 40, OriginalWidth: 100, OriginalHeight: 40, RegionWidth: 100, RegionHeight: 40, Source: fileSource{path: "a.png"}},
	}

	scaled := scaleRects(original, 0.5, "bilinear")
	if scaled[0].Width != 50 || scaled[0].Height != 20 {
		t.Errorf("scaled size = %d,%d, want 50,20", scaled[0].Width, scaled[0].Height)
	}
	if original[0].Width != 100 {
		t.Error("scaleRects must not mutate the original rects")
	}
	if _, ok := scaled[0].Source.(scaledSource); !ok {
		t.Error("scaled rect's Source should be wrapped in a scaledSource")
	}
}

func TestScaleDimNeverGoesToZero(t *testing.T) {
	t.Parallel()

	if got := scaleDim(2, 0.01); got < 1 {
		t.Errorf("scaleDim(2, 0.01) = %d, want >= 1", got)
	}
}
