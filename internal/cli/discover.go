package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/atlaspack/internal/atlas"
	"github.com/woozymasta/atlaspack/internal/imageio"
)

// discoverRects walks dir recursively for png/jpg images and builds
// one atlas.Rect per file, named by its slash-separated path relative
// to dir with the extension stripped so subdirectories become part of
// the manifest name (flatten_paths then collapses that at emit time).
func discoverRects(dir string) ([]*atlas.Rect, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".png" || ext == ".jpg" || ext == ".jpeg" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input directory %q: %w", dir, err)
	}
	sort.Strings(paths)

	rects := make([]*atlas.Rect, 0, len(paths))
	for _, path := range paths {
		w, h, err := imageio.GetImageSize(path)
		if err != nil {
			return nil, fmt.Errorf("read image size %q: %w", path, err)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, fmt.Errorf("relativize %q: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))

		rects = append(rects, &atlas.Rect{
			Name:           name,
			Width:          w,
			Height:         h,
			Index:          -1,
			CanRotate:      true,
			OriginalWidth:  w,
			OriginalHeight: h,
			RegionWidth:    w,
			RegionHeight:   h,
			Source:         fileSource{path: path},
		})
	}

	return rects, nil
}

// scaleRects returns an independent copy of rects scaled by factor,
// each wrapping the original's Source in a scaledSource, for the
// multi-scale output loop.
func scaleRects(rects []*atlas.Rect, factor float64, resampling string) []*atlas.Rect {
	out := make([]*atlas.Rect, len(rects))
	for i, r := range rects {
		cp := *r
		cp.Width = scaleDim(r.Width, factor)
		cp.Height = scaleDim(r.Height, factor)
		cp.OriginalWidth = scaleDim(r.OriginalWidth, factor)
		cp.OriginalHeight = scaleDim(r.OriginalHeight, factor)
		cp.RegionWidth = scaleDim(r.RegionWidth, factor)
		cp.RegionHeight = scaleDim(r.RegionHeight, factor)
		cp.Source = scaledSource{inner: r.Source, factor: factor, resampling: resampling}
		out[i] = &cp
	}
	return out
}

func scaleDim(v int, factor float64) int {
	s := int(float64(v)*factor + 0.5)
	if s < 1 {
		s = 1
	}
	return s
}
