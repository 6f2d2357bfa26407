package imageio

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

// Write saves img as a PNG or JPEG, selected by format ("png"/"jpg").
// JPEG has no alpha channel, so a page written as jpg loses its
// transparency; neither Write nor Settings.Validate checks for that.
// An unrecognized format is rejected before the file is created.
func Write(path, format string, img image.Image, jpegQuality float64) error {
	if format != "png" && format != "jpg" {
		return atlas.EncoderMissing(format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "jpg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: qualityPercent(jpegQuality)})
	case "png":
		return png.Encode(f, img)
	}
	return nil
}

// qualityPercent maps the 0..1 Settings.JPEGQuality fraction onto the
// 1..100 range image/jpeg.Options expects.
func qualityPercent(q float64) int {
	p := int(q * 100)
	if p < 1 {
		p = 1
	}
	if p > 100 {
		p = 100
	}
	return p
}
