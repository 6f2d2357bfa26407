package imageio

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Read loads a source image. PNG and JPEG are registered with the
// stdlib image package; decoding dispatches on the file's magic
// bytes rather than its extension, so a mislabeled file still loads.
func Read(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GetImageSize reads only an image's dimensions without decoding
// pixel data, for the fast-path size probe input discovery wants
// before committing to a full decode.
func GetImageSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
