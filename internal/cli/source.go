package cli

import (
	"image"

	"github.com/woozymasta/atlaspack/internal/atlas"
	"github.com/woozymasta/atlaspack/internal/imageio"
)

// fileSource lazily decodes a source image from disk, satisfying
// atlas.ImageSource. The assembler calls GetImage exactly once per
// rect, so no caching is needed here.
type fileSource struct {
	path string
}

func (s fileSource) GetImage() (image.Image, error) {
	return imageio.Read(s.path)
}

// scaledSource wraps another ImageSource, resampling its image by
// factor on every call — used by the multi-scale output loop, which
// builds an independent rect list per scale.
type scaledSource struct {
	inner      atlas.ImageSource
	factor     float64
	resampling string
}

func (s scaledSource) GetImage() (image.Image, error) {
	img, err := s.inner.GetImage()
	if err != nil {
		return nil, err
	}
	return imageio.Scale(img, s.factor, s.resampling), nil
}
