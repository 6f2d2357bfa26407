package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes img by factor using the named resampling kernel
// ("nearest", "bilinear", "bicubic"; anything else falls back to
// bilinear), for the multi-scale output loop driven by
// Settings.Scale/ScaleSuffix/ScaleResampling.
func Scale(img image.Image, factor float64, resampling string) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler(resampling).Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func scaler(resampling string) draw.Scaler {
	switch resampling {
	case "nearest":
		return draw.NearestNeighbor
	case "bicubic":
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}
