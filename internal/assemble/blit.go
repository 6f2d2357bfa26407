package assemble

import "image"

// blit copies src onto dst at (dx,dy), rotating 90° clockwise first
// when rotated is true, matching the packer's rotated-footprint
// convention (a rotated rect's footprint width equals the source's
// height and vice versa).
func blit(dst *image.RGBA, src image.Image, dx, dy int, rotated bool) {
	b := src.Bounds()
	if rotated {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				// (x,y) in source maps to (h-1-y, x) in the rotated footprint.
				rx := dx + (b.Max.Y - 1 - y)
				ry := dy + (x - b.Min.X)
				dst.Set(rx, ry, src.At(x, y))
			}
		}
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(dx+(x-b.Min.X), dy+(y-b.Min.Y), src.At(x, y))
		}
	}
}

// duplicateEdges replicates the outermost row/column of a placed
// rect's visible region into its padding band, and its corner pixel
// into the band's corner. It operates directly on the assembled
// canvas, right after that rect has been blitted.
func duplicateEdges(dst *image.RGBA, dx, dy, w, h, padX, padY int) {
	if w <= 0 || h <= 0 {
		return
	}

	if padX > 0 {
		edgeX := dx + w - 1
		for y := 0; y < h; y++ {
			c := dst.At(edgeX, dy+y)
			for px := 0; px < padX; px++ {
				dst.Set(edgeX+1+px, dy+y, c)
			}
		}
	}
	if padY > 0 {
		edgeY := dy + h - 1
		for x := 0; x < w; x++ {
			c := dst.At(dx+x, edgeY)
			for py := 0; py < padY; py++ {
				dst.Set(dx+x, edgeY+1+py, c)
			}
		}
	}
	if padX > 0 && padY > 0 {
		corner := dst.At(dx+w-1, dy+h-1)
		for px := 0; px < padX; px++ {
			for py := 0; py < padY; py++ {
				dst.Set(dx+w+px, dy+h+py, corner)
			}
		}
	}
}

// premultiplyAlpha converts every pixel of img to premultiplied form
// in place.
func premultiplyAlpha(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			a := uint32(img.Pix[i+3])
			if a == 255 {
				continue
			}
			for c := 0; c < 3; c++ {
				v := uint32(img.Pix[i+c])
				img.Pix[i+c] = uint8(v * a / 255)
			}
		}
	}
}
