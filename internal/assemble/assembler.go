package assemble

import (
	"image"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

// Assemble renders one packed Page into its final canvas: it grows the
// page by the edge-padding margin, quantises the resulting canvas
// size, blits every placed rect (rotating where required), replicates
// edges into padding bands, runs the bleed collaborator, and
// premultiplies alpha, in that order.
func Assemble(s *atlas.Settings, page *atlas.Page, bleeder Bleed) (*image.RGBA, error) {
	if bleeder == nil {
		bleeder = NoopBleed{}
	}

	padX, padY := s.EdgePad()
	page.X, page.Y = padX, padY
	origHeight := page.Height

	packedW := page.Width + 2*padX
	packedH := origHeight + 2*padY

	imageW := quantizeSize(packedW, s.PowerOfTwo, s.MultipleOfFour)
	imageH := quantizeSize(packedH, s.PowerOfTwo, s.MultipleOfFour)
	if imageW < s.MinWidth {
		imageW = s.MinWidth
	}
	if imageH < s.MinHeight {
		imageH = s.MinHeight
	}
	page.ImageWidth, page.ImageHeight = imageW, imageH

	canvas := image.NewRGBA(image.Rect(0, 0, imageW, imageH))

	for _, r := range page.OutputRects {
		src, err := r.Source.GetImage()
		if err != nil {
			return nil, atlas.IoError(err, "decode source image for %q", r.Name)
		}

		visibleW := r.Width - s.PaddingX
		visibleH := r.Height - s.PaddingY
		// The packer's rect.y grows away from the page origin; flip it
		// here so the manifest's Y-axis matches consumer conventions.
		destX := page.X + r.X
		destY := page.Y + origHeight - r.Y - visibleH

		blit(canvas, src, destX, destY, r.Rotated)

		if s.DuplicatePadding {
			duplicateEdges(canvas, destX, destY, visibleW, visibleH, s.PaddingX, s.PaddingY)
		}
	}

	if s.Bleed && s.OutputFormat != "jpg" && !s.PremultiplyAlpha {
		if err := bleeder.Bleed(canvas, s.BleedIterations); err != nil {
			return nil, atlas.IoError(err, "bleed page %q", page.ImageName)
		}
	}

	if s.PremultiplyAlpha {
		premultiplyAlpha(canvas)
	}

	return canvas, nil
}

// quantizeSize rounds v up to a power of two when pot is set, else to
// a multiple of four when mod4 is set, else leaves it as-is. It
// mirrors internal/packer's quantizeUp but lives here too since the
// assembler quantises one already-known value rather than generating a
// search axis.
func quantizeSize(v int, pot, mod4 bool) int {
	if v < 1 {
		v = 1
	}
	if pot {
		p := 1
		for p < v {
			p <<= 1
		}
		return p
	}
	if mod4 && v%4 != 0 {
		v += 4 - v%4
	}
	return v
}
