package atlas

import "image"

// ImageSource lazily yields the decoded pixels for a Rect. The packer
// never calls it; only the page assembler does, exactly once per rect.
type ImageSource interface {
	GetImage() (image.Image, error)
}

// Alias is an alternative name/9-patch identity that shares its
// primary's placement. It holds no back-pointer to the primary; at
// emit time the manifest writer applies it onto a copy of the
// primary's already-placed Rect.
type Alias struct {
	Name           string
	Index          int // -1 when absent
	OffsetX        int
	OffsetY        int
	OriginalWidth  int
	OriginalHeight int
	Splits         *[4]int
	Pads           *[4]int
}

// Rect is a packable record. Width/Height start as the sprite's
// true pixel size; once a packer places the rect it grows Width by
// PaddingX and Height by PaddingY in place (the "right/top padding is
// baked into width/height during packing" rule), so after packing
// Width/Height are the footprint, not the original sprite size.
type Rect struct {
	Name   string
	X, Y   int
	Width  int
	Height int

	Index     int // optional run-of-frames suffix, -1 when absent
	CanRotate bool
	Rotated   bool

	OffsetX        int
	OffsetY        int
	OriginalWidth  int
	OriginalHeight int
	RegionWidth    int
	RegionHeight   int

	Splits *[4]int
	Pads   *[4]int

	WrapX bool
	WrapY bool

	// Score1/Score2 are packer scratch space; meaningless once placed.
	Score1 int
	Score2 int

	Aliases []*Alias

	Source ImageSource
}

// Footprint returns the padded (width, height) this rect occupies once
// a packer places it, given the settings' per-axis padding.
func (r *Rect) Footprint(padX, padY int) (w, h int) {
	return r.Width + padX, r.Height + padY
}

// RotatedFootprint returns the occupied (width, height) of this rect's
// footprint after a 90° rotation: the already-padded axis loses its
// padding and gains the other axis's.
func RotatedFootprint(footprintW, footprintH, padX, padY int) (w, h int) {
	return footprintH - padY + padX, footprintW - padX + padY
}

// NamesAndAliases returns this rect's primary name followed by all of
// its alias names, for uniqueness checks.
func (r *Rect) NamesAndAliases() []string {
	out := make([]string, 0, 1+len(r.Aliases))
	out = append(out, r.Name)
	for _, a := range r.Aliases {
		out = append(out, a.Name)
	}
	return out
}
