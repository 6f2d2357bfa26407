package manifest

import (
	"cmp"
	"slices"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

func sortAliases(aliases []*atlas.Alias) {
	slices.SortFunc(aliases, func(a, b *atlas.Alias) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
}

// Region is one manifest entry: a placed rect or one of its aliases,
// flattened to the fields the writer actually emits.
type Region struct {
	Name    string
	Index   int // -1 when absent
	X, Y    int
	W, H    int // bounds size, in page pixels (post-rotation, pre-padding)
	OffsetX int
	OffsetY int
	OrigW   int
	OrigH   int
	Rotated bool
	Splits  *[4]int
	Pads    *[4]int
	Repeat  string // "", "x", "y", "xy"
}

// BuildRegions flattens a page's placed rects (and their aliases) into
// Regions sorted by atlas name, each rect's aliases following it in
// the output, also sorted lexicographically among themselves.
func BuildRegions(page *atlas.Page, s *atlas.Settings) []Region {
	regions := make([]Region, 0, len(page.OutputRects))

	rects := slices.Clone(page.OutputRects)
	slices.SortStableFunc(rects, func(a, b *atlas.Rect) int {
		return cmp.Compare(atlas.AtlasName(a.Name, s.FlattenPaths), atlas.AtlasName(b.Name, s.FlattenPaths))
	})

	for _, r := range rects {
		primary := regionFromRect(r, page, s)
		regions = append(regions, primary)

		aliases := make([]*atlas.Alias, len(r.Aliases))
		copy(aliases, r.Aliases)
		sortAliases(aliases)

		for _, a := range aliases {
			regions = append(regions, applyAlias(primary, a))
		}
	}

	return regions
}

func regionFromRect(r *atlas.Rect, page *atlas.Page, s *atlas.Settings) Region {
	visibleW := r.Width - s.PaddingX
	visibleH := r.Height - s.PaddingY
	y := page.Y + page.Height - r.Y - visibleH

	return Region{
		Name:    atlas.AtlasName(r.Name, s.FlattenPaths),
		Index:   r.Index,
		X:       page.X + r.X,
		Y:       y,
		W:       visibleW,
		H:       visibleH,
		OffsetX: r.OffsetX,
		OffsetY: r.OffsetY,
		OrigW:   r.OriginalWidth,
		OrigH:   r.OriginalHeight,
		Rotated: r.Rotated,
		Splits:  r.Splits,
		Pads:    r.Pads,
		Repeat:  repeatOf(r.WrapX, r.WrapY),
	}
}

// applyAlias overlays an alias's own identity/metadata onto a copy of
// its primary's placement: the alias shares the primary's geometry but
// carries its own name, index, offsets, splits, and pads.
func applyAlias(primary Region, a *atlas.Alias) Region {
	out := primary
	out.Name = a.Name
	out.Index = a.Index
	out.OffsetX = a.OffsetX
	out.OffsetY = a.OffsetY
	out.OrigW = a.OriginalWidth
	out.OrigH = a.OriginalHeight
	out.Splits = a.Splits
	out.Pads = a.Pads
	return out
}

func repeatOf(wrapX, wrapY bool) string {
	switch {
	case wrapX && wrapY:
		return "xy"
	case wrapX:
		return "x"
	case wrapY:
		return "y"
	default:
		return ""
	}
}
