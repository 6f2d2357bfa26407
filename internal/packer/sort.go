package packer

import (
	"slices"

	"github.com/samber/lo"
	"github.com/woozymasta/atlaspack/internal/atlas"
)

// SortForFast orders rects the way fast mode's single-pass Insert
// loop wants them: descending by the longer side when rotation is
// enabled (so tall/wide sprites get first pick of free space),
// otherwise descending by width, with area then height then width as a
// stable tie-break chain.
func SortForFast(rects []*atlas.Rect, padX, padY int, allowRotate bool) {
	key := func(r *atlas.Rect) (int, int, int, int) {
		w, h := r.Width+padX, r.Height+padY
		primary := w
		if allowRotate {
			primary = max(w, h)
		}
		return primary, w * h, h, w
	}

	slices.SortFunc(rects, func(a, b *atlas.Rect) int {
		ka1, ka2, ka3, ka4 := key(a)
		kb1, kb2, kb3, kb4 := key(b)
		switch {
		case ka1 != kb1:
			return kb1 - ka1
		case ka2 != kb2:
			return kb2 - ka2
		case ka3 != kb3:
			return kb3 - ka3
		default:
			return kb4 - ka4
		}
	})
}

// SortByAtlasName sorts placed rects by their manifest name for
// deterministic output. Aliases participate in manifest ordering
// separately (internal/manifest), not here.
func SortByAtlasName(rects []*atlas.Rect, flattenPaths bool) {
	slices.SortFunc(rects, func(a, b *atlas.Rect) int {
		na, nb := atlas.AtlasName(a.Name, flattenPaths), atlas.AtlasName(b.Name, flattenPaths)
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	})
}

// DuplicateNames returns every name (primary or alias) that occurs
// more than once across rects, for the name-collision check that is a
// hard error before any page is written.
func DuplicateNames(rects []*atlas.Rect) []string {
	var all []string
	for _, r := range rects {
		all = append(all, r.NamesAndAliases()...)
	}

	counts := lo.CountValues(all)
	dupes := lo.Filter(lo.Keys(counts), func(name string, _ int) bool {
		return counts[name] > 1
	})
	slices.Sort(dupes)
	return dupes
}
