package packer

import (
	"sort"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

// FindPages is the MaxRects page-size search driver: it finds the
// smallest page(s) the input fits into, honouring POT/mod4/square
// constraints, and falls back to a partial page plus remaining rects
// when nothing fits the input in full.
func FindPages(s *atlas.Settings, rects []*atlas.Rect, progress atlas.Progress) ([]*atlas.Page, error) {
	if progress == nil {
		progress = atlas.NoopProgress{}
	}
	if len(rects) == 0 {
		return nil, nil
	}

	maxW, maxH := s.AdjustedMax()
	for _, r := range rects {
		fw, fh, rw, rh, canRotate := footprintFor(r, s.PaddingX, s.PaddingY, s.Rotation)
		uprightFits := fw <= maxW && fh <= maxH
		rotatedFits := canRotate && rw <= maxW && rh <= maxH
		if !uprightFits && !rotatedFits {
			return nil, atlas.InputTooLarge(r.Name, fw, fh, maxW, maxH)
		}
	}

	var pages []*atlas.Page
	remaining := rects
	total := len(rects)

	for len(remaining) > 0 {
		if progress.Update(total-len(remaining), total) {
			return pages, atlas.Cancelled
		}

		page := findOnePage(s, remaining, maxW, maxH)
		SortByAtlasName(page.OutputRects, s.FlattenPaths)
		page.Width -= s.PaddingX
		page.Height -= s.PaddingY
		pages = append(pages, page)

		if len(page.OutputRects) == 0 {
			// Guarded by the upfront fits-in-one-orientation check above;
			// reaching here would mean no progress is possible.
			return pages, atlas.InputTooLarge(remaining[0].Name, remaining[0].Width, remaining[0].Height, maxW, maxH)
		}

		remaining = page.RemainingRects
	}

	return pages, nil
}

// findOnePage runs the binary search over page sizes for one page's
// worth of rects, falling back to a partial best-effort page at
// (maxW, maxH) when nothing fits in full.
func findOnePage(s *atlas.Settings, rects []*atlas.Rect, maxW, maxH int) *atlas.Page {
	steps := 15
	if s.Fast {
		steps = 25
	}

	minW, minH := minDims(s, rects)

	var best *atlas.Page

	if s.Square {
		lo := max(minW, minH)
		cap := min(maxW, maxH)
		for _, sz := range candidateSizes(lo, cap, steps, s.PowerOfTwo, s.MultipleOfFour) {
			if page, ok := packAtSize(s, sz, sz, rects, true); ok {
				best = betterPage(best, page)
			}
		}
	} else {
		widths := candidateSizes(minW, maxW, steps, s.PowerOfTwo, s.MultipleOfFour)
		heights := candidateSizes(minH, maxH, steps, s.PowerOfTwo, s.MultipleOfFour)

		for _, h := range heights {
			idx := sort.Search(len(widths), func(i int) bool {
				_, ok := packAtSize(s, widths[i], h, rects, true)
				return ok
			})
			if idx >= len(widths) {
				continue
			}
			if page, ok := packAtSize(s, widths[idx], h, rects, true); ok {
				best = betterPage(best, page)
			}
		}
	}

	if best != nil {
		return best
	}

	page, _ := packAtSize(s, maxW, maxH, rects, false)
	return page
}

// betterPage keeps the higher-occupancy of two candidate pages.
func betterPage(cur, next *atlas.Page) *atlas.Page {
	if cur == nil || next.Occupancy > cur.Occupancy {
		return next
	}
	return cur
}

// minDims computes the smallest page a single rect could ever need in
// its best orientation, maxed across all rects and with Settings'
// own MinWidth/MinHeight floor.
func minDims(s *atlas.Settings, rects []*atlas.Rect) (w, h int) {
	w, h = s.MinWidth, s.MinHeight
	for _, r := range rects {
		fw, fh, rw, rh, canRotate := footprintFor(r, s.PaddingX, s.PaddingY, s.Rotation)
		needW, needH := fw, fh
		if canRotate {
			needW = min(fw, rw)
			needH = min(fh, rh)
		}
		w = max(w, needW)
		h = max(h, needH)
	}
	return w, h
}

// packAtSize tries every heuristic at one candidate size: for each of
// the five heuristics, pack rects into a fresh (w,h) bin and keep the
// best-occupancy result. When fully is true, any heuristic leaving
// RemainingRects
// non-empty is rejected outright. Packing mutates rect placement
// fields, so every attempt runs against disposable clones; only the
// winning attempt's placements are copied back onto the real rects.
func packAtSize(s *atlas.Settings, w, h int, rects []*atlas.Rect, fully bool) (*atlas.Page, bool) {
	var bestPage *atlas.Page
	var bestOrigByClone map[*atlas.Rect]*atlas.Rect

	for _, rule := range AllRules {
		clones, origByClone := cloneRects(rects)
		m := newMaxRects(w, h)

		var placed, left []*atlas.Rect
		if s.Fast {
			working := make([]*atlas.Rect, len(clones))
			copy(working, clones)
			SortForFast(working, s.PaddingX, s.PaddingY, s.Rotation)
			for _, r := range working {
				if Insert(m, r, s.PaddingX, s.PaddingY, s.Rotation, rule) {
					placed = append(placed, r)
				} else {
					left = append(left, r)
				}
			}
		} else {
			placed, left = Pack(m, clones, s.PaddingX, s.PaddingY, s.Rotation, rule)
		}

		if fully && len(left) > 0 {
			continue
		}

		page := &atlas.Page{Width: w, Height: h, OutputRects: placed, RemainingRects: left}
		page.ComputeOccupancy()

		if bestPage == nil || page.Occupancy > bestPage.Occupancy {
			bestPage = page
			bestOrigByClone = origByClone
		}
	}

	if bestPage == nil {
		return nil, false
	}

	for i, clone := range bestPage.OutputRects {
		orig := bestOrigByClone[clone]
		orig.X, orig.Y = clone.X, clone.Y
		orig.Width, orig.Height = clone.Width, clone.Height
		orig.Rotated = clone.Rotated
		bestPage.OutputRects[i] = orig
	}
	for i, clone := range bestPage.RemainingRects {
		bestPage.RemainingRects[i] = bestOrigByClone[clone]
	}

	return bestPage, true
}

// cloneRects makes a shallow, independently-placeable copy of each
// rect (sharing Aliases/Source, which packing never touches) so
// multiple heuristic attempts can run against the same input without
// clobbering each other's placement fields.
func cloneRects(rects []*atlas.Rect) (clones []*atlas.Rect, origByClone map[*atlas.Rect]*atlas.Rect) {
	clones = make([]*atlas.Rect, len(rects))
	origByClone = make(map[*atlas.Rect]*atlas.Rect, len(rects))
	for i, r := range rects {
		cp := *r
		clones[i] = &cp
		origByClone[&cp] = r
	}
	return clones, origByClone
}
