package packer

import "github.com/woozymasta/atlaspack/internal/atlas"

// footprintFor computes a rect's upright and (when rotation is
// allowed and the rect permits it) rotated footprints, already
// including padding baked into width/height for the duration of
// packing.
func footprintFor(r *atlas.Rect, padX, padY int, allowRotate bool) (fw, fh, rw, rh int, canRotate bool) {
	fw, fh = r.Width+padX, r.Height+padY
	canRotate = allowRotate && r.CanRotate
	if canRotate {
		rw, rh = atlas.RotatedFootprint(fw, fh, padX, padY)
	}
	return
}

// applyCandidate commits a found candidate onto rect and into m.
func applyCandidate(m *maxRects, r *atlas.Rect, c candidate) {
	m.place(c)
	r.X, r.Y = c.x, c.y
	r.Width, r.Height = c.w, c.h
	r.Rotated = c.rotated
}

// Insert places a single rect using the given rule, mutating it in
// place on success.
func Insert(m *maxRects, r *atlas.Rect, padX, padY int, allowRotate bool, rule Rule) bool {
	fw, fh, rw, rh, canRotate := footprintFor(r, padX, padY, allowRotate)
	c := m.best(rule, fw, fh, rw, rh, canRotate)
	if !c.ok {
		return false
	}
	applyCandidate(m, r, c)
	return true
}

// Pack runs the online best-fit loop: repeatedly scans the remaining
// rects, scores each against the current free list, and places
// whichever has the lexicographically
// smallest (score1, score2). O(n^2) but quality-superior; this is the
// default mode used whenever Settings.Fast is false.
func Pack(m *maxRects, rects []*atlas.Rect, padX, padY int, allowRotate bool, rule Rule) (placed, remaining []*atlas.Rect) {
	pending := make([]*atlas.Rect, len(rects))
	copy(pending, rects)

	for len(pending) > 0 {
		bestIdx := -1
		var best candidate

		for i, r := range pending {
			fw, fh, rw, rh, canRotate := footprintFor(r, padX, padY, allowRotate)
			c := m.best(rule, fw, fh, rw, rh, canRotate)
			if !c.ok {
				continue
			}
			if bestIdx == -1 || c.less(best) {
				bestIdx = i
				best = c
			}
		}

		if bestIdx == -1 {
			break
		}

		r := pending[bestIdx]
		applyCandidate(m, r, best)
		placed = append(placed, r)
		pending = removeAt(pending, bestIdx)
	}

	return placed, pending
}
