package packer

// freeRect is an axis-aligned unoccupied region tracked by the
// MaxRects engine.
type freeRect struct {
	X, Y, W, H int
}

// maxRects is the MaxRects engine's working state for one fixed bin
// size: used and free lists, owned exclusively by one packer instance
// with no shared mutable state across instances. Splitting uses a
// guillotine cut found via a separating-axis test, followed by pruning
// of any free rectangle fully contained in another.
type maxRects struct {
	w, h int
	used []freeRect
	free []freeRect
}

func newMaxRects(w, h int) *maxRects {
	m := &maxRects{
		w:    w,
		h:    h,
		used: make([]freeRect, 0, 64),
		free: make([]freeRect, 0, 64),
	}
	m.free = append(m.free, freeRect{X: 0, Y: 0, W: w, H: h})
	return m
}

// candidate is one placement option: a footprint (w,h), whether it is
// the rotated orientation, its position, and its heuristic scores.
type candidate struct {
	x, y, w, h int
	rotated    bool
	score1     int
	score2     int
	ok         bool
}

// less orders two candidates by (score1, score2) lexicographically.
func (c candidate) less(o candidate) bool {
	if c.score1 != o.score1 {
		return c.score1 < o.score1
	}
	return c.score2 < o.score2
}

// best finds the best-scoring position for a footprint of (w,h), and,
// when canRotate is true, for the rotated footprint (rw,rh) too,
// under the given rule. It does not mutate m.
func (m *maxRects) best(rule Rule, w, h, rw, rh int, canRotate bool) candidate {
	best := candidate{score1: maxScore, score2: maxScore}

	for i := range m.free {
		fr := m.free[i]

		if fr.W >= w && fr.H >= h {
			s1, s2 := m.score(rule, fr, w, h)
			c := candidate{x: fr.X, y: fr.Y, w: w, h: h, rotated: false, score1: s1, score2: s2, ok: true}
			if c.less(best) {
				best = c
			}
		}

		if canRotate && fr.W >= rw && fr.H >= rh {
			s1, s2 := m.score(rule, fr, rw, rh)
			c := candidate{x: fr.X, y: fr.Y, w: rw, h: rh, rotated: true, score1: s1, score2: s2, ok: true}
			if c.less(best) {
				best = c
			}
		}
	}

	return best
}

// place commits a chosen footprint into used, guillotine-splitting
// every free rectangle it overlaps and pruning contained leftovers.
func (m *maxRects) place(c candidate) {
	used := freeRect{X: c.x, Y: c.y, W: c.w, H: c.h}

	for i := 0; i < len(m.free); {
		if m.splitFree(i, used) {
			m.free = removeAt(m.free, i)
			continue
		}
		i++
	}

	m.pruneFree()
	m.used = append(m.used, used)
}

// score dispatches to one of the five heuristics. Each is a pure
// function over (free rect, candidate footprint); ContactPointRule
// alone also reads m.used/m.w/m.h to score shared edges.
func (m *maxRects) score(rule Rule, fr freeRect, w, h int) (pri, sec int) {
	switch rule {
	case BestShortSideFit:
		leftoverH := absInt(fr.W - w)
		leftoverV := absInt(fr.H - h)
		return min(leftoverH, leftoverV), max(leftoverH, leftoverV)

	case BestLongSideFit:
		leftoverH := absInt(fr.W - w)
		leftoverV := absInt(fr.H - h)
		return max(leftoverH, leftoverV), min(leftoverH, leftoverV)

	case BestAreaFit:
		areaFit := fr.W*fr.H - w*h
		shortSide := min(absInt(fr.W-w), absInt(fr.H-h))
		return areaFit, shortSide

	case BottomLeftRule:
		return fr.Y + h, fr.X

	case ContactPointRule:
		return -m.contactScore(fr.X, fr.Y, w, h), 0

	default:
		return maxScore, maxScore
	}
}

// contactScore counts the 1-D interval overlap on edges shared with
// the bin border and with already-placed rects.
func (m *maxRects) contactScore(x, y, w, h int) int {
	score := 0
	if x == 0 || x+w == m.w {
		score += h
	}
	if y == 0 || y+h == m.h {
		score += w
	}

	for _, u := range m.used {
		if u.X == x+w || u.X+u.W == x {
			score += commonInterval(u.Y, u.Y+u.H, y, y+h)
		}
		if u.Y == y+h || u.Y+u.H == y {
			score += commonInterval(u.X, u.X+u.W, x, x+w)
		}
	}

	return score
}

func commonInterval(a0, a1, b0, b1 int) int {
	if a1 <= b0 || b1 <= a0 {
		return 0
	}
	end := min(a1, b1)
	start := max(a0, b0)
	return end - start
}

// splitFree guillotine-splits a free rectangle by SAT against a newly
// used rect, producing up to four axis-aligned leftovers (above,
// below, left, right, intersected with the free rect).
func (m *maxRects) splitFree(freeIdx int, used freeRect) bool {
	fr := m.free[freeIdx]

	if used.X >= fr.X+fr.W || used.X+used.W <= fr.X || used.Y >= fr.Y+fr.H || used.Y+used.H <= fr.Y {
		return false
	}

	if used.X < fr.X+fr.W && used.X+used.W > fr.X {
		if used.Y > fr.Y && used.Y < fr.Y+fr.H {
			m.free = append(m.free, freeRect{X: fr.X, Y: fr.Y, W: fr.W, H: used.Y - fr.Y})
		}
		if used.Y+used.H < fr.Y+fr.H {
			m.free = append(m.free, freeRect{X: fr.X, Y: used.Y + used.H, W: fr.W, H: fr.Y + fr.H - (used.Y + used.H)})
		}
	}

	if used.Y < fr.Y+fr.H && used.Y+used.H > fr.Y {
		if used.X > fr.X && used.X < fr.X+fr.W {
			m.free = append(m.free, freeRect{X: fr.X, Y: fr.Y, W: used.X - fr.X, H: fr.H})
		}
		if used.X+used.W < fr.X+fr.W {
			m.free = append(m.free, freeRect{X: used.X + used.W, Y: fr.Y, W: fr.X + fr.W - (used.X + used.W), H: fr.H})
		}
	}

	return true
}

// pruneFree removes any free rectangle fully contained in another.
func (m *maxRects) pruneFree() {
	for i := 0; i < len(m.free); i++ {
		a := m.free[i]
		for j := i + 1; j < len(m.free); j++ {
			b := m.free[j]
			if containedIn(a, b) {
				m.free = removeAt(m.free, i)
				i--
				break
			}
			if containedIn(b, a) {
				m.free = removeAt(m.free, j)
				j--
			}
		}
	}
}

func containedIn(a, b freeRect) bool {
	return a.X >= b.X && a.Y >= b.Y && a.X+a.W <= b.X+b.W && a.Y+a.H <= b.Y+b.H
}

func removeAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	copy(s[i:], s[i+1:])
	return s[:len(s)-1]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
