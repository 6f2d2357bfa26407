package packer

import "testing"

func TestNewMaxRectsStartsWithOneFreeRect(t *testing.T) {
	t.Parallel()

	m := newMaxRects(100, 50)
	if len(m.free) != 1 {
		t.Fatalf("free list len = %d, want 1", len(m.free))
	}
	if m.free[0] != (freeRect{X: 0, Y: 0, W: 100, H: 50}) {
		t.Errorf("free rect = %+v, want full bin", m.free[0])
	}
}

func TestBestShortSideFitPrefersTighterFit(t *testing.T) {
	t.Parallel()

	m := newMaxRects(100, 100)
	// Carve the bin into a tight 10x10 slot and a loose 50x50 slot.
	m.free = []freeRect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 20, Y: 0, W: 50, H: 50},
	}

	c := m.best(BestShortSideFit, 8, 8, 0, 0, false)
	if !c.ok {
		t.Fatal("expected a fit")
	}
	if c.x != 0 || c.y != 0 {
		t.Errorf("best() picked %+v, want the tighter 10x10 slot", c)
	}
}

func TestPlaceSplitsAndPrunesFreeList(t *testing.T) {
	t.Parallel()

	m := newMaxRects(100, 100)
	c := candidate{x: 0, y: 0, w: 40, h: 40, ok: true}
	m.place(c)

	if len(m.used) != 1 {
		t.Fatalf("used len = %d, want 1", len(m.used))
	}
	for _, fr := range m.free {
		if overlaps(fr, freeRect{X: 0, Y: 0, W: 40, H: 40}) {
			t.Errorf("free rect %+v overlaps placed region", fr)
		}
	}
}

func overlaps(a, b freeRect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func TestContainedIn(t *testing.T) {
	t.Parallel()

	inner := freeRect{X: 2, Y: 2, W: 4, H: 4}
	outer := freeRect{X: 0, Y: 0, W: 10, H: 10}
	if !containedIn(inner, outer) {
		t.Error("expected inner to be contained in outer")
	}
	if containedIn(outer, inner) {
		t.Error("did not expect outer to be contained in inner")
	}
}

func TestCommonInterval(t *testing.T) {
	t.Parallel()

	if got := commonInterval(0, 10, 5, 15); got != 5 {
		t.Errorf("commonInterval overlapping = %d, want 5", got)
	}
	if got := commonInterval(0, 10, 10, 20); got != 0 {
		t.Errorf("commonInterval touching = %d, want 0", got)
	}
	if got := commonInterval(0, 5, 10, 15); got != 0 {
		t.Errorf("commonInterval disjoint = %d, want 0", got)
	}
}

func TestRemoveAt(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3, 4}
	s = removeAt(s, 1)
	want := []int{1, 3, 4}
	if len(s) != len(want) {
		t.Fatalf("len = %d, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %d, want %d", i, s[i], want[i])
		}
	}
}
