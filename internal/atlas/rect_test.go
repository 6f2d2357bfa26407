package atlas

import "testing"

func TestFootprintAddsPadding(t *testing.T) {
	t.Parallel()

	r := &Rect{Width: 10, Height: 20}
	w, h := r.Footprint(2, 4)
	if w != 12 || h != 24 {
		t.Errorf("Footprint() = %d,%d, want 12,24", w, h)
	}
}

func TestRotatedFootprintSwapsPadding(t *testing.T) {
	t.Parallel()

	// A 10x20 rect padded by (2,4) has footprint (12,24). Rotated, it
	// should occupy (24-4+2, 12-2+4) = (22,14).
	w, h := RotatedFootprint(12, 24, 2, 4)
	if w != 22 || h != 14 {
		t.Errorf("RotatedFootprint() = %d,%d, want 22,14", w, h)
	}
}

func TestNamesAndAliases(t *testing.T) {
	t.Parallel()

	r := &Rect{
		Name: "sword",
		Aliases: []*Alias{
			{Name: "sword_alt"},
			{Name: "sword_gold"},
		},
	}
	got := r.NamesAndAliases()
	want := []string{"sword", "sword_alt", "sword_gold"}
	if len(got) != len(want) {
		t.Fatalf("NamesAndAliases() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NamesAndAliases()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
