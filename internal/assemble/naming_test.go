package assemble

import "testing"

func TestAssignNamesSinglePage(t *testing.T) {
	t.Parallel()

	names := AssignNames("ui", "png", 1, nil)
	if len(names) != 1 || names[0] != "ui.png" {
		t.Errorf("AssignNames() = %v, want [ui.png]", names)
	}
}

func TestAssignNamesMultiPage(t *testing.T) {
	t.Parallel()

	// "ui" doesn't end in a digit, so the page-index suffix needs no
	// separator to stay unambiguous.
	names := AssignNames("ui", "png", 3, nil)
	want := []string{"ui1.png", "ui2.png", "ui3.png"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("names[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestAssignNamesMultiPageDashesWhenBaseEndsInDigit(t *testing.T) {
	t.Parallel()

	// "char2" ends in a digit, so the page-index suffix is dash-separated.
	names := AssignNames("char2", "png", 2, nil)
	want := []string{"char2-1.png", "char2-2.png"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("names[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestAssignNamesAvoidsCollisions(t *testing.T) {
	t.Parallel()

	claimed := map[string]bool{"ui.png": true, "ui2.png": true}
	exists := func(n string) bool { return claimed[n] }

	names := AssignNames("ui", "png", 1, exists)
	// ui.png and ui2.png are both claimed, so the first free name is ui3.png.
	if names[0] != "ui3.png" {
		t.Errorf("AssignNames() = %v, want ui3.png", names)
	}
}

func TestAssignNamesDashesCollisionWhenStemEndsInDigit(t *testing.T) {
	t.Parallel()

	claimed := map[string]bool{"char2.png": true, "char2-2.png": true}
	exists := func(n string) bool { return claimed[n] }

	names := AssignNames("char2", "png", 1, exists)
	// "char2" ends in a digit, so the collision suffix is dash-separated.
	if names[0] != "char2-3.png" {
		t.Errorf("AssignNames() = %v, want char2-3.png", names)
	}
}
