package manifest

import "testing"

func TestParseRegionNamesSinglePage(t *testing.T) {
	t.Parallel()

	text := "atlas-1.png\n  size: 4,4\nsprite.png\n  bounds: 0,0,4,4\n"
	names := ParseRegionNames(text)

	if names["atlas-1.png"] {
		t.Error("page header line should not be treated as a region name")
	}
	if !names["sprite.png"] {
		t.Error("expected sprite.png to be recognized as a region name")
	}
}

func TestParseRegionNamesMultiPage(t *testing.T) {
	t.Parallel()

	text := "atlas-1.png\n  size: 4,4\nsprite.png\n  bounds: 0,0,4,4\n\natlas-2.png\n  size: 4,4\nother.png\n  bounds: 0,0,4,4\n"
	names := ParseRegionNames(text)

	if names["atlas-1.png"] || names["atlas-2.png"] {
		t.Error("page headers should not be treated as region names")
	}
	if !names["sprite.png"] || !names["other.png"] {
		t.Errorf("expected both region names present, got %v", names)
	}
}

func TestParseRegionNamesEmptyText(t *testing.T) {
	t.Parallel()

	names := ParseRegionNames("")
	if len(names) != 0 {
		t.Errorf("expected no names for empty text, got %v", names)
	}
}
