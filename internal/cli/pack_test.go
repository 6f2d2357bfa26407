package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

func TestPackScalesDefaultsToIdentityWhenUnset(t *testing.T) {
	t.Parallel()

	s, err := atlas.DefaultSettings()
	if err != nil {
		t.Fatal(err)
	}
	scales, suffixes, resamplings := packScales(s)
	if len(scales) != 1 || scales[0] != 1 {
		t.Errorf("scales = %v, want [1]", scales)
	}
	if len(suffixes) != 1 || suffixes[0] != "" {
		t.Errorf("suffixes = %v, want ['']", suffixes)
	}
	if len(resamplings) != 1 || resamplings[0] != "" {
		t.Errorf("resamplings = %v, want ['']", resamplings)
	}
}

func TestPackScalesUsesConfiguredScalesAndFillsMissingSuffixes(t *testing.T) {
	t.Parallel()

	s, err := atlas.DefaultSettings()
	if err != nil {
		t.Fatal(err)
	}
	s.Scale = []float64{1, 0.5}

	scales, suffixes, resamplings := packScales(s)
	if len(scales) != 2 || scales[1] != 0.5 {
		t.Errorf("scales = %v, want [1, 0.5]", scales)
	}
	if len(suffixes) != 2 || suffixes[0] != "" || suffixes[1] != "" {
		t.Errorf("suffixes should default to empty strings, got %v", suffixes)
	}
	if len(resamplings) != 2 {
		t.Errorf("resamplings = %v, want length 2", resamplings)
	}
}

func TestPackScalesPreservesConfiguredSuffixes(t *testing.T) {
	t.Parallel()

	s, err := atlas.DefaultSettings()
	if err != nil {
		t.Fatal(err)
	}
	s.Scale = []float64{1, 0.5}
	s.ScaleSuffix = []string{"", "@0.5x"}

	_, suffixes, _ := packScales(s)
	if suffixes[1] != "@0.5x" {
		t.Errorf("suffixes[1] = %q, want @0.5x", suffixes[1])
	}
}

func TestLoadPackSettingsFallsBackToDefaultsWithNoConfig(t *testing.T) {
	t.Parallel()

	opts := &CmdPack{}
	opts.Args.Input = t.TempDir()

	s, err := loadPackSettings(opts)
	if err != nil {
		t.Fatalf("loadPackSettings: %v", err)
	}
	if s.MaxWidth != 4096 {
		t.Errorf("MaxWidth = %d, want default 4096", s.MaxWidth)
	}
}

func TestLoadPackSettingsReadsPerDirectoryConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".atlaspack.json")
	if err := os.WriteFile(cfgPath, []byte(`{"max_width": 2048, "max_height": 2048}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &CmdPack{}
	opts.Args.Input = dir

	s, err := loadPackSettings(opts)
	if err != nil {
		t.Fatalf("loadPackSettings: %v", err)
	}
	if s.MaxWidth != 2048 {
		t.Errorf("MaxWidth = %d, want 2048 from config file", s.MaxWidth)
	}
}

func TestLoadPackSettingsPrefersExplicitConfigOverDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	explicitPath := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(explicitPath, []byte(`{"max_width": 1024, "max_height": 1024}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &CmdPack{Config: explicitPath}
	opts.Args.Input = dir

	s, err := loadPackSettings(opts)
	if err != nil {
		t.Fatalf("loadPackSettings: %v", err)
	}
	if s.MaxWidth != 1024 {
		t.Errorf("MaxWidth = %d, want 1024 from explicit config", s.MaxWidth)
	}
}
