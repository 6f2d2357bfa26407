package atlas

import (
	"encoding/json"
	"os"

	"github.com/creasty/defaults"
)

// Settings is the immutable configuration record for a pack run.
// Field names and defaults mirror the per-directory JSON config file;
// `default` tags supply the values creasty/defaults applies before a
// config file's own values override them.
type Settings struct {
	PaddingX int `json:"padding_x" default:"2"`
	PaddingY int `json:"padding_y" default:"2"`

	EdgePadding      bool `json:"edge_padding" default:"true"`
	DuplicatePadding bool `json:"duplicate_padding" default:"false"`

	MinWidth  int `json:"min_width" default:"16"`
	MinHeight int `json:"min_height" default:"16"`
	MaxWidth  int `json:"max_width" default:"4096"`
	MaxHeight int `json:"max_height" default:"4096"`

	PowerOfTwo     bool `json:"power_of_two" default:"true"`
	MultipleOfFour bool `json:"multiple_of_four" default:"false"`
	Square         bool `json:"square" default:"false"`

	Rotation bool `json:"rotation" default:"true"`
	Fast     bool `json:"fast" default:"false"`
	Grid     bool `json:"grid" default:"false"`

	Bleed           bool `json:"bleed" default:"false"`
	BleedIterations int  `json:"bleed_iterations" default:"2"`

	PremultiplyAlpha bool `json:"premultiply_alpha" default:"false"`

	OutputFormat string  `json:"output_format" default:"png"`
	JPEGQuality  float64 `json:"jpeg_quality" default:"0.9"`

	FlattenPaths bool `json:"flatten_paths" default:"false"`
	LegacyOutput bool `json:"legacy_output" default:"false"`
	PrettyPrint  bool `json:"pretty_print" default:"true"`

	Scale           []float64 `json:"scale"`
	ScaleSuffix     []string  `json:"scale_suffix"`
	ScaleResampling []string  `json:"scale_resampling"`

	AtlasExtension string `json:"atlas_extension" default:"atlas"`
}

// DefaultSettings returns a Settings populated entirely from its
// `default` struct tags via creasty/defaults.
func DefaultSettings() (*Settings, error) {
	s := &Settings{}
	if err := defaults.Set(s); err != nil {
		return nil, IoError(err, "apply default settings")
	}
	return s, nil
}

// LoadSettings reads a per-directory JSON settings file, applying
// defaults first so a config that only overrides a handful of keys
// still gets sane values for the rest.
func LoadSettings(path string) (*Settings, error) {
	s, err := DefaultSettings()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, IoError(err, "read settings file %q", path)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, IoError(err, "parse settings file %q", path)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the construction-time invariants and returns a
// KindConfigInvalid error naming the first violation found.
func (s *Settings) Validate() error {
	if s.PaddingX < 0 || s.PaddingY < 0 {
		return ConfigInvalid("padding must be >= 0 (got %d, %d)", s.PaddingX, s.PaddingY)
	}
	if s.MinWidth < 1 || s.MinHeight < 1 || s.MaxWidth < 1 || s.MaxHeight < 1 {
		return ConfigInvalid("min/max dimensions must be >= 1")
	}
	if s.MinWidth > s.MaxWidth || s.MinHeight > s.MaxHeight {
		return ConfigInvalid("min dimensions (%dx%d) must be <= max dimensions (%dx%d)",
			s.MinWidth, s.MinHeight, s.MaxWidth, s.MaxHeight)
	}
	if s.PowerOfTwo && (!isPowerOfTwo(s.MaxWidth) || !isPowerOfTwo(s.MaxHeight)) {
		return ConfigInvalid("power_of_two requires max_width/max_height to be powers of two (got %dx%d)",
			s.MaxWidth, s.MaxHeight)
	}
	if s.MultipleOfFour && (s.MaxWidth%4 != 0 || s.MaxHeight%4 != 0) {
		return ConfigInvalid("multiple_of_four requires max_width/max_height %% 4 == 0 (got %dx%d)",
			s.MaxWidth, s.MaxHeight)
	}
	if s.JPEGQuality < 0 || s.JPEGQuality > 1 {
		return ConfigInvalid("jpeg_quality must be in [0,1] (got %v)", s.JPEGQuality)
	}
	if s.OutputFormat != "png" && s.OutputFormat != "jpg" {
		return ConfigInvalid("output_format must be png or jpg (got %q)", s.OutputFormat)
	}
	if len(s.ScaleSuffix) != 0 && len(s.ScaleSuffix) != len(s.Scale) {
		return ConfigInvalid("scale_suffix must have one entry per scale entry")
	}
	if len(s.ScaleResampling) != 0 && len(s.ScaleResampling) != len(s.Scale) {
		return ConfigInvalid("scale_resampling must have one entry per scale entry")
	}
	return nil
}

// EdgePad returns the per-axis edge-padding amount used by the
// assembler: the full padding normally, half when duplicate padding is
// also requested (the duplicated band already doubles as the outer
// margin).
func (s *Settings) EdgePad() (x, y int) {
	if !s.EdgePadding {
		return 0, 0
	}
	if s.DuplicatePadding {
		return s.PaddingX / 2, s.PaddingY / 2
	}
	return s.PaddingX, s.PaddingY
}

// AdjustedMax returns the max page dimensions a packer should pack
// into, after subtracting the edge-padding margin the assembler will
// add back around the outside.
func (s *Settings) AdjustedMax() (w, h int) {
	padX, padY := s.EdgePad()
	return s.MaxWidth - 2*padX, s.MaxHeight - 2*padY
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }
