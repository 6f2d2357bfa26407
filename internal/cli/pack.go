package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/atlaspack/internal/assemble"
	"github.com/woozymasta/atlaspack/internal/atlas"
	"github.com/woozymasta/atlaspack/internal/imageio"
	"github.com/woozymasta/atlaspack/internal/manifest"
	"github.com/woozymasta/atlaspack/internal/packer"
)

// CmdPack packs a directory of images into one or more atlas pages
// plus a manifest.
type CmdPack struct {
	Name   string `short:"n" long:"name" description:"Atlas name (default: input directory name)" yaml:"name"`
	Config string `short:"c" long:"config" description:"Path to a settings JSON file (default: <input>/.atlaspack.json if present)" yaml:"config"`
	Force  bool   `short:"f" long:"force" description:"Overwrite an existing atlas file" yaml:"force"`
	Skip   bool   `short:"u" long:"skip-unchanged" description:"Skip writing when no input is newer than the atlas file" yaml:"skip_unchanged"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Input directory with images" required:"yes" yaml:"input_dir"`
		Output string `positional-arg-name:"output" description:"Output directory (default: input directory)" yaml:"output_dir"`
	} `positional-args:"yes" required:"yes" yaml:"args"`
}

// Execute runs the pack command.
func (c *CmdPack) Execute(args []string) error {
	return runPack(c)
}

func runPack(opts *CmdPack) error {
	outputDir := opts.Args.Output
	if outputDir == "" {
		outputDir = opts.Args.Input
	}

	settings, err := loadPackSettings(opts)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		absInput, err := filepath.Abs(opts.Args.Input)
		if err != nil {
			return fmt.Errorf("resolve absolute input path: %w", err)
		}
		name = filepath.Base(absInput)
	}

	atlasPath := filepath.Join(outputDir, name+"."+settings.AtlasExtension)

	if opts.Skip {
		skip, err := shouldSkipPack(opts.Args.Input, atlasPath)
		if err != nil {
			return err
		}
		if skip {
			fmt.Printf("Inputs unchanged; skipping %s\n", atlasPath)
			return nil
		}
	}

	if !opts.Force {
		if _, err := os.Stat(atlasPath); err == nil {
			return fmt.Errorf("output file %q already exists (use --force)", atlasPath)
		}
	}

	rects, err := discoverRects(opts.Args.Input)
	if err != nil {
		return err
	}
	if len(rects) == 0 {
		return fmt.Errorf("no input images found in %q", opts.Args.Input)
	}
	if dupes := packer.DuplicateNames(rects); len(dupes) > 0 {
		return atlas.NameCollision(dupes[0])
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	scales, suffixes, resamplings := packScales(settings)

	for i, factor := range scales {
		scaleName := name + suffixes[i]
		var scaleRectsList []*atlas.Rect
		if factor != 1 {
			scaleRectsList = scaleRects(rects, factor, resamplings[i])
		} else {
			// Packing resizes and places rects in place, so each pass
			// works on copies and later scales start from discovered sizes.
			scaleRectsList = make([]*atlas.Rect, len(rects))
			for j, r := range rects {
				cp := *r
				scaleRectsList[j] = &cp
			}
		}

		pages, err := packPages(settings, scaleRectsList)
		if err != nil {
			if errors.Is(err, atlas.Cancelled) {
				continue
			}
			return err
		}

		if err := writeAtlas(outputDir, scaleName, settings, pages); err != nil {
			return err
		}

		fmt.Printf("Packed %d images from %s as %s into %d page(s)\n", len(scaleRectsList), opts.Args.Input, scaleName, len(pages))
	}

	return nil
}

func loadPackSettings(opts *CmdPack) (*atlas.Settings, error) {
	if opts.Config != "" {
		return atlas.LoadSettings(opts.Config)
	}

	defaultPath := filepath.Join(opts.Args.Input, ".atlaspack.json")
	if _, err := os.Stat(defaultPath); err == nil {
		return atlas.LoadSettings(defaultPath)
	}

	return atlas.DefaultSettings()
}

func packPages(settings *atlas.Settings, rects []*atlas.Rect) ([]*atlas.Page, error) {
	if settings.Grid {
		return packer.PackGrid(settings, rects)
	}
	return packer.FindPages(settings, rects, atlas.NoopProgress{})
}

func packScales(settings *atlas.Settings) (scales []float64, suffixes, resamplings []string) {
	if len(settings.Scale) == 0 {
		return []float64{1}, []string{""}, []string{""}
	}

	scales = settings.Scale
	suffixes = settings.ScaleSuffix
	resamplings = settings.ScaleResampling
	if len(suffixes) == 0 {
		suffixes = make([]string, len(scales))
	}
	if len(resamplings) == 0 {
		resamplings = make([]string, len(scales))
	}
	return scales, suffixes, resamplings
}

func writeAtlas(outputDir, name string, settings *atlas.Settings, pages []*atlas.Page) error {
	exists := func(n string) bool {
		_, err := os.Stat(filepath.Join(outputDir, n))
		return err == nil
	}
	names := assemble.AssignNames(name, settings.OutputFormat, len(pages), exists)

	for i, page := range pages {
		page.ImageName = names[i]

		canvas, err := assemble.Assemble(settings, page, assemble.NoopBleed{})
		if err != nil {
			return err
		}

		imgPath := filepath.Join(outputDir, page.ImageName)
		if err := imageio.Write(imgPath, settings.OutputFormat, canvas, settings.JPEGQuality); err != nil {
			return atlas.IoError(err, "write page image %q", imgPath)
		}
	}

	manifestPath := filepath.Join(outputDir, name+"."+settings.AtlasExtension)
	return manifest.Write(manifestPath, pages, settings, false)
}
