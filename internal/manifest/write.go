package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

// Write emits the full text manifest for one pack run's pages to path,
// in the legacy or modern dialect per s.LegacyOutput. When append is
// true and the file already exists, existing region names are parsed
// out first and checked for collisions against the new pages before
// anything is written; a collision is fatal.
func Write(path string, pages []*atlas.Page, s *atlas.Settings, appendTo bool) error {
	var existing map[string]bool

	if appendTo {
		if data, err := os.ReadFile(path); err == nil {
			existing = ParseRegionNames(string(data))
		} else if !os.IsNotExist(err) {
			return atlas.IoError(err, "read existing manifest %q", path)
		}
	}

	perPage := make([][]Region, len(pages))
	for i, page := range pages {
		regions := BuildRegions(page, s)
		for _, region := range regions {
			if existing != nil && existing[region.Name] {
				return atlas.NameCollision(region.Name)
			}
		}
		perPage[i] = regions
	}

	var sb strings.Builder
	for i, page := range pages {
		if i > 0 || appendTo {
			sb.WriteString("\n")
		}

		writePageHeader(&sb, page, s)
		for _, region := range perPage[i] {
			writeRegion(&sb, region, s)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return atlas.IoError(err, "open manifest %q", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(sb.String()); err != nil {
		return atlas.IoError(err, "write manifest %q", path)
	}
	return nil
}

func writePageHeader(sb *strings.Builder, page *atlas.Page, s *atlas.Settings) {
	sb.WriteString(page.ImageName)
	sb.WriteString("\n")

	pixelFormat := "RGBA8888"
	if s.OutputFormat == "jpg" {
		pixelFormat = "RGB888"
	}

	if s.LegacyOutput {
		writeField(sb, "size", fmt.Sprintf("%d,%d", page.ImageWidth, page.ImageHeight))
		writeField(sb, "format", pixelFormat)
		writeField(sb, "filter", "Nearest,Nearest")
		writeField(sb, "repeat", "none")
		return
	}

	writeField(sb, "size", fmt.Sprintf("%d,%d", page.ImageWidth, page.ImageHeight))
	if pixelFormat != "RGBA8888" {
		writeField(sb, "format", pixelFormat)
	}
	if s.PremultiplyAlpha {
		writeField(sb, "pma", "true")
	}
}

func writeRegion(sb *strings.Builder, r Region, s *atlas.Settings) {
	sb.WriteString(r.Name)
	sb.WriteString("\n")

	if s.LegacyOutput {
		writeField(sb, "rotate", boolWord(r.Rotated))
		writeField(sb, "xy", fmt.Sprintf("%d, %d", r.X, r.Y))
		writeField(sb, "size", fmt.Sprintf("%d, %d", r.W, r.H))
		writeField(sb, "split", fourOrZero(r.Splits))
		writeField(sb, "pad", fourOrZero(r.Pads))
		writeField(sb, "orig", fmt.Sprintf("%d, %d", r.OrigW, r.OrigH))
		writeField(sb, "offset", fmt.Sprintf("%d, %d", r.OffsetX, r.OffsetY))
		writeField(sb, "index", fmt.Sprintf("%d", r.Index))
		repeat := r.Repeat
		if repeat == "" {
			repeat = "none"
		}
		writeField(sb, "repeat", repeat)
		return
	}

	if r.Index != -1 {
		writeField(sb, "index", fmt.Sprintf("%d", r.Index))
	}
	writeField(sb, "bounds", fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H))
	if r.OffsetX != 0 || r.OffsetY != 0 || r.OrigW != r.W || r.OrigH != r.H {
		writeField(sb, "offsets", fmt.Sprintf("%d,%d,%d,%d", r.OffsetX, r.OffsetY, r.OrigW, r.OrigH))
	}
	if r.Rotated {
		writeField(sb, "rotate", "true")
	}
	if r.Pads != nil && r.Splits == nil {
		writeField(sb, "split", "0,0,0,0")
	}
	if r.Splits != nil {
		writeField(sb, "split", fourCSV(*r.Splits))
	}
	if r.Pads != nil {
		writeField(sb, "pad", fourCSV(*r.Pads))
	}
	if r.Repeat != "" {
		writeField(sb, "repeat", r.Repeat)
	}
}

func writeField(sb *strings.Builder, key, value string) {
	sb.WriteString("  ")
	sb.WriteString(key)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func fourOrZero(v *[4]int) string {
	if v == nil {
		return "0, 0, 0, 0"
	}
	return fmt.Sprintf("%d, %d, %d, %d", v[0], v[1], v[2], v[3])
}

func fourCSV(v [4]int) string {
	return fmt.Sprintf("%d,%d,%d,%d", v[0], v[1], v[2], v[3])
}
