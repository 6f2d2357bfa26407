package manifest

import (
	"strconv"
	"strings"

	"github.com/woozymasta/atlaspack/internal/atlas"
)

// ParseRegionNames extracts every region name already present in a
// manifest's text, for the append-collision check. A blank line
// always precedes a page header (Write emits one before every page
// but the first); any other unindented line is a region name.
func ParseRegionNames(text string) map[string]bool {
	names := make(map[string]bool)
	lines := strings.Split(text, "\n")

	prevBlank := true // the start of the file counts as a header boundary
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			prevBlank = true
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			prevBlank = false
			continue
		}
		if prevBlank {
			prevBlank = false
			continue // page header
		}
		names[line] = true
	}

	return names
}

// Parse reconstructs full placement data (bounds, splits, pads,
// offsets, rotate, index, repeat) from a manifest previously emitted by
// Write, in either dialect. It follows the same header/region line
// detection as ParseRegionNames, but additionally collects each
// region's indented field lines and decodes them.
func Parse(text string) ([]Region, error) {
	lines := strings.Split(text, "\n")

	var regions []Region
	var name string
	var fields map[string]string
	inRegion := false

	flush := func() error {
		if !inRegion {
			return nil
		}
		r, err := regionFromFields(name, fields)
		if err != nil {
			return err
		}
		regions = append(regions, r)
		inRegion = false
		return nil
	}

	prevBlank := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			prevBlank = true
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			prevBlank = false
			if inRegion {
				if key, value, ok := splitField(line); ok {
					fields[key] = value
				}
			}
			continue
		}
		if prevBlank {
			prevBlank = false
			if err := flush(); err != nil {
				return nil, err
			}
			continue // page header line
		}
		if err := flush(); err != nil {
			return nil, err
		}
		name = line
		fields = make(map[string]string)
		inRegion = true
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return regions, nil
}

func splitField(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	key, value, ok = strings.Cut(trimmed, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

func regionFromFields(name string, fields map[string]string) (Region, error) {
	r := Region{Name: name, Index: -1}

	index, hasIndex := fields["index"]
	if hasIndex {
		n, err := strconv.Atoi(index)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse index field for region %q", name)
		}
		r.Index = n
	}

	if bounds, ok := fields["bounds"]; ok {
		// Modern dialect: a single 4-tuple x,y,w,h.
		vals, err := parseInts(bounds, 4)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse bounds field for region %q", name)
		}
		r.X, r.Y, r.W, r.H = vals[0], vals[1], vals[2], vals[3]

		r.OffsetX, r.OffsetY, r.OrigW, r.OrigH = 0, 0, r.W, r.H
		if offsets, ok := fields["offsets"]; ok {
			vals, err := parseInts(offsets, 4)
			if err != nil {
				return Region{}, atlas.IoError(err, "parse offsets field for region %q", name)
			}
			r.OffsetX, r.OffsetY, r.OrigW, r.OrigH = vals[0], vals[1], vals[2], vals[3]
		}

		r.Rotated = fields["rotate"] == "true"

		if splits, ok := fields["split"]; ok {
			vals, err := parseInts(splits, 4)
			if err != nil {
				return Region{}, atlas.IoError(err, "parse split field for region %q", name)
			}
			// Write emits an all-zero split alongside a real pad when
			// only pad was set, so a zero split here means "absent"
			// rather than a genuine {0,0,0,0} split rectangle.
			if !allZero(vals) {
				r.Splits = &[4]int{vals[0], vals[1], vals[2], vals[3]}
			}
		}
		if pads, ok := fields["pad"]; ok {
			vals, err := parseInts(pads, 4)
			if err != nil {
				return Region{}, atlas.IoError(err, "parse pad field for region %q", name)
			}
			r.Pads = &[4]int{vals[0], vals[1], vals[2], vals[3]}
		}
		r.Repeat = fields["repeat"]
		return r, nil
	}

	// Legacy dialect: every field is always present, one xy/size pair
	// in place of bounds, and split/pad/orig/offset/repeat stand alone.
	r.Rotated = fields["rotate"] == "true"

	if xy, ok := fields["xy"]; ok {
		vals, err := parseInts(xy, 2)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse xy field for region %q", name)
		}
		r.X, r.Y = vals[0], vals[1]
	}
	if size, ok := fields["size"]; ok {
		vals, err := parseInts(size, 2)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse size field for region %q", name)
		}
		r.W, r.H = vals[0], vals[1]
	}
	if split, ok := fields["split"]; ok {
		vals, err := parseInts(split, 4)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse split field for region %q", name)
		}
		if !allZero(vals) {
			r.Splits = &[4]int{vals[0], vals[1], vals[2], vals[3]}
		}
	}
	if pad, ok := fields["pad"]; ok {
		vals, err := parseInts(pad, 4)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse pad field for region %q", name)
		}
		if !allZero(vals) {
			r.Pads = &[4]int{vals[0], vals[1], vals[2], vals[3]}
		}
	}
	if orig, ok := fields["orig"]; ok {
		vals, err := parseInts(orig, 2)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse orig field for region %q", name)
		}
		r.OrigW, r.OrigH = vals[0], vals[1]
	}
	if offset, ok := fields["offset"]; ok {
		vals, err := parseInts(offset, 2)
		if err != nil {
			return Region{}, atlas.IoError(err, "parse offset field for region %q", name)
		}
		r.OffsetX, r.OffsetY = vals[0], vals[1]
	}
	if repeat, ok := fields["repeat"]; ok && repeat != "none" {
		r.Repeat = repeat
	}

	return r, nil
}

func parseInts(s string, want int) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	if len(out) != want {
		return nil, strconv.ErrSyntax
	}
	return out, nil
}

func allZero(vals []int) bool {
	for _, v := range vals {
		if v != 0 {
			return false
		}
	}
	return true
}
