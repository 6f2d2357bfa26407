package packer

import "github.com/woozymasta/atlaspack/internal/atlas"

// PackGrid packs rects into uniform cells, preserving input order
// across however many pages are needed. Rotation is never applied;
// rect.Rotated stays false throughout.
func PackGrid(s *atlas.Settings, rects []*atlas.Rect) ([]*atlas.Page, error) {
	if len(rects) == 0 {
		return nil, nil
	}

	cellW, cellH := 0, 0
	for _, r := range rects {
		if w := r.Width + s.PaddingX; w > cellW {
			cellW = w
		}
		if h := r.Height + s.PaddingY; h > cellH {
			cellH = h
		}
	}

	maxW, maxH := s.AdjustedMax()

	// Reverse so popping from the tail yields original order.
	remaining := make([]*atlas.Rect, len(rects))
	copy(remaining, rects)
	for i, j := 0, len(remaining)-1; i < j; i, j = i+1, j-1 {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	}

	var pages []*atlas.Page

	for len(remaining) > 0 {
		x, y := 0, 0
		contentW, contentH := 0, 0
		var placed []*atlas.Rect

		for len(remaining) > 0 {
			r := remaining[len(remaining)-1]

			if x+cellW > maxW {
				x = 0
				y += cellH
			}
			if y > maxH-cellH {
				break
			}

			r.X, r.Y = x, y
			r.Width += s.PaddingX
			r.Height += s.PaddingY
			r.Rotated = false
			placed = append(placed, r)

			if x+cellW > contentW {
				contentW = x + cellW
			}
			if y+cellH > contentH {
				contentH = y + cellH
			}

			remaining = remaining[:len(remaining)-1]
			x += cellW
		}

		if len(placed) == 0 {
			// The single rect at the tail doesn't fit even on an empty
			// page (bigger than one cell on an otherwise-empty grid);
			// give it the whole page to itself and move on.
			r := remaining[len(remaining)-1]
			r.X, r.Y = 0, 0
			r.Width += s.PaddingX
			r.Height += s.PaddingY
			r.Rotated = false
			placed = append(placed, r)
			contentW, contentH = r.Width, r.Height
			remaining = remaining[:len(remaining)-1]
		}

		page := &atlas.Page{Width: contentW, Height: contentH, OutputRects: placed}
		flipY(page)
		page.ComputeOccupancy()
		page.Width -= s.PaddingX
		page.Height -= s.PaddingY
		pages = append(pages, page)
	}

	return pages, nil
}

// flipY re-origins every placed rect so rows start at the top of the
// page: rect.Y becomes page.Height - rect.Y - rect.Height.
func flipY(page *atlas.Page) {
	for _, r := range page.OutputRects {
		r.Y = page.Height - r.Y - r.Height
	}
}
