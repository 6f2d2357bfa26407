package assemble

import (
	"image"
	"testing"
)

func TestNoopBleedDoesNothing(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := (NoopBleed{}).Bleed(img, 3); err != nil {
		t.Fatalf("NoopBleed.Bleed: %v", err)
	}
}
