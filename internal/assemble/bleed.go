package assemble

import "image"

// Bleed is the colour-bleed post-processor collaborator, deliberately
// out of core scope: image decoding, whitespace stripping, and
// colour-bleed post-processing are left to external collaborators. The
// assembler only defines and calls this capability; it never
// implements the infill algorithm itself.
type Bleed interface {
	Bleed(img *image.RGBA, iterations int) error
}

// NoopBleed performs no post-processing. It is the default whenever a
// caller has no bleed collaborator to offer, matching Settings.Bleed
// being off by default.
type NoopBleed struct{}

// Bleed does nothing.
func (NoopBleed) Bleed(*image.RGBA, int) error { return nil }
