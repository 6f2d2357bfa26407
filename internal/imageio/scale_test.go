package imageio

import "testing"

func TestScaleResizesDimensions(t *testing.T) {
	t.Parallel()

	src := sampleImage(100, 50)
	out := Scale(src, 0.5, "bilinear")
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 25 {
		t.Errorf("Scale(0.5) size = %v, want 50x25", out.Bounds())
	}
}

func TestScaleNeverProducesZeroDimension(t *testing.T) {
	t.Parallel()

	src := sampleImage(2, 2)
	out := Scale(src, 0.01, "nearest")
	if out.Bounds().Dx() < 1 || out.Bounds().Dy() < 1 {
		t.Errorf("Scale produced degenerate size %v", out.Bounds())
	}
}

func TestScalerDispatch(t *testing.T) {
	t.Parallel()

	if scaler("nearest") == nil {
		t.Error("expected a non-nil nearest scaler")
	}
	if scaler("bicubic") == nil {
		t.Error("expected a non-nil bicubic scaler")
	}
	if scaler("unknown") == nil {
		t.Error("expected a fallback scaler for unknown kernels")
	}
}
