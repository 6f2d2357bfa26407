package packer

import "testing"

func TestQuantizeUpPowerOfTwo(t *testing.T) {
	t.Parallel()

	cases := map[int]int{1: 1, 2: 2, 3: 4, 63: 64, 64: 64, 65: 128}
	for in, want := range cases {
		if got := quantizeUp(in, true, false); got != want {
			t.Errorf("quantizeUp(%d, pot) = %d, want %d", in, got, want)
		}
	}
}

func TestQuantizeUpMultipleOfFour(t *testing.T) {
	t.Parallel()

	cases := map[int]int{1: 4, 4: 4, 5: 8, 8: 8, 9: 12}
	for in, want := range cases {
		if got := quantizeUp(in, false, true); got != want {
			t.Errorf("quantizeUp(%d, mod4) = %d, want %d", in, got, want)
		}
	}
}

func TestQuantizeUpNoConstraint(t *testing.T) {
	t.Parallel()

	if got := quantizeUp(17, false, false); got != 17 {
		t.Errorf("quantizeUp(17) = %d, want 17", got)
	}
	if got := quantizeUp(0, false, false); got != 1 {
		t.Errorf("quantizeUp(0) = %d, want 1 (floor)", got)
	}
}

func TestCandidateSizesPowerOfTwoAscendingAndDeduped(t *testing.T) {
	t.Parallel()

	sizes := candidateSizes(16, 256, 8, true, false)
	want := []int{16, 32, 64, 128, 256}
	if len(sizes) != len(want) {
		t.Fatalf("candidateSizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("candidateSizes[%d] = %d, want %d", i, sizes[i], want[i])
		}
	}
}

func TestCandidateSizesBoundedSteps(t *testing.T) {
	t.Parallel()

	sizes := candidateSizes(10, 10000, 8, false, false)
	if len(sizes) > 8 {
		t.Errorf("candidateSizes produced %d entries, want <= 8", len(sizes))
	}
	if sizes[0] != 10 {
		t.Errorf("first candidate = %d, want min 10", sizes[0])
	}
	if sizes[len(sizes)-1] != 10000 {
		t.Errorf("last candidate = %d, want max 10000", sizes[len(sizes)-1])
	}
}

func TestCandidateSizesMinEqualsMax(t *testing.T) {
	t.Parallel()

	sizes := candidateSizes(32, 32, 8, true, false)
	if len(sizes) != 1 || sizes[0] != 32 {
		t.Errorf("candidateSizes = %v, want [32]", sizes)
	}
}

func TestCandidateSizesMinAboveMaxReturnsNil(t *testing.T) {
	t.Parallel()

	sizes := candidateSizes(500, 100, 8, true, false)
	if sizes != nil {
		t.Errorf("candidateSizes = %v, want nil", sizes)
	}
}
