package packer

import "math"

// quantizeUp rounds v up to the smallest value >= v that satisfies the
// requested constraints. Encoding POT/mod4 as a generator over
// candidate integers (rather than a post-filter on arbitrary
// midpoints) keeps the binary search monotone and avoids infinite
// loops at the boundary.
func quantizeUp(v int, pot, mod4 bool) int {
	if v < 1 {
		v = 1
	}
	if pot {
		p := 1
		for p < v {
			p <<= 1
		}
		return p
	}
	if mod4 {
		if v%4 != 0 {
			v += 4 - v%4
		}
		return v
	}
	return v
}

// nextCandidate returns the smallest quantised value strictly greater
// than v, used to step a search axis forward by one unit in its
// quantised space.
func nextCandidate(v int, pot, mod4 bool) int {
	if pot {
		return quantizeUp(v+1, true, false)
	}
	if mod4 {
		return quantizeUp(v+1, false, true)
	}
	return v + 1
}

// candidateSizes builds an ascending, deduplicated list of quantised
// sizes between min and max, stepping geometrically so a single axis
// never needs more than `steps` probes regardless of how wide the
// [min,max] range is.
func candidateSizes(minV, maxV, steps int, pot, mod4 bool) []int {
	minV = quantizeUp(minV, pot, mod4)
	maxV = quantizeUp(maxV, pot, mod4)
	if minV > maxV {
		return nil
	}

	if pot {
		var out []int
		for v := minV; v <= maxV; v <<= 1 {
			out = append(out, v)
		}
		return out
	}

	out := []int{minV}
	if minV == maxV {
		return out
	}

	ratio := float64(maxV) / float64(minV)
	for i := 1; i < steps; i++ {
		frac := float64(i) / float64(steps-1)
		// geometric interpolation between minV and maxV
		v := int(float64(minV) * math.Pow(ratio, frac))
		v = quantizeUp(v, pot, mod4)
		if v > maxV {
			v = maxV
		}
		if v > out[len(out)-1] {
			out = append(out, v)
		}
	}
	if out[len(out)-1] != maxV {
		out = append(out, maxV)
	}
	return out
}
