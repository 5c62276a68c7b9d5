package mathutil

import "math"

// ApproxRatio approximates a positive finite x as a fraction numer/denom
// with denom ≤ maxDenom, using continued fraction expansion.
//
// The phase accumulator of a streaming converter advances by an exact
// integer step per output sample, so the fraction fully determines the
// output: the same x always yields the same fraction and therefore
// bit-identical streams.
//
// The expansion stops once the relative error drops below 1e-12 or the next
// convergent would exceed maxDenom. For typical audio rate pairs the exact
// fraction is found in a few steps (48000/44100 → 160/147).
func ApproxRatio(x float64, maxDenom int64) (numer, denom int64) {
	// Convergents h/k of the continued fraction of x.
	var (
		h0, h1 int64 = 1, int64(math.Floor(x))
		k0, k1 int64 = 0, 1
	)
	frac := x - math.Floor(x)

	for frac > 0 {
		if math.Abs(float64(h1)/float64(k1)-x) <= ratioApproxTolerance*x {
			break
		}
		frac = 1.0 / frac
		if frac > float64(maxDenom) {
			break
		}
		a := int64(math.Floor(frac))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenom || k2 < 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac -= math.Floor(frac)
	}

	if h1 < 1 {
		h1 = 1 // x < 1/maxDenom rounds to the smallest representable step
	}
	return h1, k1
}
