package mathutil

import "math"

// KaiserBeta computes the Kaiser window β parameter from the desired
// stopband attenuation in decibels.
//
// The β parameter controls the trade-off between main lobe width and
// sidelobe level in the Kaiser window.
//
// Formula from Kaiser & Schafer:
//   - For att > 50 dB: β = 0.1102 * (att - 8.7)
//   - For 21 dB ≤ att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - For att < 21 dB: β = 0 (rectangular window)
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}

// KaiserOrder estimates the FIR filter order required for the given stopband
// attenuation and transition bandwidth.
//
// Based on Kaiser's formula:
//
//	M ≈ (att - 8) / (2.285 * Δω)
//
// where Δω = π * transWidth * min(ratio, 1). The min(ratio, 1) factor
// accounts for the cutoff being scaled down when downsampling: the same
// fractional transition band then occupies a narrower absolute band, which
// demands a proportionally longer filter.
//
// Parameters:
//
//	attenuation: Desired stopband attenuation in dB
//	transWidth: Transition band width as a fraction of the passband (0-1)
//	ratio: Conversion ratio (output rate / input rate)
//
// Returns:
//
//	Estimated filter order, rounded up to an even number and clamped to
//	[2, 8190] so there is always at least one tap on each side of center.
func KaiserOrder(attenuation, transWidth, ratio float64) int {
	deltaOmega := kaiserOrderMultiplier * transWidth * math.Pi * math.Min(ratio, 1.0)
	order := int(math.Ceil((attenuation - kaiserOrderOffset) / deltaOmega))

	if order%2 != 0 {
		order++
	}
	if order < minFilterOrder {
		order = minFilterOrder
	}
	if order > maxFilterOrder {
		order = maxFilterOrder
	}
	return order
}

// KaiserOrderAttenuation is the inverse of KaiserOrder: it estimates the
// stopband attenuation a filter of the given order achieves with the given
// transition bandwidth.
//
//	att ≈ 8 + 2.285 * Δω * M
//
// Used when a caller supplies the filter length directly and the window β
// must still be derived.
func KaiserOrderAttenuation(order int, transWidth, ratio float64) float64 {
	deltaOmega := kaiserOrderMultiplier * transWidth * math.Pi * math.Min(ratio, 1.0)
	return kaiserOrderOffset + deltaOmega*float64(order)
}
