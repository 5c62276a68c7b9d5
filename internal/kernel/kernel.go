// Package kernel implements windowed-sinc interpolation kernels: a
// continuous Kaiser-windowed sinc function and its quantized lookup table
// used by the streaming sinc converter.
package kernel

import (
	"math"

	"github.com/tphakala/go-sinc-converter/internal/mathutil"
)

const (
	// sincZeroThreshold guards the removable singularity at t = 0.
	sincZeroThreshold = 1e-12
)

// Design describes a continuous windowed-sinc kernel.
//
// The kernel is the product of a sinc function with cutoff scaling and a
// Kaiser window of half-width HalfTaps. It is evaluable at any real tap
// offset t (in units of input samples) and is identically zero for
// |t| >= HalfTaps, where the window support ends.
type Design struct {
	// HalfTaps is the filter half-length N: taps on each side of center.
	HalfTaps int

	// Beta is the Kaiser window shape parameter.
	Beta float64

	// Cutoff is the normalized lowpass cutoff in (0, 1], where 1 is the
	// input Nyquist frequency. Downsampling designs scale it by the ratio
	// to suppress aliasing; the sinc amplitude carries the same factor so
	// passband gain stays at unity.
	Cutoff float64

	i0Beta float64 // cached I₀(β) for window evaluation
}

// NewDesign creates a continuous kernel with the given half-length, Kaiser β
// and normalized cutoff.
func NewDesign(halfTaps int, beta, cutoff float64) Design {
	return Design{
		HalfTaps: halfTaps,
		Beta:     beta,
		Cutoff:   cutoff,
		i0Beta:   mathutil.BesselI0(beta),
	}
}

// At evaluates the kernel at tap offset t.
func (d Design) At(t float64) float64 {
	half := float64(d.HalfTaps)
	if t <= -half || t >= half {
		return 0.0
	}

	// Kaiser window: I₀(β·sqrt(1-(t/N)²)) / I₀(β)
	x := t / half
	window := mathutil.BesselI0(d.Beta*math.Sqrt(1.0-x*x)) / d.i0Beta

	return sincC(t, d.Cutoff) * window
}

// sincC is the cutoff-scaled sinc function sin(π·t·c)/(π·t).
// The limit at t = 0 is c.
func sincC(t, c float64) float64 {
	if math.Abs(t) < sincZeroThreshold {
		return c
	}
	return math.Sin(math.Pi*t*c) / (math.Pi * t)
}
