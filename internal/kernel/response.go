package kernel

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// defaultOversample is the kernel sampling density (points per input
	// sample) used when measuring the frequency response.
	defaultOversample = 32

	// fftPaddingFactor pads the FFT beyond the kernel support for finer
	// frequency resolution.
	fftPaddingFactor = 4

	// minMagnitude avoids log(0) when converting to decibels.
	minMagnitude = 1e-12

	// dbMultiplier converts magnitude ratios to decibels (20·log10).
	dbMultiplier = 20.0
)

// Response holds the magnitude response of a kernel design.
//
// Frequencies are normalized to cycles per input sample, so 0.5 is the input
// Nyquist frequency. Magnitudes are in dB relative to the DC gain.
type Response struct {
	Frequencies []float64
	MagnitudeDB []float64
}

// ComputeResponse measures the magnitude response of the continuous kernel
// by sampling it densely and taking a zero-padded real FFT.
//
// oversample is the number of sample points per input sample; pass 0 for a
// sensible default. Higher values extend the measured band beyond the input
// Nyquist, which matters when verifying upsampling image rejection.
func ComputeResponse(d Design, oversample int) Response {
	if oversample <= 0 {
		oversample = defaultOversample
	}

	// Dense kernel samples over the full support [-N, N].
	n := 2*d.HalfTaps*oversample + 1
	samples := make([]float64, n)
	for j := range samples {
		samples[j] = d.At(float64(j)/float64(oversample) - float64(d.HalfTaps))
	}

	fftSize := nextPow2(fftPaddingFactor * n)
	padded := make([]float64, fftSize)
	copy(padded, samples)

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, padded)

	dc := math.Max(minMagnitude, cmplx.Abs(coeffs[0]))

	resp := Response{
		Frequencies: make([]float64, len(coeffs)),
		MagnitudeDB: make([]float64, len(coeffs)),
	}
	for b := range coeffs {
		// Bin b is at b/fftSize of the dense sampling rate, which is
		// oversample samples per input sample.
		resp.Frequencies[b] = float64(b) / float64(fftSize) * float64(oversample)
		mag := math.Max(minMagnitude, cmplx.Abs(coeffs[b])/dc)
		resp.MagnitudeDB[b] = dbMultiplier * math.Log10(mag)
	}
	return resp
}

// StopbandAttenuation returns the worst-case rejection in dB at or above the
// given normalized frequency (cycles per input sample, Nyquist = 0.5).
// Larger is better; the result is positive for any working lowpass design.
func (r Response) StopbandAttenuation(stopbandStart float64) float64 {
	worst := math.Inf(-1)
	for b, f := range r.Frequencies {
		if f >= stopbandStart && r.MagnitudeDB[b] > worst {
			worst = r.MagnitudeDB[b]
		}
	}
	if math.IsInf(worst, -1) {
		return 0.0
	}
	return -worst
}

// PassbandRipple returns the largest absolute deviation from 0 dB at or
// below the given normalized frequency.
func (r Response) PassbandRipple(passbandEnd float64) float64 {
	var worst float64
	for b, f := range r.Frequencies {
		if f <= passbandEnd {
			if dev := math.Abs(r.MagnitudeDB[b]); dev > worst {
				worst = dev
			}
		}
	}
	return worst
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
