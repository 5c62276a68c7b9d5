// Package convert provides streaming sample rate conversion in pure Go.
//
// The library converts a sequence of audio samples from one sampling rate to
// another by fractional-delay filtering. Two converter families implement the
// same pull-based streaming contract:
//
//   - [github.com/tphakala/go-sinc-converter/sinc]: windowed-sinc
//     interpolation with a quantized kernel lookup table. Kaiser window
//     design gives direct control over stopband attenuation and transition
//     bandwidth.
//   - [github.com/tphakala/go-sinc-converter/linear]: two-tap linear
//     interpolation. No kernel, minimal state, low quality. Intended as a
//     cheap fallback for non-critical audio.
//
// # Quick Start
//
//	manager, err := sinc.New(48000.0/44100.0, 110.0, 256, 0.093)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cvtr := manager.Converter()
//	output := convert.Collect(cvtr.Process(convert.FromSlice(input)))
//
// A converter is created per channel; converters from the same manager share
// the (read-only) filter table but never share mutable state, so
// multi-channel audio can be processed on independent goroutines with no
// synchronization.
//
// # Streaming Model
//
// Processing is lazy and pull-based: the output [Source] produces one sample
// per Next call, internally pulling from the input exactly as far as needed.
// The stream is finite and single-pass. After the input ends, the sinc
// converter feeds a short tail of implicit zero samples so the filter's
// delayed response drains completely, then the output ends for good. A fresh
// converter must be created to process another sequence.
//
// The streaming path never fails: NaN or Inf input samples propagate through
// the convolution arithmetic like any other float64.
//
// # Quality Parameters
//
// Sinc converter quality is controlled by the stopband attenuation in dB and
// the quantify count (fractional-phase subdivisions of the kernel table).
// Recommended pairings follow attenuation ≈ 12 + 12·log2(quantify):
//
//	attenuation  quantify  use case
//	     48           8    8-bit, fast
//	     72          32    12-bit
//	     96         128    16-bit (CD)
//	    120         512    20-bit
//	    144        2048    24-bit
//	    168        8192    24-bit, best
//
// These are guidance only; any positive attenuation and quantify are
// accepted.
//
// # Errors
//
// All validation happens at construction time and reports one of the
// sentinel errors [ErrInvalidRatio], [ErrInvalidAttenuation],
// [ErrInvalidQuantify] or [ErrInvalidPassWidth], wrapped with context and
// matchable with errors.Is.
package convert
