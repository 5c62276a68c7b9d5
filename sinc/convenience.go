package sinc

import (
	convert "github.com/tphakala/go-sinc-converter"
)

// Common sample rates for convenience functions.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000
)

// defaultPassWidth is the transition band used by the one-shot helpers: 10%
// of the passband, a reasonable tradeoff between kernel size and bandwidth.
const defaultPassWidth = 0.1

// Resample converts a whole buffer between two sample rates in one call,
// using a quality preset and the default transition band. It is the
// simplest entry point for offline, single-channel use; for streaming or
// multichannel work create a [Manager] and one converter per channel.
func Resample(input []float64, inputRate, outputRate float64, quality Quality) ([]float64, error) {
	m, err := NewWithPreset(outputRate/inputRate, quality, defaultPassWidth)
	if err != nil {
		return nil, err
	}
	return convert.Collect(m.Converter().Process(convert.FromSlice(input))), nil
}
