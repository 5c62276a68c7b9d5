package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavAudioFormatPCM = 1
)

// wavInput holds a fully decoded input file as normalized per-channel
// samples in [-1, 1].
type wavInput struct {
	rate     int
	bitDepth int
	channels [][]float64
}

// readWAVInput decodes an entire WAV file into per-channel float samples.
func readWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("missing format information: %s", path)
	}

	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Decoded %d frames", len(buf.Data)/buf.Format.NumChannels)
	}

	return &wavInput{
		rate:     buf.Format.SampleRate,
		bitDepth: bitDepth,
		channels: deinterleave(buf.Data, buf.Format.NumChannels, maxValueForBitDepth(bitDepth)),
	}, nil
}

// writeWAVOutput interleaves the converted channels and encodes them as PCM.
// Channels from one manager always have equal length; shorter ones are
// padded with silence just in case. Returns the number of frames written.
func writeWAVOutput(path string, rate, bitDepth int, channels [][]float64) (frames int, err error) {
	for _, ch := range channels {
		if len(ch) > frames {
			frames = len(ch)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, rate, bitDepth, len(channels), wavAudioFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: rate},
		Data:           interleave(channels, frames, maxValueForBitDepth(bitDepth)),
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return 0, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return frames, nil
}

// maxValueForBitDepth returns the full-scale sample value for a PCM bit
// depth; unknown depths are treated as 16-bit.
func maxValueForBitDepth(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	case bitsPerSample16:
		return maxInt16
	default:
		return maxInt16
	}
}

// deinterleave converts interleaved int samples into per-channel floats
// normalized to [-1, 1].
func deinterleave(data []int, numChannels int, maxVal float64) [][]float64 {
	frames := len(data) / numChannels
	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
	}
	invMaxVal := 1.0 / maxVal
	for i := 0; i < frames; i++ {
		base := i * numChannels
		for ch := range channels {
			channels[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
	return channels
}

// interleave converts per-channel floats back to interleaved clamped int
// samples, padding short channels with silence up to frames.
func interleave(channels [][]float64, frames int, maxVal float64) []int {
	numChannels := len(channels)
	data := make([]int, frames*numChannels)
	for i := 0; i < frames; i++ {
		base := i * numChannels
		for ch, samples := range channels {
			var sample float64
			if i < len(samples) {
				sample = samples[i]
			}
			if sample > 1.0 {
				sample = 1.0
			} else if sample < -1.0 {
				sample = -1.0
			}
			data[base+ch] = int(sample * maxVal)
		}
	}
	return data
}
