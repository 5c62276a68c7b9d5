// Command resample-wav resamples WAV audio files to a target sample rate.
//
// Usage:
//
//	resample-wav -rate 48 input.wav output.wav
//	resample-wav -rate 16 -quality best input.wav output.wav
//	resample-wav -rate 48 -linear input.wav output.wav   # cheap preview path
//
// Channels are converted concurrently, one converter per channel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	convert "github.com/tphakala/go-sinc-converter"
	"github.com/tphakala/go-sinc-converter/linear"
	"github.com/tphakala/go-sinc-converter/sinc"
)

const (
	// CLI defaults
	defaultRateKHz   = 48.0
	defaultQuality   = "medium"
	defaultPassWidth = 0.1
	minRequiredArgs  = 2

	kHzToHz = 1000
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 32, 44.1, 48, 96)")
	quality := flag.String("quality", defaultQuality, "Quality preset: quick, low, medium, high, very-high, best")
	passWidth := flag.Float64("passwidth", defaultPassWidth, "Transition band width as a fraction of the passband, in (0, 1)")
	useLinear := flag.Bool("linear", false, "Use linear interpolation instead of windowed sinc (fast, lossy)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -rate 48 input.wav output.wav           # Resample to 48kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 16 speech.wav speech_16k.wav      # Downsample for speech\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 96 -quality best in.wav out.wav   # Archival upsample\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]
	targetRate := int(*rateKHz * kHzToHz)

	input, err := readWAVInput(inputPath, *verbose)
	if err != nil {
		return err
	}
	if input.rate == targetRate {
		return fmt.Errorf("input already at target rate %d Hz", targetRate)
	}

	ratio := float64(targetRate) / float64(input.rate)
	factory, err := newConverterFactory(ratio, *useLinear, parseQuality(*quality), *passWidth)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s (%d Hz, %d channels, %d-bit)", inputPath, input.rate, len(input.channels), input.bitDepth)
		log.Printf("Output: %s (%d Hz)", outputPath, targetRate)
		log.Printf("Ratio: %g", ratio)
		if *useLinear {
			log.Printf("Method: linear interpolation")
		} else {
			log.Printf("Method: windowed sinc, quality %s", *quality)
		}
	}

	start := time.Now()
	resampled := convertChannels(factory, input.channels)
	elapsed := time.Since(start)

	outputFrames, err := writeWAVOutput(outputPath, targetRate, input.bitDepth, resampled)
	if err != nil {
		return err
	}

	inputFrames := len(input.channels[0])
	fmt.Printf("Resampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit)\n",
		input.rate, targetRate, len(input.channels), input.bitDepth)
	fmt.Printf("  %d frames -> %d frames\n", inputFrames, outputFrames)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(inputFrames)/float64(input.rate)/elapsed.Seconds())

	return nil
}

func parseQuality(q string) sinc.Quality {
	switch strings.ToLower(q) {
	case "quick":
		return sinc.QualityQuick
	case "low":
		return sinc.QualityLow
	case "medium":
		return sinc.QualityMedium
	case "high":
		return sinc.QualityHigh
	case "very-high":
		return sinc.QualityVeryHigh
	case "best":
		return sinc.QualityBest
	default:
		return sinc.QualityMedium
	}
}

// converterFactory creates one fresh converter per channel from a shared
// immutable manager.
type converterFactory func() convert.Converter

func newConverterFactory(ratio float64, useLinear bool, quality sinc.Quality, passWidth float64) (converterFactory, error) {
	if useLinear {
		m, err := linear.New(ratio)
		if err != nil {
			return nil, err
		}
		return func() convert.Converter { return m.Converter() }, nil
	}
	m, err := sinc.NewWithPreset(ratio, quality, passWidth)
	if err != nil {
		return nil, err
	}
	return func() convert.Converter { return m.Converter() }, nil
}

// convertChannels runs one converter per channel concurrently. The shared
// kernel table is read-only, so the goroutines need no synchronization.
func convertChannels(factory converterFactory, channels [][]float64) [][]float64 {
	out := make([][]float64, len(channels))
	var wg sync.WaitGroup
	for ch := range channels {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			out[ch] = convert.Collect(factory().Process(convert.FromSlice(channels[ch])))
		}(ch)
	}
	wg.Wait()
	return out
}
