// Command analyze-kernel prints the frequency response of a windowed-sinc
// kernel design, for checking what a given quality setting actually buys.
//
// Usage:
//
//	analyze-kernel -ratio 0.5 -atten 96 -passwidth 0.1
//	analyze-kernel -atten 120 -passwidth 0.05 -points 50
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/tphakala/go-sinc-converter/internal/kernel"
	"github.com/tphakala/go-sinc-converter/internal/mathutil"
)

const (
	defaultRatio     = 1.0
	defaultAtten     = 96.0
	defaultPassWidth = 0.1
	defaultPoints    = 40

	// Measurement band edges in cycles per input sample, placed clear of
	// the transition band for the default pass width.
	passbandEdge  = 0.25
	stopbandStart = 0.55
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ratio := flag.Float64("ratio", defaultRatio, "Conversion ratio (output rate / input rate)")
	atten := flag.Float64("atten", defaultAtten, "Target stopband attenuation in dB")
	passWidth := flag.Float64("passwidth", defaultPassWidth, "Transition band width as a fraction of the passband")
	points := flag.Int("points", defaultPoints, "Number of response points to print")
	flag.Parse()

	if !(*ratio > 0) || math.IsInf(*ratio, 0) {
		return fmt.Errorf("ratio must be a positive finite number, got %v", *ratio)
	}
	if !(*atten > 0) {
		return fmt.Errorf("attenuation must be > 0 dB, got %v", *atten)
	}
	if !(*passWidth > 0 && *passWidth < 1) {
		return fmt.Errorf("pass width must be in (0, 1), got %v", *passWidth)
	}

	order := mathutil.KaiserOrder(*atten, *passWidth, *ratio)
	beta := mathutil.KaiserBeta(*atten)
	cutoff := math.Min(*ratio, 1.0) * (1.0 - *passWidth/2)
	design := kernel.NewDesign(order/2, beta, cutoff)

	fmt.Printf("Kernel design\n")
	fmt.Printf("  ratio:     %g\n", *ratio)
	fmt.Printf("  target:    %.1f dB stopband, %.0f%% transition band\n", *atten, *passWidth*100)
	fmt.Printf("  order:     %d (%d taps)\n", order, order+1)
	fmt.Printf("  beta:      %.4f\n", beta)
	fmt.Printf("  cutoff:    %.4f\n", cutoff)

	resp := kernel.ComputeResponse(design, 0)
	fmt.Printf("\nMeasured response\n")
	fmt.Printf("  passband ripple:      %.4f dB (below %.2f cycles/sample)\n",
		resp.PassbandRipple(passbandEdge*math.Min(*ratio, 1.0)), passbandEdge*math.Min(*ratio, 1.0))
	fmt.Printf("  stopband attenuation: %.1f dB (above %.2f cycles/sample)\n",
		resp.StopbandAttenuation(stopbandStart*math.Min(*ratio, 1.0)), stopbandStart*math.Min(*ratio, 1.0))

	fmt.Printf("\n%12s  %10s\n", "freq", "gain (dB)")
	stride := len(resp.Frequencies) / *points
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(resp.Frequencies); i += stride {
		fmt.Printf("%12.4f  %10.2f\n", resp.Frequencies[i], resp.MagnitudeDB[i])
	}
	return nil
}
