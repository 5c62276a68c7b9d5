// Package sinc implements windowed-sinc sample rate conversion.
//
// A [Manager] turns quality parameters into a quantized interpolation kernel
// and acts as the factory for streaming converters. The manager is immutable
// and its kernel table is shared read-only by every converter it creates, so
// one manager can drive any number of channels concurrently.
package sinc

import (
	"fmt"
	"math"

	convert "github.com/tphakala/go-sinc-converter"
	"github.com/tphakala/go-sinc-converter/internal/kernel"
	"github.com/tphakala/go-sinc-converter/internal/mathutil"
)

const (
	// halfDivisor converts a full filter order to taps per side.
	halfDivisor = 2

	// minHalfTaps and minQuantify are the floors applied by NewWithRaw,
	// which by contract validates nothing but the ratio.
	minHalfTaps = 1
	minQuantify = 1
)

// Manager holds an immutable resampling configuration and its quantized
// kernel. Create one with [New], [NewWithOrder], [NewWithRaw] or a
// [Builder], then call [Manager.Converter] once per channel.
type Manager struct {
	ratio    float64
	halfTaps int
	quantify int
	beta     float64
	cutoff   float64
	table    *kernel.Table

	// Phase step 1/ratio as an exact fraction; converters advance by
	// stepNumer/stepDenom input samples per output sample.
	stepNumer int64
	stepDenom int64
}

// New creates a Manager from user-facing quality parameters.
//
// Parameters:
//
//	ratio: conversion ratio, output rate / input rate (> 0, finite)
//	attenuation: desired stopband attenuation in dB (> 0)
//	quantify: fractional-phase subdivisions of the kernel table (> 0,
//	          ideally a power of two)
//	passWidth: transition band width as a fraction of the passband, in (0, 1)
//
// The filter half-length is derived from attenuation and passWidth via the
// Kaiser window order relation; higher attenuation and narrower transition
// bands both lengthen the filter. For downsampling ratios the kernel cutoff
// is scaled by the ratio to prevent aliasing.
func New(ratio, attenuation float64, quantify int, passWidth float64) (*Manager, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}
	if !(attenuation > 0) {
		return nil, fmt.Errorf("%w: attenuation %v dB, must be > 0", convert.ErrInvalidAttenuation, attenuation)
	}
	if err := validateQuantify(quantify); err != nil {
		return nil, err
	}
	if err := validatePassWidth(passWidth); err != nil {
		return nil, err
	}

	order := mathutil.KaiserOrder(attenuation, passWidth, ratio)
	beta := mathutil.KaiserBeta(attenuation)
	cutoff := math.Min(ratio, 1.0) * (1.0 - passWidth/halfDivisor)

	return newManager(ratio, order/halfDivisor, quantify, beta, cutoff), nil
}

// NewWithOrder creates a Manager with a caller-supplied filter half-length,
// skipping the attenuation-derived sizing. order is the number of taps on
// each side of the center tap; values below 1 are raised to 1. The window
// shape is recovered from the half-length through the inverse Kaiser order
// relation, so the design matches what New would produce for the same
// length.
func NewWithOrder(ratio float64, order, quantify int, passWidth float64) (*Manager, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}
	if err := validateQuantify(quantify); err != nil {
		return nil, err
	}
	if err := validatePassWidth(passWidth); err != nil {
		return nil, err
	}
	if order < minHalfTaps {
		order = minHalfTaps
	}

	attenuation := mathutil.KaiserOrderAttenuation(halfDivisor*order, passWidth, ratio)
	beta := mathutil.KaiserBeta(attenuation)
	cutoff := math.Min(ratio, 1.0) * (1.0 - passWidth/halfDivisor)

	return newManager(ratio, order, quantify, beta, cutoff), nil
}

// NewWithRaw creates a Manager directly from precomputed kernel parameters:
// the filter half-length, the Kaiser window β and the normalized cutoff in
// (0, 1]. It is the lowest-level escape hatch and validates nothing beyond
// the ratio; halfTaps and quantify are silently raised to 1 when smaller so
// a degenerate call cannot corrupt the table.
func NewWithRaw(ratio float64, halfTaps, quantify int, beta, cutoff float64) (*Manager, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}
	if halfTaps < minHalfTaps {
		halfTaps = minHalfTaps
	}
	if quantify < minQuantify {
		quantify = minQuantify
	}
	return newManager(ratio, halfTaps, quantify, beta, cutoff), nil
}

func newManager(ratio float64, halfTaps, quantify int, beta, cutoff float64) *Manager {
	design := kernel.NewDesign(halfTaps, beta, cutoff)

	// The converter steps by 1/ratio input samples per output sample, so
	// the ratio's fraction is used upside down.
	rNumer, rDenom := mathutil.ApproxRatio(ratio, mathutil.DefaultMaxDenom)

	return &Manager{
		ratio:     ratio,
		halfTaps:  halfTaps,
		quantify:  quantify,
		beta:      beta,
		cutoff:    cutoff,
		table:     kernel.Build(design, quantify),
		stepNumer: rDenom,
		stepDenom: rNumer,
	}
}

// Converter creates a new independent streaming converter backed by this
// manager's kernel table. It is side-effect-free and safe to call from any
// number of goroutines; each returned converter owns its mutable state
// exclusively, so one converter per channel needs no synchronization.
func (m *Manager) Converter() *Converter {
	return newConverter(m)
}

// Ratio returns the conversion ratio (output rate / input rate).
func (m *Manager) Ratio() float64 { return m.ratio }

// Order returns the full filter order 2N; the kernel has 2N+1 taps.
func (m *Manager) Order() int { return halfDivisor * m.halfTaps }

// Quantify returns the number of fractional-phase subdivisions in the
// kernel table.
func (m *Manager) Quantify() int { return m.quantify }

// Latency returns the converter's group delay in output samples. Skipping
// this many leading output samples aligns the output with the input.
func (m *Manager) Latency() int {
	return int(math.Round(m.ratio * float64(m.halfTaps)))
}

func validateRatio(ratio float64) error {
	// NaN fails the comparison too.
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return fmt.Errorf("%w: ratio %v, must be a positive finite number", convert.ErrInvalidRatio, ratio)
	}
	return nil
}

func validateQuantify(quantify int) error {
	if quantify <= 0 {
		return fmt.Errorf("%w: quantify %d, must be > 0", convert.ErrInvalidQuantify, quantify)
	}
	return nil
}

func validatePassWidth(passWidth float64) error {
	if !(passWidth > 0 && passWidth < 1) {
		return fmt.Errorf("%w: pass width %v, must be in (0, 1)", convert.ErrInvalidPassWidth, passWidth)
	}
	return nil
}
