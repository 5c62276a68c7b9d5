package sinc

import (
	"fmt"

	convert "github.com/tphakala/go-sinc-converter"
)

// Builder assembles a [Manager] from individually supplied parameters. Every
// field is optional until [Builder.Build], which reports the first missing or
// invalid field with the same error kinds as [New]:
//
//	m, err := sinc.NewBuilder().
//		Ratio(48000.0 / 44100.0).
//		Attenuation(96).
//		Quantify(128).
//		PassWidth(0.05).
//		Build()
type Builder struct {
	ratio       *float64
	attenuation *float64
	quantify    *int
	passWidth   *float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Ratio sets the conversion ratio (output rate / input rate).
func (b *Builder) Ratio(ratio float64) *Builder {
	b.ratio = &ratio
	return b
}

// Attenuation sets the desired stopband attenuation in dB.
func (b *Builder) Attenuation(attenuation float64) *Builder {
	b.attenuation = &attenuation
	return b
}

// Quantify sets the number of fractional-phase subdivisions of the kernel
// table.
func (b *Builder) Quantify(quantify int) *Builder {
	b.quantify = &quantify
	return b
}

// PassWidth sets the transition band width as a fraction of the passband.
func (b *Builder) PassWidth(passWidth float64) *Builder {
	b.passWidth = &passWidth
	return b
}

// Build validates the collected parameters and creates the Manager. Fields
// are checked in the same order as [New]; a missing field fails with the
// error kind of that field.
func (b *Builder) Build() (*Manager, error) {
	if b.ratio == nil {
		return nil, fmt.Errorf("%w: ratio not set", convert.ErrInvalidRatio)
	}
	if b.attenuation == nil {
		return nil, fmt.Errorf("%w: attenuation not set", convert.ErrInvalidAttenuation)
	}
	if b.quantify == nil {
		return nil, fmt.Errorf("%w: quantify not set", convert.ErrInvalidQuantify)
	}
	if b.passWidth == nil {
		return nil, fmt.Errorf("%w: pass width not set", convert.ErrInvalidPassWidth)
	}
	return New(*b.ratio, *b.attenuation, *b.quantify, *b.passWidth)
}
