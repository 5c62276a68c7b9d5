package sinc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuality_Params verifies the preset ladder: each step adds 24 dB and
// multiplies the phase table by 16.
func TestQuality_Params(t *testing.T) {
	tests := []struct {
		quality  Quality
		atten    float64
		quantify int
	}{
		{QualityQuick, 48, 8},
		{QualityLow, 72, 32},
		{QualityMedium, 96, 128},
		{QualityHigh, 120, 512},
		{QualityVeryHigh, 144, 2048},
		{QualityBest, 168, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.quality.String(), func(t *testing.T) {
			atten, quantify := tt.quality.Params()
			assert.Equal(t, tt.atten, atten)
			assert.Equal(t, tt.quantify, quantify)
		})
	}
}

// TestQuality_UnknownFallsBack verifies out-of-range presets behave as
// QualityMedium instead of panicking.
func TestQuality_UnknownFallsBack(t *testing.T) {
	atten, quantify := Quality(99).Params()
	wantAtten, wantQuantify := QualityMedium.Params()
	assert.Equal(t, wantAtten, atten)
	assert.Equal(t, wantQuantify, quantify)
}

// TestNewWithPreset verifies the preset constructor matches New with the
// preset's parameters.
func TestNewWithPreset(t *testing.T) {
	m, err := NewWithPreset(refRatio, QualityQuick, refPassWidth)
	require.NoError(t, err)

	want, err := New(refRatio, 48, 8, refPassWidth)
	require.NoError(t, err)
	assert.Equal(t, want.Order(), m.Order())
	assert.Equal(t, want.Quantify(), m.Quantify())
}
