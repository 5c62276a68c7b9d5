package sinc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convert "github.com/tphakala/go-sinc-converter"
)

const (
	// Reference configuration: ratio 2, 48 dB, 8 phases, 10% transition
	// band. The Kaiser relation gives order 56 for this design.
	refRatio     = 2.0
	refAtten     = 48.0
	refQuantify  = 8
	refPassWidth = 0.1
	refOrder     = 56
)

// TestNew_Validation verifies every parameter range check and its error kind.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		ratio       float64
		attenuation float64
		quantify    int
		passWidth   float64
		wantErr     error
	}{
		{"zero ratio", 0, refAtten, refQuantify, refPassWidth, convert.ErrInvalidRatio},
		{"negative ratio", -1.5, refAtten, refQuantify, refPassWidth, convert.ErrInvalidRatio},
		{"NaN ratio", math.NaN(), refAtten, refQuantify, refPassWidth, convert.ErrInvalidRatio},
		{"infinite ratio", math.Inf(1), refAtten, refQuantify, refPassWidth, convert.ErrInvalidRatio},
		{"zero attenuation", refRatio, 0, refQuantify, refPassWidth, convert.ErrInvalidAttenuation},
		{"negative attenuation", refRatio, -48, refQuantify, refPassWidth, convert.ErrInvalidAttenuation},
		{"zero quantify", refRatio, refAtten, 0, refPassWidth, convert.ErrInvalidQuantify},
		{"negative quantify", refRatio, refAtten, -8, refPassWidth, convert.ErrInvalidQuantify},
		{"zero pass width", refRatio, refAtten, refQuantify, 0, convert.ErrInvalidPassWidth},
		{"full pass width", refRatio, refAtten, refQuantify, 1.0, convert.ErrInvalidPassWidth},
		{"negative pass width", refRatio, refAtten, refQuantify, -0.1, convert.ErrInvalidPassWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.ratio, tt.attenuation, tt.quantify, tt.passWidth)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestNew_ReferenceDesign verifies the derived filter dimensions for the
// reference configuration.
func TestNew_ReferenceDesign(t *testing.T) {
	m, err := New(refRatio, refAtten, refQuantify, refPassWidth)
	require.NoError(t, err)

	assert.Equal(t, refRatio, m.Ratio())
	assert.Equal(t, refOrder, m.Order())
	assert.Equal(t, refQuantify, m.Quantify())
	// Group delay: ratio * half-length output samples.
	assert.Equal(t, int(refRatio)*refOrder/2, m.Latency())
}

// TestNew_OrderGrowsWithDemands verifies the order relation reacts to each
// quality knob in the right direction.
func TestNew_OrderGrowsWithDemands(t *testing.T) {
	base, err := New(1.0, 48, 32, 0.1)
	require.NoError(t, err)

	deeper, err := New(1.0, 96, 32, 0.1)
	require.NoError(t, err)
	assert.Greater(t, deeper.Order(), base.Order(), "more attenuation needs a longer filter")

	narrower, err := New(1.0, 48, 32, 0.02)
	require.NoError(t, err)
	assert.Greater(t, narrower.Order(), base.Order(), "a narrower transition band needs a longer filter")

	downsampling, err := New(0.5, 48, 32, 0.1)
	require.NoError(t, err)
	assert.Greater(t, downsampling.Order(), base.Order(), "downsampling shrinks the transition band")
}

// TestNewWithOrder verifies the caller-supplied half-length is honored and
// the remaining fields still validate.
func TestNewWithOrder(t *testing.T) {
	m, err := NewWithOrder(1.0, 16, 32, refPassWidth)
	require.NoError(t, err)
	assert.Equal(t, 32, m.Order())

	clamped, err := NewWithOrder(1.0, 0, 32, refPassWidth)
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Order())

	_, err = NewWithOrder(0, 16, 32, refPassWidth)
	assert.ErrorIs(t, err, convert.ErrInvalidRatio)
	_, err = NewWithOrder(1.0, 16, 0, refPassWidth)
	assert.ErrorIs(t, err, convert.ErrInvalidQuantify)
	_, err = NewWithOrder(1.0, 16, 32, 1.5)
	assert.ErrorIs(t, err, convert.ErrInvalidPassWidth)
}

// TestNewWithRaw verifies the escape hatch checks only the ratio and floors
// the structural parameters.
func TestNewWithRaw(t *testing.T) {
	m, err := NewWithRaw(1.5, 20, 64, 9.6, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 40, m.Order())
	assert.Equal(t, 64, m.Quantify())

	floored, err := NewWithRaw(1.5, 0, 0, 9.6, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 2, floored.Order())
	assert.Equal(t, 1, floored.Quantify())

	_, err = NewWithRaw(math.NaN(), 20, 64, 9.6, 0.95)
	assert.ErrorIs(t, err, convert.ErrInvalidRatio)
}

// TestManager_LatencyRounds verifies fractional-ratio latency rounds to the
// nearest output sample.
func TestManager_LatencyRounds(t *testing.T) {
	m, err := NewWithRaw(0.75, 10, 8, 5.0, 0.7)
	require.NoError(t, err)
	// 0.75 * 10 = 7.5 rounds up.
	assert.Equal(t, 8, m.Latency())
}
