package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestApproxRatio_ExactFractions verifies common audio rate pairs reduce to
// their exact fractions.
func TestApproxRatio_ExactFractions(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		wantNumer int64
		wantDenom int64
	}{
		{"identity", 1.0, 1, 1},
		{"double", 2.0, 2, 1},
		{"half", 0.5, 1, 2},
		{"cd_to_dat", 48000.0 / 44100.0, 160, 147},
		{"dat_to_cd", 44100.0 / 48000.0, 147, 160},
		{"cd_to_96k", 96000.0 / 44100.0, 320, 147},
		{"third", 1.0 / 3.0, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numer, denom := ApproxRatio(tt.x, DefaultMaxDenom)
			assert.Equal(t, tt.wantNumer, numer)
			assert.Equal(t, tt.wantDenom, denom)
		})
	}
}

// TestApproxRatio_Irrational verifies irrational ratios are approximated
// within tolerance with a bounded denominator.
func TestApproxRatio_Irrational(t *testing.T) {
	for _, x := range []float64{math.Sqrt2, math.Pi / 2, 1.0 / math.Phi} {
		numer, denom := ApproxRatio(x, DefaultMaxDenom)
		assert.LessOrEqual(t, denom, int64(DefaultMaxDenom))
		got := float64(numer) / float64(denom)
		assert.InEpsilon(t, x, got, 1e-9, "approximation too coarse for x=%f", x)
	}
}

// TestApproxRatio_Deterministic verifies repeated calls agree exactly.
func TestApproxRatio_Deterministic(t *testing.T) {
	x := 48000.0 / 44100.0
	n1, d1 := ApproxRatio(x, DefaultMaxDenom)
	n2, d2 := ApproxRatio(x, DefaultMaxDenom)
	assert.Equal(t, n1, n2)
	assert.Equal(t, d1, d2)
}
