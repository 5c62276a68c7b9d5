package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testHalfTaps = 28
	testBeta     = 4.55126 // 0.1102*(50-8.7), β for ~50 dB designs
	testCutoff   = 0.95

	symmetryTolerance = 1e-12
)

// TestDesign_CenterValue verifies the removable singularity at t=0 yields
// the cutoff value.
func TestDesign_CenterValue(t *testing.T) {
	d := NewDesign(testHalfTaps, testBeta, testCutoff)
	assert.InDelta(t, testCutoff, d.At(0), symmetryTolerance)
}

// TestDesign_Support verifies the kernel vanishes outside (-N, N).
func TestDesign_Support(t *testing.T) {
	d := NewDesign(testHalfTaps, testBeta, testCutoff)
	n := float64(testHalfTaps)

	for _, tap := range []float64{-n - 5, -n, n, n + 0.5, n + 100} {
		assert.Zero(t, d.At(tap), "kernel must be zero at t=%f", tap)
	}
	assert.NotZero(t, d.At(0.25))
}

// TestDesign_Even verifies k(t) = k(-t).
func TestDesign_Even(t *testing.T) {
	d := NewDesign(testHalfTaps, testBeta, testCutoff)
	for _, tap := range []float64{0.1, 0.5, 1.0, 3.7, 13.2, 27.9} {
		assert.InDelta(t, d.At(tap), d.At(-tap), symmetryTolerance,
			"kernel not even at t=%f", tap)
	}
}

// TestDesign_Decay verifies the window tapers the envelope toward the edges.
func TestDesign_Decay(t *testing.T) {
	d := NewDesign(testHalfTaps, testBeta, 1.0)

	// Compare envelope at tap+0.5 offsets (away from sinc zero crossings).
	near := math.Abs(d.At(1.5))
	far := math.Abs(d.At(float64(testHalfTaps) - 0.5))
	assert.Greater(t, near, far, "kernel envelope should decay toward the window edge")
}

// TestDesign_CutoffScaling verifies a downsampling design carries its gain
// scaling in the center tap.
func TestDesign_CutoffScaling(t *testing.T) {
	full := NewDesign(testHalfTaps, testBeta, 1.0)
	halved := NewDesign(testHalfTaps, testBeta, 0.5)
	assert.InDelta(t, full.At(0)/2, halved.At(0), symmetryTolerance)
}
