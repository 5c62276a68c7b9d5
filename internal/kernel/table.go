package kernel

import (
	"github.com/tphakala/simd/f64"
)

const (
	// dcGainZeroThreshold guards normalization against a degenerate row.
	dcGainZeroThreshold = 1e-10

	// unitDCGain is the target row sum after normalization.
	unitDCGain = 1.0
)

// Table is the quantized form of a kernel Design: the continuous kernel
// sampled at quantify evenly spaced fractional phases for every integer tap
// in [-N, N].
//
// Rows are indexed by phase so that a row is a contiguous FIR coefficient
// vector: rows[q][i] holds the kernel at offset (i - N) - q/quantify. An
// extra row at phase 1.0 allows lookups to always interpolate between two
// adjacent rows. Each row is normalized to unit DC gain, so a converter
// whose history has settled to a constant reproduces that constant exactly.
//
// A Table is immutable after Build and safe to share between any number of
// converters without synchronization.
type Table struct {
	halfTaps int
	quantify int
	rows     [][]float64
}

// Build samples the continuous kernel into a quantized table with the given
// number of fractional-phase subdivisions.
func Build(d Design, quantify int) *Table {
	taps := 2*d.HalfTaps + 1
	rows := make([][]float64, quantify+1)

	for q := range rows {
		phase := float64(q) / float64(quantify)
		row := make([]float64, taps)
		for i := range row {
			row[i] = d.At(float64(i-d.HalfTaps) - phase)
		}

		// Pin DC gain to exactly 1 per phase row.
		sum := f64.Sum(row)
		if sum > dcGainZeroThreshold || sum < -dcGainZeroThreshold {
			f64.Scale(row, row, unitDCGain/sum)
		}
		rows[q] = row
	}

	return &Table{
		halfTaps: d.HalfTaps,
		quantify: quantify,
		rows:     rows,
	}
}

// HalfTaps returns the filter half-length N.
func (t *Table) HalfTaps() int { return t.halfTaps }

// Taps returns the full coefficient count 2N+1.
func (t *Table) Taps() int { return 2*t.halfTaps + 1 }

// Quantify returns the number of fractional-phase subdivisions.
func (t *Table) Quantify() int { return t.quantify }

// Row returns the coefficient row at quantized phase index q in
// [0, quantify].
func (t *Table) Row(q int) []float64 { return t.rows[q] }

// Lookup maps a fractional phase p = posNumer/posDenom in [0, 1) to the two
// adjacent coefficient rows bracketing it and the interpolation weight of
// the upper row.
//
// By linearity of convolution, interpolating the two rows' dot products
// against the same history equals the dot product against the interpolated
// row, so callers can lerp two scalar results instead of materializing a
// blended row.
func (t *Table) Lookup(posNumer, posDenom int64) (lower, upper []float64, frac float64) {
	u := float64(posNumer) / float64(posDenom) * float64(t.quantify)
	q := int(u)
	if q > t.quantify-1 {
		q = t.quantify - 1 // guard against p*quantify rounding up to quantify
	}
	return t.rows[q], t.rows[q+1], u - float64(q)
}
