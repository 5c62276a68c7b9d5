// Package ringbuf implements the fixed-capacity sample history used by
// streaming converters: a flat arena with a wrap-around write index, so the
// hot path never reallocates.
package ringbuf

import (
	"github.com/tphakala/simd/f64"
)

// Ring holds the most recent capacity samples of a stream, oldest first.
//
// A new Ring is zero-filled, which represents the silence before the start
// of the stream. Push overwrites the oldest sample. A Ring is exclusively
// owned by one converter and is deliberately lock-free.
type Ring struct {
	data  []float64
	write int // index of the oldest sample, next to be overwritten
}

// New creates a zero-filled ring holding capacity samples.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Len returns the fixed capacity of the ring.
func (r *Ring) Len() int { return len(r.data) }

// Push appends a sample, dropping the oldest.
func (r *Ring) Push(sample float64) {
	r.data[r.write] = sample
	r.write++
	if r.write == len(r.data) {
		r.write = 0
	}
}

// At returns the i-th sample in logical order: At(0) is the oldest sample,
// At(Len()-1) the newest.
func (r *Ring) At(i int) float64 {
	i += r.write
	if i >= len(r.data) {
		i -= len(r.data)
	}
	return r.data[i]
}

// Dot returns the inner product of the logical sample order with coeffs,
// which must have the ring's exact length. The wrap seam splits the work
// into at most two SIMD dot products.
func (r *Ring) Dot(coeffs []float64) float64 {
	head := len(r.data) - r.write
	sum := f64.DotProduct(r.data[r.write:], coeffs[:head])
	if r.write > 0 {
		sum += f64.DotProduct(r.data[:r.write], coeffs[head:])
	}
	return sum
}
