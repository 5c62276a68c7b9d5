package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRing_StartsSilent verifies a fresh ring reads as silence.
func TestRing_StartsSilent(t *testing.T) {
	r := New(5)
	for i := 0; i < r.Len(); i++ {
		assert.Zero(t, r.At(i))
	}
}

// TestRing_PushOverwritesOldest verifies logical ordering across the seam.
func TestRing_PushOverwritesOldest(t *testing.T) {
	r := New(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}

	// Last three pushed, oldest first.
	assert.Equal(t, 3.0, r.At(0))
	assert.Equal(t, 4.0, r.At(1))
	assert.Equal(t, 5.0, r.At(2))
}

// TestRing_Dot verifies the seam-split dot product against a direct sum.
func TestRing_Dot(t *testing.T) {
	const capacity = 7
	coeffs := []float64{0.5, -1, 2, 0.25, 3, -0.75, 1.5}

	r := New(capacity)
	// Exercise every seam position.
	for pushes := 1; pushes <= 2*capacity+1; pushes++ {
		r.Push(float64(pushes))

		var want float64
		for i := 0; i < capacity; i++ {
			want += r.At(i) * coeffs[i]
		}
		assert.InDelta(t, want, r.Dot(coeffs), 1e-12, "seam mismatch after %d pushes", pushes)
	}
}

// TestRing_MinimumCapacity verifies the degenerate single-slot ring.
func TestRing_MinimumCapacity(t *testing.T) {
	r := New(0)
	assert.Equal(t, 1, r.Len())
	r.Push(42)
	assert.Equal(t, 42.0, r.At(0))
	assert.Equal(t, 84.0, r.Dot([]float64{2}))
}
