// Package linear implements two-point linear-interpolation sample rate
// conversion.
//
// Linear interpolation is a first-order hold: cheap, low-latency and
// tolerable for control signals or preview paths, but it attenuates high
// frequencies and images badly. For audible material use the sinc package;
// this one exists for the cases where a two-tap filter is genuinely enough.
package linear

import (
	"fmt"
	"math"

	convert "github.com/tphakala/go-sinc-converter"
	"github.com/tphakala/go-sinc-converter/internal/mathutil"
)

// flushTail is the number of implicit trailing zeros fed after the source
// ends: one, so the final real sample still gets interpolated against a
// successor.
const flushTail = 1

// Manager holds a validated conversion ratio and creates converters for it.
// Like its sinc counterpart it is immutable and shareable across channels.
type Manager struct {
	ratio     float64
	stepNumer int64
	stepDenom int64
}

// New creates a linear-interpolation Manager for the given conversion ratio
// (output rate / input rate, positive and finite).
func New(ratio float64) (*Manager, error) {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("%w: ratio %v, must be a positive finite number", convert.ErrInvalidRatio, ratio)
	}
	rNumer, rDenom := mathutil.ApproxRatio(ratio, mathutil.DefaultMaxDenom)
	return &Manager{ratio: ratio, stepNumer: rDenom, stepDenom: rNumer}, nil
}

// Ratio returns the conversion ratio.
func (m *Manager) Ratio() float64 { return m.ratio }

// Converter creates a new independent streaming converter. Safe to call
// concurrently; each converter owns its state exclusively.
func (m *Manager) Converter() *Converter {
	return &Converter{
		numer:          m.stepNumer,
		denom:          m.stepDenom,
		flushRemaining: flushTail,
	}
}

type streamState int

const (
	// statePriming waits for the first real sample before any output.
	statePriming streamState = iota
	stateStreaming
	stateFlushing
	stateExhausted
)

// Converter is a single-use streaming linear resampler. Bind an input with
// [Converter.Process] and drain the returned stream; an empty input
// produces an empty output. Not safe for concurrent use.
type Converter struct {
	src convert.Source

	prev float64
	cur  float64

	// Fractional position pos/denom between prev and cur, advanced by
	// numer/denom input samples per output sample.
	pos   int64
	numer int64
	denom int64

	state          streamState
	flushRemaining int
}

// Process binds the converter to an input stream and returns the converted
// output stream. The converter consumes src lazily and exactly once.
func (c *Converter) Process(src convert.Source) convert.Source {
	c.src = src
	return c
}

// Next produces the next output sample by interpolating between the two
// most recent input samples at the current fractional position.
func (c *Converter) Next() (float64, bool) {
	if c.src == nil || c.state == stateExhausted {
		return 0, false
	}
	if c.state == statePriming {
		s, ok := c.src.Next()
		if !ok {
			c.state = stateExhausted
			return 0, false
		}
		c.cur = s
		c.state = stateStreaming
	}

	c.pos += c.numer
	for c.pos >= c.denom {
		c.pos -= c.denom
		if !c.feed() {
			c.state = stateExhausted
			return 0, false
		}
	}

	frac := float64(c.pos) / float64(c.denom)
	return c.prev + (c.cur-c.prev)*frac, true
}

// feed shifts the two-sample window forward by one input sample: a real
// sample while the source lasts, then the single flush zero.
func (c *Converter) feed() bool {
	if c.state == stateStreaming {
		if s, ok := c.src.Next(); ok {
			c.prev, c.cur = c.cur, s
			return true
		}
		c.state = stateFlushing
	}
	if c.flushRemaining > 0 {
		c.flushRemaining--
		c.prev, c.cur = c.cur, 0
		return true
	}
	return false
}
