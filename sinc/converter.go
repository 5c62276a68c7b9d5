package sinc

import (
	convert "github.com/tphakala/go-sinc-converter"
	"github.com/tphakala/go-sinc-converter/internal/kernel"
	"github.com/tphakala/go-sinc-converter/internal/ringbuf"
)

// streamState tracks where a converter is in the life of its input stream.
type streamState int

const (
	// stateStreaming pulls real samples from the bound source.
	stateStreaming streamState = iota
	// stateFlushing feeds implicit trailing zeros so the filter history
	// drains completely after the source ends.
	stateFlushing
	// stateExhausted means the flush tail has been consumed; the converter
	// emits nothing further.
	stateExhausted
)

// Converter is a single-use streaming resampler. Bind an input with
// [Converter.Process], then drain the returned source; once it reports the
// end of the stream the converter is spent.
//
// A Converter pulls lazily: input samples are requested only when an output
// sample needs them, so unbounded streams work in constant memory. It is not
// safe for concurrent use; create one converter per channel instead.
type Converter struct {
	table *kernel.Table
	hist  *ringbuf.Ring
	src   convert.Source

	// Position of the next output sample inside the current input interval,
	// as the exact fraction pos/denom of an input sample period. Advancing
	// by numer/denom per output keeps the phase drift-free forever.
	pos   int64
	numer int64
	denom int64

	state          streamState
	flushRemaining int
}

func newConverter(m *Manager) *Converter {
	return &Converter{
		table: m.table,
		hist:  ringbuf.New(m.table.Taps()),
		numer: m.stepNumer,
		denom: m.stepDenom,
		// One trailing zero per history tap beyond the center lets the last
		// real sample travel all the way through the filter.
		flushRemaining: halfDivisor * m.table.HalfTaps(),
	}
}

// Process binds the converter to an input stream and returns the converted
// output stream. The converter consumes src lazily and exactly once;
// rebinding a spent converter yields an empty stream.
func (c *Converter) Process(src convert.Source) convert.Source {
	c.src = src
	return c
}

// Next produces the next output sample. It pulls as many input samples as
// the phase accumulator demands, then evaluates the kernel at the current
// fractional position by linear interpolation between the two bracketing
// table rows. After the source ends the filter history is flushed with
// implicit zeros, and Next reports the end of the stream once those are
// spent.
func (c *Converter) Next() (float64, bool) {
	if c.src == nil || c.state == stateExhausted {
		return 0, false
	}

	for c.pos >= c.denom {
		c.pos -= c.denom
		if !c.feed() {
			c.state = stateExhausted
			return 0, false
		}
	}

	lower, upper, frac := c.table.Lookup(c.pos, c.denom)
	lo := c.hist.Dot(lower)
	hi := c.hist.Dot(upper)
	out := lo + (hi-lo)*frac

	c.pos += c.numer
	return out, true
}

// feed advances the history by one sample: a real sample while the source
// lasts, then one zero per remaining flush slot. It reports false when the
// stream is fully drained.
func (c *Converter) feed() bool {
	if c.state == stateStreaming {
		if s, ok := c.src.Next(); ok {
			c.hist.Push(s)
			return true
		}
		c.state = stateFlushing
	}
	if c.flushRemaining > 0 {
		c.flushRemaining--
		c.hist.Push(0)
		return true
	}
	return false
}
