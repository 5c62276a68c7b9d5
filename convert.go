package convert

import "iter"

// Source yields successive samples of an audio stream.
//
// Next returns the next sample and true, or an undefined value and false when
// the stream has ended. Once Next has returned false the stream stays ended.
type Source interface {
	Next() (float64, bool)
}

// Converter turns an input sample stream into a resampled output stream.
//
// Process binds the converter to src and returns the lazy output stream.
// The returned Source pulls from src exactly as far as needed to produce
// each output sample and no further. A converter is single-use: once its
// output stream has ended, a fresh converter must be created to process
// another sequence.
type Converter interface {
	Process(src Source) Source
}

type sliceSource struct {
	samples []float64
	pos     int
}

func (s *sliceSource) Next() (float64, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	v := s.samples[s.pos]
	s.pos++
	return v, true
}

// FromSlice returns a Source that yields the samples of s in order.
// The slice is not copied; it must not be modified while streaming.
func FromSlice(s []float64) Source {
	return &sliceSource{samples: s}
}

// Collect drains src to completion and returns all produced samples.
func Collect(src Source) []float64 {
	var out []float64
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

type seqSource struct {
	next func() (float64, bool)
	stop func()
	done bool
}

func (s *seqSource) Next() (float64, bool) {
	if s.done {
		return 0, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return 0, false
	}
	return v, true
}

// FromSeq adapts an iter.Seq to the Source contract.
// The underlying iterator is released when the sequence is exhausted.
func FromSeq(seq iter.Seq[float64]) Source {
	next, stop := iter.Pull(seq)
	return &seqSource{next: next, stop: stop}
}

// Seq adapts a Source to an iter.Seq for use with range-over-func.
// Like the Source itself, the sequence can be ranged over only once.
func Seq(src Source) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			v, ok := src.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
