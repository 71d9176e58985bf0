// Package stream runs a beep audio pipeline through the equalizer.
package stream

import (
	"github.com/cwbudde/algo-simpleeq/plugin"
	"github.com/gopxl/beep/v2"
)

// Streamer wraps a beep.Streamer and filters everything it yields through a
// prepared plugin.Processor. Stream is the audio thread from the
// processor's point of view.
type Streamer struct {
	src         beep.Streamer
	proc        *plugin.Processor
	left, right []float64
}

// New wraps src. proc must already be prepared at the stream's sample
// rate; its block size fixes the deinterleave buffers.
func New(src beep.Streamer, proc *plugin.Processor) *Streamer {
	n := max(proc.MaxBlockSize(), 1)
	return &Streamer{
		src:   src,
		proc:  proc,
		left:  make([]float64, n),
		right: make([]float64, n),
	}
}

// Stream pulls from the wrapped streamer and equalizes the samples in place.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.src.Stream(samples)

	for done := 0; done < n; {
		chunk := samples[done:min(n, done+len(s.left))]
		left, right := s.left[:len(chunk)], s.right[:len(chunk)]
		for i, frame := range chunk {
			left[i], right[i] = frame[0], frame[1]
		}

		s.proc.ProcessBlock(left, right)

		for i := range chunk {
			chunk[i] = [2]float64{left[i], right[i]}
		}
		done += len(chunk)
	}
	return n, ok
}

// Err returns the wrapped streamer's error.
func (s *Streamer) Err() error {
	return s.src.Err()
}
