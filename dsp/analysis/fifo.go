package analysis

import (
	"github.com/cwbudde/algo-simpleeq/dsp/relay"
)

// DefaultBlockSize is the size of the blocks a SampleFifo relays.
const DefaultBlockSize = 512

// SampleFifo collects mono samples on the audio thread and relays them in
// fixed-size blocks. Push never blocks or allocates; when the relay is full
// the completed block is dropped and counted.
type SampleFifo struct {
	pending relay.Block
	out     *relay.Relay[relay.Block]
	size    int
}

// NewSampleFifo allocates a fifo producing blocks of blockSize samples into
// a relay of capacity blocks. Non-positive arguments select the defaults.
func NewSampleFifo(blockSize, capacity int) *SampleFifo {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	return &SampleFifo{
		pending: relay.NewBlock(blockSize),
		out:     relay.NewBlockRelay(capacity, blockSize),
		size:    blockSize,
	}
}

// Push appends samples, relaying every block that fills up.
func (f *SampleFifo) Push(samples []float64) {
	for len(samples) > 0 {
		n := min(f.size-len(f.pending.Data), len(samples))
		f.pending.Data = append(f.pending.Data, samples[:n]...)
		samples = samples[n:]

		if len(f.pending.Data) == f.size {
			f.out.Push(&f.pending)
			f.pending.Data = f.pending.Data[:0]
		}
	}
}

// Relay returns the consumer side of the fifo.
func (f *SampleFifo) Relay() *relay.Relay[relay.Block] {
	return f.out
}

// BlockSize returns the relayed block length.
func (f *SampleFifo) BlockSize() int {
	return f.size
}

// Pending returns how many samples wait for the current block to fill.
func (f *SampleFifo) Pending() int {
	return len(f.pending.Data)
}

// Dropped returns how many completed blocks were lost to a full relay.
func (f *SampleFifo) Dropped() uint64 {
	return f.out.Dropped()
}

// Reset discards the partially filled block. Producer side only.
func (f *SampleFifo) Reset() {
	f.pending.Data = f.pending.Data[:0]
}
