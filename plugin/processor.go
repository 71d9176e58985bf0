package plugin

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/dsp/core"
	"github.com/cwbudde/algo-simpleeq/dsp/eq"
	"github.com/sirupsen/logrus"
)

// Processor is the real-time stereo equalizer. Prepare and Release run on
// the host's control thread; ProcessBlock runs on the audio thread and must
// not overlap them. ProcessBlock never allocates, locks or blocks.
type Processor struct {
	store *Store
	cfg   config
	log   logrus.FieldLogger

	proc       core.ProcessorConfig
	prepared   bool
	analyzerOn bool

	left, right         *eq.ChannelChain
	leftFifo, rightFifo *analysis.SampleFifo

	analysis atomic.Pointer[Analysis]
}

// New returns a processor reading its controls from store. A nil store is
// replaced by a fresh one with default settings.
func New(store *Store, opts ...Option) *Processor {
	cfg := applyOptions(opts)
	if store == nil {
		store = NewStore(WithLogger(cfg.logger))
	}

	return &Processor{
		store: store,
		cfg:   cfg,
		log:   cfg.logger,
		proc:  core.DefaultProcessorConfig(),
		left:  eq.NewChannelChain(),
		right: eq.NewChannelChain(),
	}
}

// Store returns the processor's control store.
func (p *Processor) Store() *Store { return p.store }

// Prepare readies the processor for a stream at sampleRate with blocks of
// at most maxBlockSize samples. It clears every delay line, recomputes all
// coefficients and builds fresh analysis FIFOs. It is the only method that
// allocates.
func (p *Processor) Prepare(sampleRate float64, maxBlockSize int) error {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}

	p.proc = core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithBlockSize(maxBlockSize),
	)

	p.store.ConsumeDirty()
	settings := p.store.Settings()
	for _, c := range [...]*eq.ChannelChain{p.left, p.right} {
		c.Reset()
		c.UpdateAll(settings, sampleRate)
	}
	p.analyzerOn = settings.AnalyzerEnabled

	p.leftFifo = analysis.NewSampleFifo(p.cfg.fifoBlockSize, p.cfg.relayCapacity)
	p.rightFifo = analysis.NewSampleFifo(p.cfg.fifoBlockSize, p.cfg.relayCapacity)

	a, err := newAnalysis(p.cfg, sampleRate, p.leftFifo, p.rightFifo)
	if err != nil {
		p.prepared = false
		return fmt.Errorf("plugin: prepare analysis: %w", err)
	}
	p.analysis.Store(a)
	p.prepared = true

	p.log.WithFields(logrus.Fields{
		"sample_rate":    sampleRate,
		"max_block_size": maxBlockSize,
		"fft_size":       p.cfg.fftOrder.Size(),
	}).Info("plugin: prepared")
	return nil
}

// ProcessBlock filters left and right in place. When right is nil only the
// left chain runs. Buffers longer than the prepared block size are handled
// in chunks. Calls before Prepare pass audio through untouched.
func (p *Processor) ProcessBlock(left, right []float64) {
	if !p.prepared {
		return
	}

	if p.store.ConsumeDirty() {
		settings := p.store.Settings()
		p.left.UpdateAll(settings, p.proc.SampleRate)
		p.right.UpdateAll(settings, p.proc.SampleRate)
		p.analyzerOn = settings.AnalyzerEnabled
	}

	p.processChannel(p.left, p.leftFifo, left)
	if right != nil {
		p.processChannel(p.right, p.rightFifo, right)
	}
}

func (p *Processor) processChannel(chain *eq.ChannelChain, fifo *analysis.SampleFifo, buf []float64) {
	for len(buf) > 0 {
		n := min(len(buf), p.proc.BlockSize)
		chunk := buf[:n]
		chain.ProcessBlock(chunk)
		if p.analyzerOn {
			fifo.Push(chunk)
		}
		buf = buf[n:]
	}
}

// Release ends the stream. Delay lines are cleared and ProcessBlock becomes
// a pass-through until the next Prepare.
func (p *Processor) Release() {
	p.prepared = false
	p.left.Reset()
	p.right.Reset()

	p.log.WithFields(logrus.Fields{
		"dropped_blocks": p.Dropped(),
	}).Info("plugin: released")
}

// Prepared reports whether Prepare succeeded since the last Release.
func (p *Processor) Prepared() bool { return p.prepared }

// SampleRate returns the prepared sample rate.
func (p *Processor) SampleRate() float64 { return p.proc.SampleRate }

// MaxBlockSize returns the prepared block size.
func (p *Processor) MaxBlockSize() int { return p.proc.BlockSize }

// Analysis returns the polling-side analysis built by the latest Prepare,
// or nil before the first Prepare. It is safe from any goroutine.
func (p *Processor) Analysis() *Analysis { return p.analysis.Load() }

// Dropped returns how many analysis blocks were lost to full relays.
func (p *Processor) Dropped() uint64 {
	var n uint64
	if p.leftFifo != nil {
		n += p.leftFifo.Dropped()
	}
	if p.rightFifo != nil {
		n += p.rightFifo.Dropped()
	}
	return n
}
