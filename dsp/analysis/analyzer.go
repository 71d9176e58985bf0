package analysis

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-simpleeq/dsp/core"
	"github.com/cwbudde/algo-simpleeq/dsp/relay"
	"github.com/cwbudde/algo-simpleeq/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// FFTOrder is log2 of the analyzer's FFT size.
type FFTOrder int

// Supported FFT sizes.
const (
	Order2048 FFTOrder = 11
	Order4096 FFTOrder = 12
)

// Size returns the FFT length in samples.
func (o FFTOrder) Size() int {
	return 1 << o
}

// Valid reports whether o is supported.
func (o FFTOrder) Valid() bool {
	return o == Order2048 || o == Order4096
}

// DefaultFloorDB is the lowest level a bin can report.
const DefaultFloorDB = -48.0

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	floorDB       float64
	frameCapacity int
	windowType    window.Type
}

// WithFloorDB sets the decibel floor. Values >= 0 are ignored.
func WithFloorDB(db float64) AnalyzerOption {
	return func(c *analyzerConfig) {
		if db < 0 {
			c.floorDB = db
		}
	}
}

// WithFrameCapacity sets how many frames the output relay holds.
func WithFrameCapacity(n int) AnalyzerOption {
	return func(c *analyzerConfig) {
		if n > 0 {
			c.frameCapacity = n
		}
	}
}

// WithWindow selects the analysis window. Blackman-Harris is the default.
func WithWindow(t window.Type) AnalyzerOption {
	return func(c *analyzerConfig) {
		c.windowType = t
	}
}

// Analyzer maintains a sliding history of the newest FFT-size samples and
// emits one Frame per processed block once the history is full. It belongs
// to the polling goroutine and allocates only in NewAnalyzer.
type Analyzer struct {
	size       int
	sampleRate float64
	floorDB    float64

	history []float64
	primed  int

	win     []float64
	scratch []float64
	in, out []complex128
	re, im  []float64
	mag     []float64

	plan   *algofft.Plan[complex128]
	frame  Frame
	frames *relay.Relay[Frame]
}

// NewAnalyzer builds an analyzer for the given FFT order and sample rate.
func NewAnalyzer(order FFTOrder, sampleRate float64, opts ...AnalyzerOption) (*Analyzer, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTOrder, int(order))
	}
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := analyzerConfig{
		floorDB:       DefaultFloorDB,
		frameCapacity: relay.DefaultCapacity,
		windowType:    window.TypeBlackmanHarris4Term,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	size := order.Size()
	bins := size / 2

	win := window.Generate(cfg.windowType, size, window.WithNormalize())
	if win == nil {
		return nil, fmt.Errorf("analysis: window %v unavailable for size %d", cfg.windowType, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analysis: fft plan: %w", err)
	}

	a := &Analyzer{
		size:       size,
		sampleRate: sampleRate,
		floorDB:    cfg.floorDB,
		history:    make([]float64, size),
		win:        win,
		scratch:    make([]float64, size),
		in:         make([]complex128, size),
		out:        make([]complex128, size),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mag:        make([]float64, bins),
		plan:       plan,
		frame:      NewFrame(size),
		frames: relay.New[Frame](cfg.frameCapacity,
			relay.WithSlotInit(func(f *Frame) { *f = NewFrame(size) }),
			relay.WithCopy(CopyFrame),
		),
	}
	return a, nil
}

// FFTSize returns the transform length.
func (a *Analyzer) FFTSize() int { return a.size }

// NumBins returns the number of bins per frame.
func (a *Analyzer) NumBins() int { return a.size / 2 }

// FloorDB returns the decibel floor.
func (a *Analyzer) FloorDB() float64 { return a.floorDB }

// Frames returns the relay the analyzer emits into.
func (a *Analyzer) Frames() *relay.Relay[Frame] { return a.frames }

// SetSampleRate updates the rate stamped on emitted frames.
func (a *Analyzer) SetSampleRate(sampleRate float64) {
	if sampleRate > 0 && core.IsFinite(sampleRate) {
		a.sampleRate = sampleRate
	}
}

// Process slides block into the history and, once FFT-size samples have
// arrived, analyzes the window and pushes a frame. It reports whether a
// frame was emitted; a full frame relay drops the frame.
func (a *Analyzer) Process(block []float64) bool {
	if len(block) == 0 {
		return false
	}

	core.ShiftAppend(a.history, block)
	if a.primed < a.size {
		a.primed = min(a.size, a.primed+len(block))
		if a.primed < a.size {
			return false
		}
	}

	if !a.compute(&a.frame) {
		return false
	}
	return a.frames.Push(&a.frame)
}

// Reset clears the history and pending frames.
func (a *Analyzer) Reset() {
	core.Zero(a.history)
	a.primed = 0
	a.frames.Reset()
}

func (a *Analyzer) compute(dst *Frame) bool {
	copy(a.scratch, a.history)
	if err := window.Apply(a.scratch, a.win); err != nil {
		return false
	}

	for i, x := range a.scratch {
		a.in[i] = complex(x, 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return false
	}

	bins := a.size / 2
	for i := range bins {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	vecmath.Magnitude(a.mag, a.re, a.im)

	dst.Bins = dst.Bins[:bins]
	norm := 1 / float64(bins)
	for i, m := range a.mag {
		m *= norm
		if !core.IsFinite(m) {
			m = 0
		}
		dst.Bins[i] = core.GainToDB(m, a.floorDB)
	}

	dst.FFTSize = a.size
	dst.SampleRate = a.sampleRate
	return true
}
