package analysis

import (
	"github.com/cwbudde/algo-simpleeq/dsp/relay"
)

// PathProducer drives one channel's analysis on the polling goroutine:
// block relay into Analyzer, frames into PathGenerator, paths into a path
// relay from which the renderer takes the newest. Process and Path must be
// called from the same goroutine.
type PathProducer struct {
	blocks   *relay.Relay[relay.Block]
	analyzer *Analyzer
	gen      PathGenerator
	paths    *relay.Relay[Path]

	block relay.Block
	frame Frame
	path  Path
}

// NewPathProducer wires blocks (relaying blocks of up to blockSize samples)
// to analyzer.
func NewPathProducer(blocks *relay.Relay[relay.Block], blockSize int, analyzer *Analyzer) *PathProducer {
	gen := NewPathGenerator()
	gen.FloorDB = analyzer.FloorDB()
	capacity := gen.Capacity(analyzer.NumBins())

	return &PathProducer{
		blocks:   blocks,
		analyzer: analyzer,
		gen:      gen,
		paths: relay.New[Path](relay.DefaultCapacity,
			relay.WithSlotInit(func(p *Path) { *p = NewPath(capacity) }),
			relay.WithCopy(CopyPath),
		),
		block: relay.NewBlock(blockSize),
		frame: NewFrame(analyzer.FFTSize()),
		path:  NewPath(capacity),
	}
}

// Analyzer returns the producer's analyzer.
func (p *PathProducer) Analyzer() *Analyzer { return p.analyzer }

// Process drains every pending block and frame and queues one path per
// frame. It returns the number of paths generated.
func (p *PathProducer) Process(bounds Rect) int {
	for p.blocks.Pull(&p.block) {
		p.analyzer.Process(p.block.Data)
	}

	n := 0
	for p.analyzer.Frames().Pull(&p.frame) {
		p.gen.Generate(&p.frame, bounds, &p.path)
		if !p.paths.Push(&p.path) {
			// Stale paths are worthless; make room for the newest.
			p.paths.Reset()
			p.paths.Push(&p.path)
		}
		n++
	}
	return n
}

// Path drains queued paths into dst, keeping only the newest. It reports
// false and leaves dst unchanged when nothing new arrived.
func (p *PathProducer) Path(dst *Path) bool {
	return p.paths.Latest(dst)
}

// NewPathBuffer returns a Path sized for this producer's output.
func (p *PathProducer) NewPathBuffer() Path {
	return NewPath(cap(p.path.Points))
}

// Reset discards queued blocks, frames and paths and clears the analyzer
// history.
func (p *PathProducer) Reset() {
	p.blocks.Reset()
	p.analyzer.Reset()
	p.paths.Reset()
}
