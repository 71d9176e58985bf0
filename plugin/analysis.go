package plugin

import (
	"context"
	"time"

	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/sirupsen/logrus"
)

// DefaultPollInterval is the refresh period of Run: 60 Hz.
const DefaultPollInterval = time.Second / 60

// Analysis is the polling side of the spectrum pipeline: one path producer
// per channel. All methods belong to a single polling goroutine.
type Analysis struct {
	left, right *analysis.PathProducer
	leftPath    analysis.Path
	rightPath   analysis.Path

	log logrus.FieldLogger
}

func newAnalysis(cfg config, sampleRate float64, leftFifo, rightFifo *analysis.SampleFifo) (*Analysis, error) {
	producer := func(fifo *analysis.SampleFifo) (*analysis.PathProducer, error) {
		an, err := analysis.NewAnalyzer(cfg.fftOrder, sampleRate,
			analysis.WithFrameCapacity(cfg.relayCapacity))
		if err != nil {
			return nil, err
		}
		return analysis.NewPathProducer(fifo.Relay(), fifo.BlockSize(), an), nil
	}

	left, err := producer(leftFifo)
	if err != nil {
		return nil, err
	}
	right, err := producer(rightFifo)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		left:      left,
		right:     right,
		leftPath:  left.NewPathBuffer(),
		rightPath: right.NewPathBuffer(),
		log:       cfg.logger,
	}, nil
}

// Poll drains both channels' relays and generates paths for bounds. It
// returns the number of paths generated.
func (a *Analysis) Poll(bounds analysis.Rect) int {
	return a.left.Process(bounds) + a.right.Process(bounds)
}

// LeftPath copies the newest left-channel path into dst. It reports false
// when no new path arrived since the last call.
func (a *Analysis) LeftPath(dst *analysis.Path) bool { return a.left.Path(dst) }

// RightPath is LeftPath for the right channel.
func (a *Analysis) RightPath(dst *analysis.Path) bool { return a.right.Path(dst) }

// NewPathBuffer returns a Path large enough for either channel.
func (a *Analysis) NewPathBuffer() analysis.Path { return a.left.NewPathBuffer() }

// Reset discards everything queued on the polling side.
func (a *Analysis) Reset() {
	a.left.Reset()
	a.right.Reset()
}

// Run polls every interval until ctx is done, calling fn whenever either
// channel produced a new path. The paths passed to fn are reused between
// calls. A non-positive interval selects DefaultPollInterval. Run returns
// ctx.Err().
func (a *Analysis) Run(ctx context.Context, interval time.Duration, bounds analysis.Rect, fn func(left, right *analysis.Path)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.log.WithFields(logrus.Fields{
		"interval": interval,
	}).Debug("plugin: analysis started")

	for {
		select {
		case <-ctx.Done():
			a.log.Debug("plugin: analysis stopped")
			return ctx.Err()
		case <-ticker.C:
			a.Poll(bounds)
			gotLeft := a.LeftPath(&a.leftPath)
			gotRight := a.RightPath(&a.rightPath)
			if (gotLeft || gotRight) && fn != nil {
				fn(&a.leftPath, &a.rightPath)
			}
		}
	}
}
