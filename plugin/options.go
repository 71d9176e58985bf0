package plugin

import (
	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/dsp/relay"
	"github.com/sirupsen/logrus"
)

// Option configures a Store or a Processor.
type Option func(*config)

type config struct {
	logger        logrus.FieldLogger
	fftOrder      analysis.FFTOrder
	fifoBlockSize int
	relayCapacity int
}

func defaultConfig() config {
	return config{
		logger:        logrus.StandardLogger(),
		fftOrder:      analysis.Order2048,
		fifoBlockSize: analysis.DefaultBlockSize,
		relayCapacity: relay.DefaultCapacity,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLogger sets the logger for lifecycle events. A nil logger is ignored.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFFTOrder selects the analyzer FFT size. Unsupported orders are
// ignored.
func WithFFTOrder(order analysis.FFTOrder) Option {
	return func(c *config) {
		if order.Valid() {
			c.fftOrder = order
		}
	}
}

// WithAnalysisBlockSize sets the block length the audio thread relays to
// the analyzer.
func WithAnalysisBlockSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.fifoBlockSize = n
		}
	}
}

// WithRelayCapacity sets the slot count of every analysis relay.
func WithRelayCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.relayCapacity = n
		}
	}
}
