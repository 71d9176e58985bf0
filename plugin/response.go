package plugin

import (
	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/dsp/core"
	"github.com/cwbudde/algo-simpleeq/dsp/eq"
)

// Vertical range of the response display.
const (
	ResponseMinDB = -24.0
	ResponseMaxDB = 24.0
)

const responseFloorDB = -100.0

// ResponseCurve computes the equalizer's magnitude response for display.
// It owns a private chain configured from store snapshots, so it never
// reads the processor's filter state.
type ResponseCurve struct {
	chain      *eq.ChannelChain
	sampleRate float64
	version    uint64
	synced     bool
	mags       []float64
}

// NewResponseCurve returns a flat curve at 44.1 kHz.
func NewResponseCurve() *ResponseCurve {
	return &ResponseCurve{
		chain:      eq.NewChannelChain(),
		sampleRate: core.DefaultProcessorConfig().SampleRate,
	}
}

// Update configures the curve from settings at sampleRate.
func (r *ResponseCurve) Update(settings eq.ChainSettings, sampleRate float64) {
	if sampleRate > 0 && core.IsFinite(sampleRate) {
		r.sampleRate = sampleRate
	}
	r.chain.UpdateAll(settings, r.sampleRate)
}

// Sync updates the curve when store has published since the last Sync or
// the sample rate changed. It reports whether an update happened.
func (r *ResponseCurve) Sync(store *Store, sampleRate float64) bool {
	v := store.Version()
	if r.synced && v == r.version && sampleRate == r.sampleRate {
		return false
	}

	r.Update(store.Settings(), sampleRate)
	r.version = v
	r.synced = true
	return true
}

// MagnitudeDB returns the response at freqHz in decibels.
func (r *ResponseCurve) MagnitudeDB(freqHz float64) float64 {
	return core.GainToDB(r.chain.Magnitude(freqHz, r.sampleRate), responseFloorDB)
}

// Magnitudes fills dst with the response in decibels at len(dst) points
// spaced logarithmically from 20 Hz to 20 kHz, one per pixel column.
func (r *ResponseCurve) Magnitudes(dst []float64) {
	n := float64(len(dst))
	for i := range dst {
		freq := core.MapToLog10(float64(i)/n, eq.MinFrequency, eq.MaxFrequency)
		dst[i] = r.MagnitudeDB(freq)
	}
}

// Path writes one vertex per pixel column of bounds into dst, mapping
// ResponseMinDB to the bottom edge and ResponseMaxDB to the top.
func (r *ResponseCurve) Path(bounds analysis.Rect, dst *analysis.Path) {
	width := max(int(bounds.Width), 0)
	r.mags = core.EnsureLen(r.mags, width)
	r.Magnitudes(r.mags)

	dst.Points = dst.Points[:0]
	for i, m := range r.mags {
		dst.Points = append(dst.Points, analysis.Point{
			X: bounds.X + float64(i),
			Y: core.Jmap(m, ResponseMinDB, ResponseMaxDB, bounds.Bottom(), bounds.Y),
		})
	}
}
