package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-simpleeq/dsp/filter/cascade"
)

// ChainPosition identifies one band of a ChannelChain.
type ChainPosition int

// Bands in processing order.
const (
	PositionLowCut ChainPosition = iota
	PositionPeak
	PositionHighCut

	numPositions
)

func (p ChainPosition) String() string {
	switch p {
	case PositionLowCut:
		return "LowCut"
	case PositionPeak:
		return "Peak"
	case PositionHighCut:
		return "HighCut"
	default:
		return fmt.Sprintf("ChainPosition(%d)", int(p))
	}
}

// ChannelChain is the filter chain for one audio channel. It is owned by a
// single goroutine; nothing in it is synchronized.
type ChannelChain struct {
	lowCut  cascade.Cascade
	peak    biquad.Section
	highCut cascade.Cascade

	bypassed [numPositions]bool
}

// NewChannelChain returns a chain that passes audio through unchanged until
// UpdateAll installs real settings.
func NewChannelChain() *ChannelChain {
	return &ChannelChain{peak: *biquad.NewSection(biquad.Identity())}
}

// LowCut returns the low-cut cascade.
func (c *ChannelChain) LowCut() *cascade.Cascade { return &c.lowCut }

// Peak returns the peaking section.
func (c *ChannelChain) Peak() *biquad.Section { return &c.peak }

// HighCut returns the high-cut cascade.
func (c *ChannelChain) HighCut() *cascade.Cascade { return &c.highCut }

// SetBypassed sets the bypass flag of one band.
func (c *ChannelChain) SetBypassed(pos ChainPosition, bypassed bool) {
	if pos >= 0 && pos < numPositions {
		c.bypassed[pos] = bypassed
	}
}

// IsBypassed reports whether a band is skipped.
func (c *ChannelChain) IsBypassed(pos ChainPosition) bool {
	return pos >= 0 && pos < numPositions && c.bypassed[pos]
}

// UpdateAll retunes every band from s and applies the bypass flags. Delay
// lines are kept, so repeated calls with the same settings are no-ops on
// the audio. Zero-alloc.
func (c *ChannelChain) UpdateAll(s ChainSettings, sampleRate float64) {
	c.peak.SetCoefficients(MakePeakFilter(s, sampleRate))

	low := MakeLowCutFilter(s, sampleRate)
	c.lowCut.Configure(low.Stages, low.Active)

	high := MakeHighCutFilter(s, sampleRate)
	c.highCut.Configure(high.Stages, high.Active)

	c.bypassed[PositionLowCut] = s.LowCutBypassed
	c.bypassed[PositionPeak] = s.PeakBypassed
	c.bypassed[PositionHighCut] = s.HighCutBypassed
}

// ProcessSample runs one sample through LowCut, Peak and HighCut.
func (c *ChannelChain) ProcessSample(x float64) float64 {
	if !c.bypassed[PositionLowCut] {
		x = c.lowCut.ProcessSample(x)
	}
	if !c.bypassed[PositionPeak] {
		x = c.peak.ProcessSample(x)
	}
	if !c.bypassed[PositionHighCut] {
		x = c.highCut.ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place and flushes denormal state once at the
// end of the block. Zero-alloc.
func (c *ChannelChain) ProcessBlock(buf []float64) {
	if !c.bypassed[PositionLowCut] {
		c.lowCut.ProcessBlock(buf)
	}
	if !c.bypassed[PositionPeak] {
		c.peak.ProcessBlock(buf)
	}
	if !c.bypassed[PositionHighCut] {
		c.highCut.ProcessBlock(buf)
	}

	c.lowCut.FlushDenormals()
	c.peak.FlushDenormals()
	c.highCut.FlushDenormals()
}

// Reset clears every delay line. Coefficients and bypass flags are kept.
func (c *ChannelChain) Reset() {
	c.lowCut.Reset()
	c.peak.Reset()
	c.highCut.Reset()
}

// Magnitude returns the chain's linear magnitude response at freqHz: the
// product of every non-bypassed band.
func (c *ChannelChain) Magnitude(freqHz, sampleRate float64) float64 {
	mag := 1.0
	if !c.bypassed[PositionLowCut] {
		mag *= c.lowCut.Magnitude(freqHz, sampleRate)
	}
	if !c.bypassed[PositionPeak] {
		mag *= c.peak.Magnitude(freqHz, sampleRate)
	}
	if !c.bypassed[PositionHighCut] {
		mag *= c.highCut.Magnitude(freqHz, sampleRate)
	}
	return mag
}

// MagnitudeDB returns Magnitude in decibels.
func (c *ChannelChain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(c.Magnitude(freqHz, sampleRate))
}

// ImpulseResponse returns n samples of the chain's impulse response. The
// delay lines are saved and restored around the measurement.
func (c *ChannelChain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := *c
	c.Reset()

	ir := make([]float64, n)
	ir[0] = 1
	c.ProcessBlock(ir)

	*c = saved
	return ir
}
