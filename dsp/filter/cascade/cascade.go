// Package cascade implements the fixed four-slot biquad cascade behind the
// equalizer's cut filters.
//
// A Cascade always holds MaxStages sections. Only the first ActiveCount of
// them process audio; the rest are skipped. Coefficients are installed in
// every slot on each Configure, so reactivating a slot never runs stale
// coefficients.
package cascade

import (
	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad"
)

// MaxStages is the number of biquad slots in a Cascade.
const MaxStages = 4

// Cascade is a series of MaxStages biquad sections with per-slot active
// flags. Stages run in index order 0 to MaxStages-1. The zero value is a
// cascade with every slot inactive.
type Cascade struct {
	stages [MaxStages]biquad.Section
	active [MaxStages]bool
}

// Configure installs coeffs into all slots, keeping their delay lines, and
// activates slots [0, activeCount). activeCount is clamped to [0, MaxStages].
func (c *Cascade) Configure(coeffs [MaxStages]biquad.Coefficients, activeCount int) {
	activeCount = min(max(activeCount, 0), MaxStages)
	for i := range c.stages {
		c.stages[i].SetCoefficients(coeffs[i])
		c.active[i] = i < activeCount
	}
}

// SetActive toggles one slot. Out-of-range indices are ignored.
func (c *Cascade) SetActive(i int, active bool) {
	if i >= 0 && i < MaxStages {
		c.active[i] = active
	}
}

// IsActive reports whether slot i processes audio.
func (c *Cascade) IsActive(i int) bool {
	return i >= 0 && i < MaxStages && c.active[i]
}

// ActiveCount returns the number of active slots.
func (c *Cascade) ActiveCount() int {
	n := 0
	for _, a := range c.active {
		if a {
			n++
		}
	}
	return n
}

// Stage returns slot i for inspection. It panics if i is out of range.
func (c *Cascade) Stage(i int) *biquad.Section {
	return &c.stages[i]
}

// ProcessSample runs x through the active stages.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := range c.stages {
		if c.active[i] {
			x = c.stages[i].ProcessSample(x)
		}
	}
	return x
}

// ProcessBlock filters buf in place through the active stages. Zero-alloc.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range c.stages {
		if c.active[i] {
			c.stages[i].ProcessBlock(buf)
		}
	}
}

// FlushDenormals flushes tiny delay-line values in every slot.
func (c *Cascade) FlushDenormals() {
	for i := range c.stages {
		c.stages[i].FlushDenormals()
	}
}

// Reset clears the delay lines of every slot. Active flags and
// coefficients are kept.
func (c *Cascade) Reset() {
	for i := range c.stages {
		c.stages[i].Reset()
	}
}

// Magnitude returns the linear magnitude response at freqHz as the product
// over active stages. An all-inactive cascade returns 1.
func (c *Cascade) Magnitude(freqHz, sampleRate float64) float64 {
	mag := 1.0
	for i := range c.stages {
		if c.active[i] {
			mag *= c.stages[i].Magnitude(freqHz, sampleRate)
		}
	}
	return mag
}
