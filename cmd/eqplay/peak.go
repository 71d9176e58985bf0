package main

import (
	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/dsp/core"
)

// spectrumPeak reads the loudest vertex of a path drawn by a
// PathGenerator back into frequency and level.
func spectrumPeak(p *analysis.Path, bounds analysis.Rect, floorDB float64) (freq, levelDB float64, ok bool) {
	if p.Len() < 2 || bounds.Width <= 0 {
		return 0, 0, false
	}

	// Vertex 0 is the DC bin pinned to the left edge.
	best := p.Points[1]
	for _, pt := range p.Points[2:] {
		if pt.Y < best.Y {
			best = pt
		}
	}

	prop := (best.X - bounds.X) / bounds.Width
	freq = core.MapToLog10(prop, analysis.MinDisplayFrequency, analysis.MaxDisplayFrequency)
	levelDB = core.Jmap(best.Y, bounds.Bottom(), bounds.Y, floorDB, 0)
	return freq, levelDB, true
}
