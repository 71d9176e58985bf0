package eq

import (
	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-simpleeq/dsp/filter/cascade"
	"github.com/cwbudde/algo-simpleeq/dsp/filter/design"
)

// CutCoefficients is the design of one cut filter: coefficients for every
// cascade slot and the number of leading slots that should be active.
// Slots past the designed order hold identity coefficients.
type CutCoefficients struct {
	Stages [cascade.MaxStages]biquad.Coefficients
	Active int
}

// MakePeakFilter designs the peaking band for s at sampleRate.
func MakePeakFilter(s ChainSettings, sampleRate float64) biquad.Coefficients {
	s = s.Sanitized(sampleRate)
	return design.Peak(s.PeakFreq, s.PeakGainDB, s.PeakQuality, sampleRate)
}

// MakeLowCutFilter designs the low-cut (Butterworth highpass) cascade.
func MakeLowCutFilter(s ChainSettings, sampleRate float64) CutCoefficients {
	s = s.Sanitized(sampleRate)
	return makeCut(design.ButterworthHPInto, s.LowCutFreq, s.LowCutSlope, sampleRate)
}

// MakeHighCutFilter designs the high-cut (Butterworth lowpass) cascade.
func MakeHighCutFilter(s ChainSettings, sampleRate float64) CutCoefficients {
	s = s.Sanitized(sampleRate)
	return makeCut(design.ButterworthLPInto, s.HighCutFreq, s.HighCutSlope, sampleRate)
}

type cutDesigner func(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int

func makeCut(designInto cutDesigner, freq float64, slope Slope, sampleRate float64) CutCoefficients {
	var cut CutCoefficients
	for i := range cut.Stages {
		cut.Stages[i] = biquad.Identity()
	}
	designInto(cut.Stages[:], freq, slope.Order(), sampleRate)
	cut.Active = slope.Stages()
	return cut
}
