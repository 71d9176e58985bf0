package eq

import "github.com/cwbudde/algo-simpleeq/dsp/core"

// Control ranges.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0

	MinGainDB = -24.0
	MaxGainDB = 24.0

	MinQuality = 0.1
	MaxQuality = 10.0

	// NyquistGuard is the fraction of the sample rate no band frequency may
	// exceed, keeping designs clear of the Nyquist singularity.
	NyquistGuard = 0.49
)

// ChainSettings is one immutable snapshot of every equalizer control.
type ChainSettings struct {
	PeakFreq    float64
	PeakGainDB  float64
	PeakQuality float64

	LowCutFreq  float64
	HighCutFreq float64

	LowCutSlope  Slope
	HighCutSlope Slope

	LowCutBypassed  bool
	PeakBypassed    bool
	HighCutBypassed bool

	AnalyzerEnabled bool
}

// DefaultChainSettings returns the control defaults: cuts wide open at
// 12 dB/Oct, a flat 750 Hz peak with Q 1, and the analyzer on.
func DefaultChainSettings() ChainSettings {
	return ChainSettings{
		PeakFreq:        750,
		PeakGainDB:      0,
		PeakQuality:     1,
		LowCutFreq:      MinFrequency,
		HighCutFreq:     MaxFrequency,
		LowCutSlope:     Slope12,
		HighCutSlope:    Slope12,
		AnalyzerEnabled: true,
	}
}

// Sanitized returns a copy of s with every value forced into its legal
// range for the given sample rate. Frequencies are additionally kept below
// NyquistGuard*sampleRate.
func (s ChainSettings) Sanitized(sampleRate float64) ChainSettings {
	s.PeakFreq = clampFrequency(s.PeakFreq, sampleRate)
	s.LowCutFreq = clampFrequency(s.LowCutFreq, sampleRate)
	s.HighCutFreq = clampFrequency(s.HighCutFreq, sampleRate)
	s.PeakGainDB = core.Clamp(s.PeakGainDB, MinGainDB, MaxGainDB)
	s.PeakQuality = core.Clamp(s.PeakQuality, MinQuality, MaxQuality)
	s.LowCutSlope = s.LowCutSlope.Clamp()
	s.HighCutSlope = s.HighCutSlope.Clamp()
	return s
}

func clampFrequency(freq, sampleRate float64) float64 {
	hi := MaxFrequency
	if sampleRate > 0 && core.IsFinite(sampleRate) {
		hi = min(hi, NyquistGuard*sampleRate)
	}
	return core.Clamp(freq, MinFrequency, hi)
}
