package plugin

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-simpleeq/dsp/core"
	"github.com/cwbudde/algo-simpleeq/dsp/eq"
)

// Control IDs.
const (
	ParamLowCutFreq      = "LowCut Freq"
	ParamHighCutFreq     = "HighCut Freq"
	ParamPeakFreq        = "Peak Freq"
	ParamPeakGain        = "Peak Gain"
	ParamPeakQuality     = "Peak Quality"
	ParamLowCutSlope     = "LowCut Slope"
	ParamHighCutSlope    = "HighCut Slope"
	ParamLowCutBypassed  = "LowCut Bypassed"
	ParamPeakBypassed    = "Peak Bypassed"
	ParamHighCutBypassed = "HighCut Bypassed"
	ParamAnalyzerEnabled = "Analyzer Enabled"
)

// Range maps a control's plain values onto [0, 1]. Skew below 1 spends
// more of the normalized range on the low end; Interval snaps plain values
// to a grid anchored at Min.
type Range struct {
	Min, Max float64
	Interval float64
	Skew     float64
}

// ToNormalized converts a plain value to [0, 1].
func (r Range) ToNormalized(plain float64) float64 {
	if r.Max <= r.Min {
		return 0
	}

	p := core.Clamp((plain-r.Min)/(r.Max-r.Min), 0, 1)
	if r.Skew > 0 && r.Skew != 1 {
		p = math.Pow(p, r.Skew)
	}
	return p
}

// FromNormalized converts a value in [0, 1] to a plain value. The result is
// not snapped.
func (r Range) FromNormalized(norm float64) float64 {
	p := core.Clamp(norm, 0, 1)
	if r.Skew > 0 && r.Skew != 1 && p > 0 {
		p = math.Exp(math.Log(p) / r.Skew)
	}
	return r.Min + (r.Max-r.Min)*p
}

// Snap rounds plain to the interval grid and clamps it into the range.
// Snapped values are rounded to the interval's decimal places, so a 0.05
// grid yields exactly 3 rather than 3.0000000000000004.
func (r Range) Snap(plain float64) float64 {
	if r.Interval > 0 {
		plain = r.Min + r.Interval*math.Floor((plain-r.Min)/r.Interval+0.5)
		if d := decimalPlaces(r.Interval); d > 0 {
			scale := math.Pow(10, float64(d))
			plain = math.Round(plain*scale) / scale
		}
	}
	return core.Clamp(plain, r.Min, r.Max)
}

func decimalPlaces(x float64) int {
	scale := 1.0
	for d := range 10 {
		v := x * scale
		if math.Abs(v-math.Round(v)) < 1e-9 {
			return d
		}
		scale *= 10
	}
	return 10
}

// Kind classifies a control.
type Kind int

// Control kinds.
const (
	KindFloat Kind = iota
	KindChoice
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindChoice:
		return "choice"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Parameter describes one control. Choice and bool controls carry their
// index or 0/1 as the plain value.
type Parameter struct {
	ID      string
	Kind    Kind
	Unit    string
	Range   Range
	Default float64
	Choices []string

	get func(*eq.ChainSettings) float64
	set func(*eq.ChainSettings, float64)
}

// Normalize converts plain to the parameter's normalized value.
func (p Parameter) Normalize(plain float64) float64 {
	return p.Range.ToNormalized(p.Range.Snap(plain))
}

// Denormalize converts a normalized value to a snapped plain value.
func (p Parameter) Denormalize(norm float64) float64 {
	return p.Range.Snap(p.Range.FromNormalized(norm))
}

// Format renders a plain value for display.
func (p Parameter) Format(plain float64) string {
	plain = p.Range.Snap(plain)
	switch p.Kind {
	case KindChoice:
		return p.Choices[int(plain)]
	case KindBool:
		if plain >= 0.5 {
			return "On"
		}
		return "Off"
	}

	if p.Unit == "Hz" && plain >= 1000 {
		return fmt.Sprintf("%.2f kHz", plain/1000)
	}
	if p.Unit == "" {
		return fmt.Sprintf("%.2f", plain)
	}
	return fmt.Sprintf("%.1f %s", plain, p.Unit)
}

func frequencyParam(id string, def float64, get func(*eq.ChainSettings) *float64) Parameter {
	return Parameter{
		ID:      id,
		Kind:    KindFloat,
		Unit:    "Hz",
		Range:   Range{Min: eq.MinFrequency, Max: eq.MaxFrequency, Interval: 1, Skew: 0.25},
		Default: def,
		get:     func(s *eq.ChainSettings) float64 { return *get(s) },
		set:     func(s *eq.ChainSettings, v float64) { *get(s) = v },
	}
}

func slopeParam(id string, get func(*eq.ChainSettings) *eq.Slope) Parameter {
	slopes := eq.Slopes()
	choices := make([]string, len(slopes))
	for i, s := range slopes {
		choices[i] = s.String()
	}

	return Parameter{
		ID:      id,
		Kind:    KindChoice,
		Range:   Range{Min: 0, Max: float64(len(slopes) - 1), Interval: 1, Skew: 1},
		Default: float64(eq.Slope12),
		Choices: choices,
		get:     func(s *eq.ChainSettings) float64 { return float64(*get(s)) },
		set:     func(s *eq.ChainSettings, v float64) { *get(s) = eq.Slope(v).Clamp() },
	}
}

func boolParam(id string, def bool, get func(*eq.ChainSettings) *bool) Parameter {
	d := 0.0
	if def {
		d = 1
	}

	return Parameter{
		ID:      id,
		Kind:    KindBool,
		Range:   Range{Min: 0, Max: 1, Interval: 1, Skew: 1},
		Default: d,
		get: func(s *eq.ChainSettings) float64 {
			if *get(s) {
				return 1
			}
			return 0
		},
		set: func(s *eq.ChainSettings, v float64) { *get(s) = v >= 0.5 },
	}
}

// parameterLayout returns every control in host order.
func parameterLayout() []Parameter {
	def := eq.DefaultChainSettings()

	return []Parameter{
		frequencyParam(ParamLowCutFreq, def.LowCutFreq, func(s *eq.ChainSettings) *float64 { return &s.LowCutFreq }),
		frequencyParam(ParamHighCutFreq, def.HighCutFreq, func(s *eq.ChainSettings) *float64 { return &s.HighCutFreq }),
		frequencyParam(ParamPeakFreq, def.PeakFreq, func(s *eq.ChainSettings) *float64 { return &s.PeakFreq }),
		{
			ID:      ParamPeakGain,
			Kind:    KindFloat,
			Unit:    "dB",
			Range:   Range{Min: eq.MinGainDB, Max: eq.MaxGainDB, Interval: 0.1, Skew: 1},
			Default: def.PeakGainDB,
			get:     func(s *eq.ChainSettings) float64 { return s.PeakGainDB },
			set:     func(s *eq.ChainSettings, v float64) { s.PeakGainDB = v },
		},
		{
			ID:      ParamPeakQuality,
			Kind:    KindFloat,
			Range:   Range{Min: eq.MinQuality, Max: eq.MaxQuality, Interval: 0.05, Skew: 1},
			Default: def.PeakQuality,
			get:     func(s *eq.ChainSettings) float64 { return s.PeakQuality },
			set:     func(s *eq.ChainSettings, v float64) { s.PeakQuality = v },
		},
		slopeParam(ParamLowCutSlope, func(s *eq.ChainSettings) *eq.Slope { return &s.LowCutSlope }),
		slopeParam(ParamHighCutSlope, func(s *eq.ChainSettings) *eq.Slope { return &s.HighCutSlope }),
		boolParam(ParamLowCutBypassed, def.LowCutBypassed, func(s *eq.ChainSettings) *bool { return &s.LowCutBypassed }),
		boolParam(ParamPeakBypassed, def.PeakBypassed, func(s *eq.ChainSettings) *bool { return &s.PeakBypassed }),
		boolParam(ParamHighCutBypassed, def.HighCutBypassed, func(s *eq.ChainSettings) *bool { return &s.HighCutBypassed }),
		boolParam(ParamAnalyzerEnabled, def.AnalyzerEnabled, func(s *eq.ChainSettings) *bool { return &s.AnalyzerEnabled }),
	}
}
