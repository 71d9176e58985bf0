// Package eqflags binds the equalizer controls to command-line flags.
package eqflags

import (
	"flag"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-simpleeq/dsp/eq"
	"github.com/cwbudde/algo-simpleeq/plugin"
)

// Values holds the parsed control flags.
type Values struct {
	PeakFreq     float64
	PeakGain     float64
	PeakQuality  float64
	LowCutFreq   float64
	LowCutSlope  string
	HighCutFreq  float64
	HighCutSlope string
	Bypass       string
}

// Register defines the control flags on fs with the store defaults.
func Register(fs *flag.FlagSet) *Values {
	def := eq.DefaultChainSettings()
	v := &Values{}
	fs.Float64Var(&v.PeakFreq, "peak-freq", def.PeakFreq, "peak band centre frequency in Hz")
	fs.Float64Var(&v.PeakGain, "peak-gain", def.PeakGainDB, "peak band gain in dB (-24..24)")
	fs.Float64Var(&v.PeakQuality, "peak-q", def.PeakQuality, "peak band quality (0.1..10)")
	fs.Float64Var(&v.LowCutFreq, "lowcut", def.LowCutFreq, "low-cut frequency in Hz")
	fs.StringVar(&v.LowCutSlope, "lowcut-slope", "12", "low-cut slope in dB/Oct: 12|24|36|48")
	fs.Float64Var(&v.HighCutFreq, "highcut", def.HighCutFreq, "high-cut frequency in Hz")
	fs.StringVar(&v.HighCutSlope, "highcut-slope", "12", "high-cut slope in dB/Oct: 12|24|36|48")
	fs.StringVar(&v.Bypass, "bypass", "", "bands to bypass: any of lowcut,peak,highcut")
	return v
}

// Apply writes the values into store.
func (v *Values) Apply(store *plugin.Store) error {
	lowSlope, err := eq.ParseSlope(v.LowCutSlope)
	if err != nil {
		return fmt.Errorf("lowcut-slope: %w", err)
	}
	highSlope, err := eq.ParseSlope(v.HighCutSlope)
	if err != nil {
		return fmt.Errorf("highcut-slope: %w", err)
	}
	bypass, err := parseBypass(v.Bypass)
	if err != nil {
		return err
	}

	controls := []struct {
		id    string
		value float64
	}{
		{plugin.ParamPeakFreq, v.PeakFreq},
		{plugin.ParamPeakGain, v.PeakGain},
		{plugin.ParamPeakQuality, v.PeakQuality},
		{plugin.ParamLowCutFreq, v.LowCutFreq},
		{plugin.ParamLowCutSlope, float64(lowSlope)},
		{plugin.ParamHighCutFreq, v.HighCutFreq},
		{plugin.ParamHighCutSlope, float64(highSlope)},
		{plugin.ParamLowCutBypassed, boolValue(bypass[eq.PositionLowCut])},
		{plugin.ParamPeakBypassed, boolValue(bypass[eq.PositionPeak])},
		{plugin.ParamHighCutBypassed, boolValue(bypass[eq.PositionHighCut])},
	}
	for _, c := range controls {
		if err := store.Set(c.id, c.value); err != nil {
			return err
		}
	}
	return nil
}

var bandNames = map[string]eq.ChainPosition{
	"lowcut":  eq.PositionLowCut,
	"peak":    eq.PositionPeak,
	"highcut": eq.PositionHighCut,
}

func parseBypass(list string) ([3]bool, error) {
	var out [3]bool
	if list == "" {
		return out, nil
	}

	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		pos, ok := bandNames[name]
		if !ok {
			return out, fmt.Errorf("bypass: unknown band %q", name)
		}
		out[pos] = true
	}
	return out, nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
