package main

import (
	"math"

	"github.com/cwbudde/algo-simpleeq/plugin"
)

var toggles = map[byte]string{
	'l': plugin.ParamLowCutBypassed,
	'p': plugin.ParamPeakBypassed,
	'h': plugin.ParamHighCutBypassed,
	'a': plugin.ParamAnalyzerEnabled,
}

// handleKey applies one key press to store and returns the control it
// changed.
func handleKey(store *plugin.Store, key byte) (string, bool) {
	switch key {
	case '+', '=':
		return plugin.ParamPeakGain, nudge(store, plugin.ParamPeakGain, func(v float64) float64 { return v + 1 })
	case '-':
		return plugin.ParamPeakGain, nudge(store, plugin.ParamPeakGain, func(v float64) float64 { return v - 1 })
	case ']':
		return plugin.ParamPeakFreq, nudge(store, plugin.ParamPeakFreq, func(v float64) float64 { return v * math.Pow(2, 1.0/6) })
	case '[':
		return plugin.ParamPeakFreq, nudge(store, plugin.ParamPeakFreq, func(v float64) float64 { return v / math.Pow(2, 1.0/6) })
	}

	id, ok := toggles[key]
	if !ok {
		return "", false
	}
	return id, nudge(store, id, func(v float64) float64 { return 1 - v })
}

func nudge(store *plugin.Store, id string, f func(float64) float64) bool {
	v, err := store.Get(id)
	if err != nil {
		return false
	}
	return store.Set(id, f(v)) == nil
}
