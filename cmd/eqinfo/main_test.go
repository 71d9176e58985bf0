package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-simpleeq/dsp/eq"
	"github.com/cwbudde/algo-simpleeq/plugin"
)

func TestPrintResponse(t *testing.T) {
	curve := plugin.NewResponseCurve()
	s := eq.DefaultChainSettings()
	s.LowCutBypassed, s.PeakBypassed, s.HighCutBypassed = true, true, true
	curve.Update(s, 48000)

	var buf bytes.Buffer
	printResponse(&buf, curve, 4)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "20.0") || !strings.Contains(lines[4], "20000.0") {
		t.Fatalf("frequency column wrong:\n%s", buf.String())
	}
	for _, l := range lines[1:] {
		if !strings.Contains(l, "+0.00") {
			t.Fatalf("bypassed chain not flat: %q", l)
		}
	}
}

func TestPrintSettingsAndParameters(t *testing.T) {
	store := plugin.NewStore()
	var buf bytes.Buffer
	printSettings(&buf, store)
	if !strings.Contains(buf.String(), "Peak Freq") || !strings.Contains(buf.String(), "750.0 Hz") {
		t.Fatalf("settings output:\n%s", buf.String())
	}

	buf.Reset()
	printParameters(&buf, store)
	if !strings.Contains(buf.String(), "48 db/Oct") && !strings.Contains(buf.String(), "12 db/Oct") {
		t.Fatalf("parameter output:\n%s", buf.String())
	}
}

func TestPrintImpulse(t *testing.T) {
	var buf bytes.Buffer
	printImpulse(&buf, []float64{1, 0.5})
	if !strings.Contains(buf.String(), "+1.000000000") || !strings.Contains(buf.String(), "+0.500000000") {
		t.Fatalf("impulse output:\n%s", buf.String())
	}
}
