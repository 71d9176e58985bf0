package plugin

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/dsp/eq"
)

func bypassAll(s eq.ChainSettings) eq.ChainSettings {
	s.LowCutBypassed = true
	s.PeakBypassed = true
	s.HighCutBypassed = true
	return s
}

func TestResponseCurveFlatWhenBypassed(t *testing.T) {
	r := NewResponseCurve()
	s := eq.DefaultChainSettings()
	s.PeakGainDB = 12
	r.Update(bypassAll(s), 48000)

	mags := make([]float64, 256)
	r.Magnitudes(mags)
	for i, m := range mags {
		if math.Abs(m) > 1e-12 {
			t.Fatalf("column %d = %v dB, want 0", i, m)
		}
	}

	var path analysis.Path
	bounds := analysis.Rect{X: 5, Y: 10, Width: 64, Height: 100}
	r.Path(bounds, &path)
	if path.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", path.Len())
	}
	for i, pt := range path.Points {
		if pt.X != 5+float64(i) || math.Abs(pt.Y-60) > 1e-9 {
			t.Fatalf("vertex %d = %+v", i, pt)
		}
	}
}

func TestResponseCurvePeak(t *testing.T) {
	r := NewResponseCurve()
	s := eq.DefaultChainSettings()
	s.PeakFreq = 1000
	s.PeakGainDB = 12
	s.PeakQuality = 2
	r.Update(s, 48000)

	if got := r.MagnitudeDB(1000); math.Abs(got-12) > 0.05 {
		t.Fatalf("MagnitudeDB(1000) = %v, want ~12", got)
	}
	if got := r.MagnitudeDB(10); got > -6 {
		t.Fatalf("low cut should attenuate 10 Hz, got %v dB", got)
	}

	mags := make([]float64, 512)
	r.Magnitudes(mags)
	peak := 0
	for i := range mags {
		if mags[i] > mags[peak] {
			peak = i
		}
	}
	// 1 kHz sits at log10(50)/3 of the 20 Hz-20 kHz span.
	want := int(math.Round(math.Log10(50) / 3 * 512))
	if peak < want-2 || peak > want+2 {
		t.Fatalf("peak column %d, want ~%d", peak, want)
	}
}

func TestResponseCurveSync(t *testing.T) {
	store := NewStore(WithLogger(quietLogger()))
	r := NewResponseCurve()

	if !r.Sync(store, 44100) {
		t.Fatal("first Sync must update")
	}
	if r.Sync(store, 44100) {
		t.Fatal("unchanged store must not update")
	}
	mustSet(t, store, ParamPeakGain, -12)
	if !r.Sync(store, 44100) {
		t.Fatal("Sync missed a store change")
	}
	if got := r.MagnitudeDB(750); math.Abs(got+12) > 0.1 {
		t.Fatalf("MagnitudeDB(750) = %v, want ~-12", got)
	}
	if !r.Sync(store, 48000) {
		t.Fatal("Sync missed a sample-rate change")
	}
}
