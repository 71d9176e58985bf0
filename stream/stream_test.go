package stream

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simpleeq/plugin"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/sirupsen/logrus/hooks/test"
)

func newProcessor(t *testing.T, sampleRate float64, block int) *plugin.Processor {
	t.Helper()
	logger, _ := test.NewNullLogger()
	p := plugin.New(nil, plugin.WithLogger(logger))
	if err := p.Prepare(sampleRate, block); err != nil {
		t.Fatal(err)
	}
	return p
}

func drain(s beep.Streamer, chunk int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestStreamerSilence(t *testing.T) {
	p := newProcessor(t, 44100, 128)
	out := drain(New(beep.Silence(1000), p), 300)
	if len(out) != 1000 {
		t.Fatalf("got %d samples, want 1000", len(out))
	}
	for i, s := range out {
		if s != [2]float64{} {
			t.Fatalf("sample %d = %v", i, s)
		}
	}
}

func TestStreamerAppliesPeak(t *testing.T) {
	const sr = 48000
	p := newProcessor(t, sr, 256)
	store := p.Store()
	for id, v := range map[string]float64{
		plugin.ParamLowCutBypassed:  1,
		plugin.ParamHighCutBypassed: 1,
		plugin.ParamPeakFreq:        1000,
		plugin.ParamPeakGain:        -6,
	} {
		if err := store.Set(id, v); err != nil {
			t.Fatal(err)
		}
	}

	tone, err := generators.SineTone(beep.SampleRate(sr), 1000)
	if err != nil {
		t.Fatal(err)
	}
	out := drain(New(beep.Take(9600, tone), p), 1000)
	if len(out) != 9600 {
		t.Fatalf("got %d samples", len(out))
	}

	sum := 0.0
	for _, s := range out[4800:] {
		sum += s[0] * s[0]
	}
	gain := math.Sqrt(sum/4800) * math.Sqrt2
	if want := math.Pow(10, -6.0/20); math.Abs(gain-want) > 0.01 {
		t.Fatalf("gain = %v, want %v", gain, want)
	}
}

func TestStreamerErr(t *testing.T) {
	p := newProcessor(t, 44100, 64)
	s := New(beep.Silence(10), p)
	if s.Err() != nil {
		t.Fatal(s.Err())
	}
}
