package signalgen

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

func collect(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 333)
	for range 1000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func TestNewDurations(t *testing.T) {
	for _, kind := range Kinds {
		s, err := New(Config{Kind: kind, SampleRate: 8000, Duration: 250 * time.Millisecond, Freq: 100, FreqEnd: 2000})
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if got := len(collect(t, s)); got != 2000 {
			t.Errorf("%s: %d samples, want 2000", kind, got)
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Config{Kind: "square", SampleRate: 8000}); err == nil {
		t.Fatal("expected unknown signal error")
	}
	if _, err := New(Config{Kind: "sweep", SampleRate: 8000}); err == nil {
		t.Fatal("expected sweep duration error")
	}
	if _, err := New(Config{Kind: "sine", SampleRate: 0}); err == nil {
		t.Fatal("expected sample rate error")
	}
}

func TestNoiseAmplitudeAndDeterminism(t *testing.T) {
	a := collect(t, beep.Take(1000, Noise(4, 0.25)))
	b := collect(t, beep.Take(1000, Noise(4, 0.25)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("noise not reproducible")
		}
		if math.Abs(a[i][0]) > 0.25 || a[i][0] != a[i][1] {
			t.Fatalf("sample %d = %v", i, a[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	s, err := New(Config{Kind: "impulse", SampleRate: 1000, Duration: 10 * time.Millisecond, Amplitude: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	out := collect(t, s)
	if out[0] != [2]float64{0.5, 0.5} {
		t.Fatalf("first sample %v", out[0])
	}
	for _, v := range out[1:] {
		if v != [2]float64{} {
			t.Fatal("impulse tail not silent")
		}
	}
}

func TestSweepBounded(t *testing.T) {
	out := collect(t, Sweep(8000, 50, 3000, 4000, 0.5))
	if len(out) != 4000 {
		t.Fatalf("len = %d", len(out))
	}
	for _, v := range out {
		if math.Abs(v[0]) > 0.5 {
			t.Fatalf("sample %v exceeds amplitude", v)
		}
	}
}
