package main

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/plugin"
	"github.com/gopxl/beep/v2"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestPCMReader(t *testing.T) {
	src := beep.Take(3, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.5, -0.25}
		}
		return len(samples), true
	}))
	r := newPCMReader(src, 2)

	buf := make([]byte, 64)
	n, err := r.Read(buf)
	if err != nil || n != 16 {
		t.Fatalf("Read = %d, %v; want 16 bytes capped by maxFrames", n, err)
	}
	if l := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); l != 0.5 {
		t.Fatalf("left = %v", l)
	}
	if r := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); r != -0.25 {
		t.Fatalf("right = %v", r)
	}

	n, err = r.Read(buf)
	if err != nil || n != 8 {
		t.Fatalf("second Read = %d, %v", n, err)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
	if n, _ := r.Read(buf[:4]); n != 0 {
		t.Fatal("short buffer must read nothing")
	}
}

func TestSpectrumPeak(t *testing.T) {
	const sr = 48000.0
	fifo := analysis.NewSampleFifo(512, 30)
	an, err := analysis.NewAnalyzer(analysis.Order2048, sr)
	if err != nil {
		t.Fatal(err)
	}
	prod := analysis.NewPathProducer(fifo.Relay(), fifo.BlockSize(), an)

	// Bin 65: the path keeps odd bins only.
	toneFreq := 65 * sr / 2048
	tone := make([]float64, 4096)
	for i := range tone {
		tone[i] = 0.5 * math.Sin(2*math.Pi*toneFreq*float64(i)/sr)
	}
	fifo.Push(tone)
	prod.Process(displayBounds)

	p := prod.NewPathBuffer()
	if !prod.Path(&p) {
		t.Fatal("no path")
	}
	freq, level, ok := spectrumPeak(&p, displayBounds, analysis.DefaultFloorDB)
	if !ok {
		t.Fatal("no peak")
	}
	if math.Abs(freq-toneFreq) > 0.02*toneFreq {
		t.Fatalf("peak at %v Hz, want ~%v", freq, toneFreq)
	}
	if math.Abs(level-20*math.Log10(0.5)) > 1.5 {
		t.Fatalf("peak level %v dB, want ~-6", level)
	}

	if _, _, ok := spectrumPeak(&analysis.Path{}, displayBounds, -48); ok {
		t.Fatal("empty path has no peak")
	}
}

func TestHandleKey(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := plugin.NewStore(plugin.WithLogger(logger))

	if id, ok := handleKey(store, '+'); !ok || id != plugin.ParamPeakGain {
		t.Fatalf("'+' -> %q %v", id, ok)
	}
	handleKey(store, '+')
	handleKey(store, '-')
	if got := store.Settings().PeakGainDB; got != 1 {
		t.Fatalf("PeakGainDB = %v, want 1", got)
	}

	for range 6 {
		handleKey(store, ']')
	}
	if got := store.Settings().PeakFreq; math.Abs(got-1500) > 6 {
		t.Fatalf("PeakFreq after an octave = %v, want ~1500", got)
	}

	handleKey(store, 'p')
	if !store.Settings().PeakBypassed {
		t.Fatal("'p' did not bypass the peak")
	}
	handleKey(store, 'a')
	if store.Settings().AnalyzerEnabled {
		t.Fatal("'a' did not toggle the analyzer")
	}
	if _, ok := handleKey(store, 'x'); ok {
		t.Fatal("unmapped key changed a control")
	}
}
