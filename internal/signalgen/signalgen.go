// Package signalgen builds the beep test signals the command-line tools
// feed through the equalizer.
package signalgen

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// Kinds lists the signal names New accepts.
var Kinds = []string{"sine", "noise", "sweep", "impulse"}

// Config describes a test signal.
type Config struct {
	Kind       string
	SampleRate beep.SampleRate
	Duration   time.Duration
	// Freq is the sine frequency and the sweep start.
	Freq float64
	// FreqEnd is the sweep end.
	FreqEnd   float64
	Amplitude float64
	Seed      int64
}

// New returns a stereo streamer for cfg. A non-positive duration yields an
// endless signal; sweeps require a duration.
func New(cfg Config) (beep.Streamer, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signalgen: invalid sample rate %d", cfg.SampleRate)
	}
	if cfg.Amplitude <= 0 {
		cfg.Amplitude = 1
	}

	var (
		s   beep.Streamer
		err error
	)
	switch strings.ToLower(cfg.Kind) {
	case "sine":
		s, err = generators.SineTone(cfg.SampleRate, cfg.Freq)
		if err == nil {
			s = gain(s, cfg.Amplitude)
		}
	case "noise":
		s = Noise(cfg.Seed, cfg.Amplitude)
	case "sweep":
		if cfg.Duration <= 0 {
			return nil, fmt.Errorf("signalgen: sweep needs a positive duration")
		}
		s = Sweep(float64(cfg.SampleRate), cfg.Freq, cfg.FreqEnd, cfg.SampleRate.N(cfg.Duration), cfg.Amplitude)
	case "impulse":
		s = beep.Seq(Impulse(cfg.Amplitude), beep.Silence(-1))
	default:
		return nil, fmt.Errorf("signalgen: unknown signal %q (want one of %s)", cfg.Kind, strings.Join(Kinds, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("signalgen: %w", err)
	}

	if cfg.Duration > 0 {
		s = beep.Take(cfg.SampleRate.N(cfg.Duration), s)
	}
	return s, nil
}

// Noise returns endless white noise with the same sample on both channels.
func Noise(seed int64, amplitude float64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := (rng.Float64()*2 - 1) * amplitude
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// Sweep returns an exponential sine sweep from f0 to f1 lasting n samples,
// then ends.
func Sweep(sampleRate, f0, f1 float64, n int, amplitude float64) beep.Streamer {
	if f0 <= 0 {
		f0 = 20
	}
	if f1 <= 0 {
		f1 = sampleRate / 2
	}

	k := math.Log(f1 / f0)
	length := float64(n) / sampleRate
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		count := min(len(samples), n-pos)
		for i := range count {
			t := float64(pos+i) / sampleRate
			phase := 2 * math.Pi * f0 * length / k * (math.Exp(t/length*k) - 1)
			v := amplitude * math.Sin(phase)
			samples[i] = [2]float64{v, v}
		}
		pos += count
		return count, true
	})
}

// Impulse returns a single sample of the given height.
func Impulse(amplitude float64) beep.Streamer {
	done := false
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if done || len(samples) == 0 {
			return 0, !done
		}
		samples[0] = [2]float64{amplitude, amplitude}
		done = true
		return 1, true
	})
}

func gain(s beep.Streamer, g float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= g
			samples[i][1] *= g
		}
		return n, ok
	})
}
