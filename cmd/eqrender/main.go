// Command eqrender renders a signal through the equalizer into a WAV file.
//
// Usage:
//
//	eqrender [flags] -o out.wav
//
// The source is either a WAV file (-in) or a generated test signal
// (-signal sine|noise|sweep|impulse).
//
// Examples:
//
//	eqrender -signal sweep -duration 5s -peak-gain 9 -o sweep.wav
//	eqrender -in drums.wav -lowcut 120 -lowcut-slope 24 -o drums-eq.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/algo-simpleeq/internal/eqflags"
	"github.com/cwbudde/algo-simpleeq/internal/signalgen"
	"github.com/cwbudde/algo-simpleeq/plugin"
	"github.com/cwbudde/algo-simpleeq/stream"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/sirupsen/logrus"
)

type options struct {
	in, out    string
	signal     string
	sampleRate int
	duration   time.Duration
	freq       float64
	freqEnd    float64
	amplitude  float64
	blockSize  int
	precision  int
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "", "input WAV file (default: generated signal)")
	flag.StringVar(&o.out, "o", "eq.wav", "output WAV file")
	flag.StringVar(&o.signal, "signal", "noise", "generated signal: "+strings.Join(signalgen.Kinds, "|"))
	flag.IntVar(&o.sampleRate, "sr", 48000, "sample rate for generated signals")
	flag.DurationVar(&o.duration, "duration", 3*time.Second, "length of generated signals")
	flag.Float64Var(&o.freq, "freq", 1000, "sine frequency or sweep start in Hz")
	flag.Float64Var(&o.freqEnd, "freq-end", 20000, "sweep end in Hz")
	flag.Float64Var(&o.amplitude, "amp", 0.5, "generated signal amplitude")
	flag.IntVar(&o.blockSize, "block", 512, "processing block size")
	flag.IntVar(&o.precision, "precision", 2, "output bytes per sample (1..3)")
	verbose := flag.Bool("v", false, "verbose logging")
	controls := eqflags.Register(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(o, controls, log); err != nil {
		log.WithError(err).Fatal("eqrender failed")
	}
}

func run(o options, controls *eqflags.Values, log logrus.FieldLogger) error {
	if o.precision < 1 || o.precision > 3 {
		return fmt.Errorf("precision must be 1, 2 or 3, got %d", o.precision)
	}

	src, sampleRate, closeSrc, err := openSource(o)
	if err != nil {
		return err
	}
	defer closeSrc()

	store := plugin.NewStore(plugin.WithLogger(log))
	if err := controls.Apply(store); err != nil {
		return err
	}

	proc := plugin.New(store, plugin.WithLogger(log))
	if err := proc.Prepare(float64(sampleRate), o.blockSize); err != nil {
		return err
	}
	defer proc.Release()

	f, err := os.Create(o.out)
	if err != nil {
		return err
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: o.precision}
	start := time.Now()
	if err := wav.Encode(f, stream.New(src, proc), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", o.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"out":         o.out,
		"sample_rate": int(sampleRate),
		"elapsed":     time.Since(start).Round(time.Millisecond),
	}).Info("rendered")
	return nil
}

func openSource(o options) (beep.Streamer, beep.SampleRate, func(), error) {
	if o.in == "" {
		if o.duration <= 0 {
			return nil, 0, nil, errors.New("duration must be > 0 for generated signals")
		}
		s, err := signalgen.New(signalgen.Config{
			Kind:       o.signal,
			SampleRate: beep.SampleRate(o.sampleRate),
			Duration:   o.duration,
			Freq:       o.freq,
			FreqEnd:    o.freqEnd,
			Amplitude:  o.amplitude,
			Seed:       1,
		})
		if err != nil {
			return nil, 0, nil, err
		}
		return s, beep.SampleRate(o.sampleRate), func() {}, nil
	}

	f, err := os.Open(o.in)
	if err != nil {
		return nil, 0, nil, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, 0, nil, fmt.Errorf("decode %s: %w", o.in, err)
	}
	return s, format.SampleRate, func() { s.Close() }, nil
}
