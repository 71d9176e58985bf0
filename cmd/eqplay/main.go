// Command eqplay plays a signal through the equalizer in real time.
//
// The oto output callback is the audio thread; a second goroutine polls
// the spectrum analyzer at 60 Hz. With -interactive the terminal switches
// to raw mode and keys adjust the controls while audio runs:
//
//	+ / -    peak gain up / down 1 dB
//	] / [    peak frequency up / down a sixth of an octave
//	l p h    toggle low-cut, peak, high-cut bypass
//	a        toggle the analyzer
//	q        quit
//
// Examples:
//
//	eqplay -signal noise -peak-gain 9 -interactive
//	eqplay -in song.wav -lowcut 200 -lowcut-slope 48
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cwbudde/algo-simpleeq/dsp/analysis"
	"github.com/cwbudde/algo-simpleeq/internal/eqflags"
	"github.com/cwbudde/algo-simpleeq/internal/signalgen"
	"github.com/cwbudde/algo-simpleeq/plugin"
	"github.com/cwbudde/algo-simpleeq/stream"
	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Bounds the analyzer paths are generated for; only their shape matters.
var displayBounds = analysis.Rect{Width: 1000, Height: 480}

func main() {
	in := flag.String("in", "", "input WAV file (default: generated signal)")
	sig := flag.String("signal", "noise", "generated signal: "+strings.Join(signalgen.Kinds, "|"))
	sampleRate := flag.Int("sr", 48000, "sample rate for generated signals")
	duration := flag.Duration("duration", 0, "stop after this long (0: until the source ends or Ctrl-C)")
	freq := flag.Float64("freq", 1000, "sine frequency or sweep start in Hz")
	amp := flag.Float64("amp", 0.3, "generated signal amplitude")
	block := flag.Int("block", 512, "maximum processing block size")
	interactive := flag.Bool("interactive", false, "adjust controls from the keyboard")
	verbose := flag.Bool("v", false, "verbose logging")
	controls := eqflags.Register(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	src, rate, err := openSource(*in, signalgen.Config{
		Kind:       *sig,
		SampleRate: beep.SampleRate(*sampleRate),
		Duration:   *duration,
		Freq:       *freq,
		FreqEnd:    20000,
		Amplitude:  *amp,
		Seed:       1,
	})
	if err != nil {
		log.WithError(err).Fatal("open source")
	}

	store := plugin.NewStore(plugin.WithLogger(log))
	if err := controls.Apply(store); err != nil {
		log.WithError(err).Fatal("controls")
	}

	proc := plugin.New(store, plugin.WithLogger(log))
	if err := proc.Prepare(float64(rate), *block); err != nil {
		log.WithError(err).Fatal("prepare")
	}
	defer proc.Release()

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(rate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		log.WithError(err).Fatal("audio device")
	}
	<-ready

	player := otoCtx.NewPlayer(newPCMReader(stream.New(src, proc), *block))
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	status := newStatusLine(*interactive, log)
	go func() {
		err := proc.Analysis().Run(ctx, plugin.DefaultPollInterval, displayBounds, status.spectrum)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Warn("analysis stopped")
		}
	}()

	if *interactive {
		restore, err := startKeys(ctx, stop, store, status)
		if err != nil {
			log.WithError(err).Fatal("terminal")
		}
		defer restore()
	}

	player.Play()
	log.WithFields(logrus.Fields{
		"sample_rate": int(rate),
		"block":       *block,
	}).Info("playing")

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
	if err := player.Err(); err != nil {
		log.WithError(err).Error("playback")
	}
}

func openSource(path string, cfg signalgen.Config) (beep.Streamer, beep.SampleRate, error) {
	if path == "" {
		s, err := signalgen.New(cfg)
		return s, cfg.SampleRate, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, format.SampleRate, nil
}

// statusLine reports the spectrum peak: through logrus normally, or as a
// single rewritten terminal line in interactive mode.
type statusLine struct {
	interactive bool
	log         logrus.FieldLogger
	last        time.Time
}

func newStatusLine(interactive bool, log logrus.FieldLogger) *statusLine {
	return &statusLine{interactive: interactive, log: log}
}

func (s *statusLine) spectrum(left, right *analysis.Path) {
	if time.Since(s.last) < time.Second {
		return
	}
	s.last = time.Now()

	freq, level, ok := spectrumPeak(left, displayBounds, analysis.DefaultFloorDB)
	if !ok {
		return
	}
	if s.interactive {
		fmt.Printf("\rspectrum peak %8.1f Hz %6.1f dB\x1b[K", freq, level)
		return
	}
	s.log.WithFields(logrus.Fields{
		"freq_hz":  math.Round(freq),
		"level_db": math.Round(level*10) / 10,
	}).Info("spectrum peak")
}

func (s *statusLine) control(id, value string) {
	fmt.Printf("\r%s: %s\x1b[K", id, value)
}

func startKeys(ctx context.Context, quit func(), store *plugin.Store, status *statusLine) (func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	go func() {
		buf := make([]byte, 1)
		for ctx.Err() == nil {
			if _, err := os.Stdin.Read(buf); err != nil {
				return
			}
			if buf[0] == 'q' || buf[0] == 3 {
				quit()
				return
			}
			if id, ok := handleKey(store, buf[0]); ok {
				p, _ := store.Parameter(id)
				v, _ := store.Get(id)
				status.control(id, p.Format(v))
			}
		}
	}()

	return func() {
		term.Restore(fd, state)
		fmt.Println()
	}, nil
}
