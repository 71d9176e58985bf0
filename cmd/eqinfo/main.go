// Command eqinfo prints the equalizer's settings, magnitude response and
// impulse response for a given set of controls.
//
// Usage:
//
//	eqinfo [flags]
//
// Examples:
//
//	eqinfo -peak-freq 1000 -peak-gain 6
//	eqinfo -lowcut 80 -lowcut-slope 48 -points 32
//	eqinfo -ir 64 -sr 44100
//	eqinfo -params
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-simpleeq/dsp/core"
	"github.com/cwbudde/algo-simpleeq/dsp/eq"
	"github.com/cwbudde/algo-simpleeq/internal/eqflags"
	"github.com/cwbudde/algo-simpleeq/plugin"
	"github.com/sirupsen/logrus"
)

func main() {
	sampleRate := flag.Float64("sr", 48000, "sample rate in Hz")
	points := flag.Int("points", 16, "number of log-spaced response points")
	irLen := flag.Int("ir", 0, "print this many impulse response samples")
	params := flag.Bool("params", false, "list the controls and their ranges")
	controls := eqflags.Register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the response of the equalizer for the given controls.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetLevel(logrus.WarnLevel)
	store := plugin.NewStore()

	if *params {
		printParameters(os.Stdout, store)
		return
	}

	if !(*sampleRate > 0) {
		die("sr must be > 0")
	}
	if *points < 2 {
		die("points must be >= 2")
	}
	if err := controls.Apply(store); err != nil {
		die(err.Error())
	}

	printSettings(os.Stdout, store)
	fmt.Println()

	curve := plugin.NewResponseCurve()
	curve.Update(store.Settings(), *sampleRate)
	printResponse(os.Stdout, curve, *points)

	if *irLen > 0 {
		fmt.Println()
		chain := eq.NewChannelChain()
		chain.UpdateAll(store.Settings(), *sampleRate)
		printImpulse(os.Stdout, chain.ImpulseResponse(*irLen))
	}
}

func printParameters(out io.Writer, store *plugin.Store) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tKind\tMin\tMax\tStep\tDefault\n")
	for _, p := range store.Parameters() {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%s\n",
			p.ID, p.Kind, p.Range.Min, p.Range.Max, p.Range.Interval, p.Format(p.Default))
	}
	w.Flush()
}

func printSettings(out io.Writer, store *plugin.Store) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Control\tValue\n")
	for _, p := range store.Parameters() {
		v, err := store.Get(p.ID)
		if err != nil {
			die(err.Error())
		}
		fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Format(v))
	}
	w.Flush()
}

func printResponse(out io.Writer, curve *plugin.ResponseCurve, points int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Frequency (Hz)\tMagnitude (dB)\t\n")
	for i := range points {
		freq := core.MapToLog10(float64(i)/float64(points-1), eq.MinFrequency, eq.MaxFrequency)
		fmt.Fprintf(w, "%.1f\t%+.2f\t\n", freq, curve.MagnitudeDB(freq))
	}
	w.Flush()
}

func printImpulse(out io.Writer, ir []float64) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "n\th[n]\t\n")
	for i, v := range ir {
		fmt.Fprintf(w, "%d\t%+.9f\t\n", i, v)
	}
	w.Flush()
}

func die(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
