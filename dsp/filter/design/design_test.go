package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func cascadeMagnitudeDB(sections []biquad.Coefficients, freq, sr float64) float64 {
	db := 0.0
	for _, c := range sections {
		db += c.MagnitudeDB(freq, sr)
	}
	return db
}

func TestRBJResponseShape(t *testing.T) {
	const sr = 48000.0
	lp := Lowpass(1000, defaultQ, sr)
	if !(lp.Magnitude(100, sr) > lp.Magnitude(10000, sr)) {
		t.Fatal("lowpass shape check failed")
	}
	if !almostEqual(lp.Magnitude(0, sr), 1, tol) {
		t.Fatalf("lowpass DC gain = %v, want 1", lp.Magnitude(0, sr))
	}

	hp := Highpass(1000, defaultQ, sr)
	if !(hp.Magnitude(10000, sr) > hp.Magnitude(100, sr)) {
		t.Fatal("highpass shape check failed")
	}
	if !almostEqual(hp.Magnitude(sr/2, sr), 1, tol) {
		t.Fatalf("highpass Nyquist gain = %v, want 1", hp.Magnitude(sr/2, sr))
	}
}

func TestPeakGainAtCenter(t *testing.T) {
	for _, sr := range []float64{44100, 48000, 96000} {
		for _, gain := range []float64{-24, -6, 0, 3.5, 12, 24} {
			for _, q := range []float64{0.1, 1, 10} {
				c := Peak(750, gain, q, sr)
				got := c.Magnitude(750, sr)
				want := math.Pow(10, gain/20)
				if !almostEqual(got, want, 1e-9*want) {
					t.Fatalf("sr=%v gain=%v q=%v: |H(fc)| = %v, want %v", sr, gain, q, got, want)
				}
			}
		}
	}
}

func TestPeakZeroGainIsFlat(t *testing.T) {
	c := Peak(1000, 0, 1, 48000)
	for _, f := range []float64{20, 200, 1000, 8000, 20000} {
		if !almostEqual(c.Magnitude(f, 48000), 1, 1e-12) {
			t.Fatalf("0 dB peak not flat at %v Hz: %v", f, c.Magnitude(f, 48000))
		}
	}
}

func TestButterworthCutoffIsMinus3dB(t *testing.T) {
	const sr = 48000.0
	for _, order := range []int{1, 2, 3, 4, 6, 8} {
		for _, fc := range []float64{20, 750, 5000, 20000} {
			hp := ButterworthHP(fc, order, sr)
			lp := ButterworthLP(fc, order, sr)
			if len(hp) != Sections(order) || len(lp) != Sections(order) {
				t.Fatalf("order %d: got %d/%d sections, want %d", order, len(hp), len(lp), Sections(order))
			}
			want := -10 * math.Log10(2)
			if got := cascadeMagnitudeDB(hp, fc, sr); !almostEqual(got, want, 1e-6) {
				t.Fatalf("HP order %d fc %v: %v dB at cutoff, want %v", order, fc, got, want)
			}
			if got := cascadeMagnitudeDB(lp, fc, sr); !almostEqual(got, want, 1e-6) {
				t.Fatalf("LP order %d fc %v: %v dB at cutoff, want %v", order, fc, got, want)
			}
		}
	}
}

func TestButterworthSlopePerOctave(t *testing.T) {
	const sr = 96000.0
	for _, order := range []int{2, 4, 6, 8} {
		hp := ButterworthHP(4000, order, sr)
		// Well below cutoff the asymptote is 6 dB per order per octave.
		drop := cascadeMagnitudeDB(hp, 500, sr) - cascadeMagnitudeDB(hp, 250, sr)
		want := 6.02 * float64(order)
		if math.Abs(drop-want) > 0.5 {
			t.Fatalf("order %d: %v dB/oct, want ~%v", order, drop, want)
		}
	}
}

func TestButterworthQOrdering(t *testing.T) {
	sections := ButterworthHP(1000, 4, 48000)
	// Q 0.5412 stage comes before the Q 1.3066 stage.
	if !(butterworthQ(4, 1) < butterworthQ(4, 0)) {
		t.Fatal("unexpected Q ordering")
	}
	if !almostEqual(butterworthQ(4, 1), 0.541196100146197, 1e-12) {
		t.Fatalf("butterworthQ(4,1) = %v", butterworthQ(4, 1))
	}
	want := Highpass(1000, butterworthQ(4, 1), 48000)
	if sections[0] != want {
		t.Fatalf("first section = %+v, want %+v", sections[0], want)
	}
}

func TestInvalidInputsYieldIdentity(t *testing.T) {
	cases := []biquad.Coefficients{
		Lowpass(0, 1, 48000),
		Highpass(-5, 1, 48000),
		Peak(24000, 6, 1, 48000),
		Peak(1000, math.NaN(), 1, 48000),
		Peak(math.NaN(), 6, 1, 48000),
		Highpass(1000, 1, 0),
		Highpass(1000, 1, math.Inf(1)),
	}
	for i, c := range cases {
		if !c.IsIdentity() {
			t.Fatalf("case %d: got %+v, want identity", i, c)
		}
	}
	if got := ButterworthHP(1000, 0, 48000); len(got) != 0 {
		t.Fatalf("order 0 returned %d sections", len(got))
	}
}

func TestInvalidQFallsBackToButterworthQ(t *testing.T) {
	if Highpass(1000, 0, 48000) != Highpass(1000, defaultQ, 48000) {
		t.Fatal("Q=0 should use the default Q")
	}
}

func TestButterworthIntoTruncatesAndDoesNotAllocate(t *testing.T) {
	var dst [4]biquad.Coefficients
	if n := ButterworthHPInto(dst[:2], 100, 8, 48000); n != 2 {
		t.Fatalf("wrote %d sections into a 2-slot buffer", n)
	}

	allocs := testing.AllocsPerRun(100, func() {
		ButterworthHPInto(dst[:], 100, 8, 48000)
		ButterworthLPInto(dst[:], 100, 8, 48000)
	})
	if allocs != 0 {
		t.Fatalf("Into designers allocated %.1f times", allocs)
	}
}
