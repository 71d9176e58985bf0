package cascade

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-simpleeq/dsp/filter/design"
	"github.com/cwbudde/algo-simpleeq/internal/testutil"
)

func butterworthHP(freq float64, order int, sr float64) [MaxStages]biquad.Coefficients {
	var coeffs [MaxStages]biquad.Coefficients
	for i := range coeffs {
		coeffs[i] = biquad.Identity()
	}
	design.ButterworthHPInto(coeffs[:], freq, order, sr)
	return coeffs
}

func TestZeroValueIsBypass(t *testing.T) {
	var c Cascade
	if c.ActiveCount() != 0 {
		t.Fatalf("ActiveCount = %d, want 0", c.ActiveCount())
	}
	in := testutil.DeterministicNoise(1, 1, 64)
	buf := append([]float64(nil), in...)
	c.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, in, 0)
	if c.Magnitude(1000, 48000) != 1 {
		t.Fatal("empty cascade magnitude should be 1")
	}
}

func TestConfigureActivatesPrefix(t *testing.T) {
	var c Cascade
	for count := -1; count <= MaxStages+1; count++ {
		c.Configure(butterworthHP(100, 8, 48000), count)
		want := min(max(count, 0), MaxStages)
		if c.ActiveCount() != want {
			t.Fatalf("count %d: ActiveCount = %d, want %d", count, c.ActiveCount(), want)
		}
		for i := range MaxStages {
			if c.IsActive(i) != (i < want) {
				t.Fatalf("count %d: slot %d active = %v", count, i, c.IsActive(i))
			}
		}
	}
}

func TestConfigureInstallsAllSlots(t *testing.T) {
	var c Cascade
	coeffs := butterworthHP(100, 8, 48000)
	c.Configure(coeffs, 1)
	for i := range MaxStages {
		if c.Stage(i).Coefficients != coeffs[i] {
			t.Fatalf("slot %d coefficients not installed", i)
		}
	}
}

func TestSlopeMagnitudeAtCutoff(t *testing.T) {
	const sr = 48000.0
	var c Cascade
	for stages := 1; stages <= MaxStages; stages++ {
		c.Configure(butterworthHP(1000, 2*stages, sr), stages)
		got := 20 * math.Log10(c.Magnitude(1000, sr))
		if math.Abs(got+3.0103) > 1e-3 {
			t.Fatalf("%d stages: %v dB at cutoff, want -3.01", stages, got)
		}
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	coeffs := butterworthHP(300, 6, 44100)
	input := testutil.DeterministicNoise(3, 1, 777)

	var ref Cascade
	ref.Configure(coeffs, 3)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	var c Cascade
	c.Configure(coeffs, 3)
	got := append([]float64(nil), input...)
	c.ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestInactiveSlotsKeepState(t *testing.T) {
	var c Cascade
	c.Configure(butterworthHP(300, 8, 44100), 1)
	c.Stage(3).SetState([2]float64{0.5, 0.25})
	c.ProcessBlock(testutil.DeterministicNoise(9, 1, 32))
	if c.Stage(3).State() != [2]float64{0.5, 0.25} {
		t.Fatal("inactive slot state changed")
	}
}

func TestSetActiveBounds(t *testing.T) {
	var c Cascade
	c.SetActive(-1, true)
	c.SetActive(MaxStages, true)
	if c.ActiveCount() != 0 {
		t.Fatal("out-of-range SetActive changed state")
	}
	c.SetActive(2, true)
	if !c.IsActive(2) || c.IsActive(MaxStages) {
		t.Fatal("SetActive/IsActive mismatch")
	}
}

func TestResetKeepsConfiguration(t *testing.T) {
	var c Cascade
	c.Configure(butterworthHP(300, 4, 44100), 2)
	c.ProcessBlock(testutil.DeterministicNoise(2, 1, 16))
	c.Reset()
	for i := range MaxStages {
		if c.Stage(i).State() != [2]float64{} {
			t.Fatalf("slot %d not reset", i)
		}
	}
	if c.ActiveCount() != 2 {
		t.Fatal("Reset changed active flags")
	}
}

func TestProcessBlockZeroAlloc(t *testing.T) {
	var c Cascade
	c.Configure(butterworthHP(300, 8, 44100), 4)
	buf := testutil.DeterministicSine(1000, 44100, 0.5, 512)
	allocs := testing.AllocsPerRun(100, func() {
		c.ProcessBlock(buf)
		c.FlushDenormals()
	})
	if allocs != 0 {
		t.Fatalf("ProcessBlock allocated %.1f times per run", allocs)
	}
}
