package analysis

import (
	"testing"

	"github.com/cwbudde/algo-simpleeq/dsp/relay"
)

func ramp(start, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(start + i)
	}
	return out
}

func TestSampleFifoSlicesArbitraryHostBlocks(t *testing.T) {
	f := NewSampleFifo(8, 16)
	next := 0
	for _, n := range []int{3, 5, 13, 1, 2} {
		f.Push(ramp(next, n))
		next += n
	}

	if f.Pending() != next%8 {
		t.Fatalf("Pending() = %d, want %d", f.Pending(), next%8)
	}

	dst := relay.NewBlock(8)
	want := 0
	for f.Relay().Pull(&dst) {
		if dst.Len() != 8 {
			t.Fatalf("block len = %d, want 8", dst.Len())
		}
		for _, v := range dst.Data {
			if v != float64(want) {
				t.Fatalf("got %v, want %d", v, want)
			}
			want++
		}
	}
	if want != next-next%8 {
		t.Fatalf("relayed %d samples, want %d", want, next-next%8)
	}
}

func TestSampleFifoDropsWhenFull(t *testing.T) {
	f := NewSampleFifo(4, 2)
	f.Push(make([]float64, 4*5))
	if f.Relay().Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Relay().Len())
	}
	if f.Dropped() != 3 {
		t.Fatalf("Dropped() = %d, want 3", f.Dropped())
	}
}

func TestSampleFifoDefaultsAndReset(t *testing.T) {
	f := NewSampleFifo(0, 0)
	if f.BlockSize() != DefaultBlockSize || f.Relay().Cap() != relay.DefaultCapacity {
		t.Fatalf("defaults not applied: size %d cap %d", f.BlockSize(), f.Relay().Cap())
	}
	f.Push(make([]float64, 10))
	f.Reset()
	if f.Pending() != 0 {
		t.Fatal("Reset kept pending samples")
	}
}

func TestSampleFifoZeroAlloc(t *testing.T) {
	f := NewSampleFifo(256, 30)
	host := make([]float64, 300)
	dst := relay.NewBlock(256)
	allocs := testing.AllocsPerRun(100, func() {
		f.Push(host)
		for f.Relay().Pull(&dst) {
		}
	})
	if allocs != 0 {
		t.Fatalf("Push allocated %.1f times per run", allocs)
	}
}
