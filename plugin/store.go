package plugin

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-simpleeq/dsp/core"
	"github.com/cwbudde/algo-simpleeq/dsp/eq"
	"github.com/sirupsen/logrus"
)

// Store holds the equalizer controls. Writers publish copy-on-write
// snapshots with a compare-and-swap loop, so any number of control
// goroutines may write concurrently; readers load the current snapshot
// without blocking. Every publication bumps Version and raises the dirty
// flag the audio thread consumes.
type Store struct {
	params []Parameter
	index  map[string]int

	snapshot atomic.Pointer[eq.ChainSettings]
	dirty    atomic.Bool
	version  atomic.Uint64

	log logrus.FieldLogger
}

// NewStore returns a store holding the default settings. The dirty flag
// starts raised so the first processed block picks them up.
func NewStore(opts ...Option) *Store {
	cfg := applyOptions(opts)

	s := &Store{
		params: parameterLayout(),
		log:    cfg.logger,
	}
	s.index = make(map[string]int, len(s.params))
	for i, p := range s.params {
		s.index[p.ID] = i
	}

	def := eq.DefaultChainSettings()
	s.snapshot.Store(&def)
	s.dirty.Store(true)
	return s
}

// Parameters returns the control descriptors in host order.
func (s *Store) Parameters() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// Parameter returns the descriptor for id.
func (s *Store) Parameter(id string) (Parameter, error) {
	i, ok := s.index[id]
	if !ok {
		return Parameter{}, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}
	return s.params[i], nil
}

// Set assigns a plain value to control id. The value is snapped to the
// control's interval and clamped into its range.
func (s *Store) Set(id string, plain float64) error {
	p, err := s.Parameter(id)
	if err != nil {
		return err
	}
	if !core.IsFinite(plain) {
		return fmt.Errorf("%w: %s = %v", ErrInvalidValue, id, plain)
	}

	value := p.Range.Snap(plain)
	s.update(func(next *eq.ChainSettings) { p.set(next, value) })
	return nil
}

// SetNormalized assigns a normalized [0, 1] value to control id.
func (s *Store) SetNormalized(id string, norm float64) error {
	p, err := s.Parameter(id)
	if err != nil {
		return err
	}
	if !core.IsFinite(norm) {
		return fmt.Errorf("%w: %s = %v", ErrInvalidValue, id, norm)
	}
	return s.Set(id, p.Denormalize(norm))
}

// Get returns the plain value of control id from the current snapshot.
func (s *Store) Get(id string) (float64, error) {
	p, err := s.Parameter(id)
	if err != nil {
		return 0, err
	}
	return p.get(s.snapshot.Load()), nil
}

// GetNormalized returns the normalized value of control id.
func (s *Store) GetNormalized(id string) (float64, error) {
	p, err := s.Parameter(id)
	if err != nil {
		return 0, err
	}
	return p.Normalize(p.get(s.snapshot.Load())), nil
}

// Settings returns a copy of the current snapshot. It never blocks or
// allocates and is safe on the audio thread.
func (s *Store) Settings() eq.ChainSettings {
	return *s.snapshot.Load()
}

// Apply publishes settings as a whole, for restoring saved state. Each
// field is clamped into its control's range; non-finite values keep their
// current setting.
func (s *Store) Apply(settings eq.ChainSettings) {
	s.update(func(next *eq.ChainSettings) {
		for _, p := range s.params {
			v := p.get(&settings)
			if !core.IsFinite(v) {
				continue
			}
			p.set(next, core.Clamp(v, p.Range.Min, p.Range.Max))
		}
	})

	s.log.WithFields(logrus.Fields{
		"version": s.Version(),
	}).Debug("plugin: settings restored")
}

// Reset restores every control to its default.
func (s *Store) Reset() {
	s.update(func(next *eq.ChainSettings) {
		for _, p := range s.params {
			p.set(next, p.Default)
		}
	})
}

// ConsumeDirty reports whether a snapshot was published since the last
// call and clears the flag. It is meant for the audio thread.
func (s *Store) ConsumeDirty() bool {
	return s.dirty.CompareAndSwap(true, false)
}

// MarkDirty forces the next ConsumeDirty to report true.
func (s *Store) MarkDirty() {
	s.dirty.Store(true)
}

// Version returns a counter bumped on every publication. Polling readers
// compare it to detect changes.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

func (s *Store) update(mutate func(*eq.ChainSettings)) {
	for {
		old := s.snapshot.Load()
		next := *old
		mutate(&next)
		if s.snapshot.CompareAndSwap(old, &next) {
			break
		}
	}
	s.version.Add(1)
	s.dirty.Store(true)
}
