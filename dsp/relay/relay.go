// Package relay moves fixed-size data from the audio thread to a polling
// consumer without locks, blocking or allocation.
//
// A [Relay] is a single-producer single-consumer ring of preallocated slots.
// Push and Pull copy elements in and out; they never hand out references to
// slot storage, so the producer can reuse its buffers immediately. A full
// relay rejects Push and an empty relay rejects Pull; neither case blocks.
package relay

import "sync/atomic"

// DefaultCapacity is the slot count used when New is given a non-positive
// capacity.
const DefaultCapacity = 30

// Relay is a bounded SPSC FIFO. Exactly one goroutine may call Push and
// exactly one may call Pull, Latest or Reset. Len, Cap and Dropped are safe
// from anywhere.
type Relay[T any] struct {
	slots  []T
	copyFn func(dst, src *T)

	// Monotonic cursors. write is stored only by the producer, read only by
	// the consumer; a slot is published by the store that follows its copy.
	write atomic.Uint64
	_     [56]byte
	read  atomic.Uint64
	_     [56]byte

	dropped atomic.Uint64
}

// Option configures a Relay.
type Option[T any] func(*config[T])

type config[T any] struct {
	init   func(*T)
	copyFn func(dst, src *T)
}

// WithSlotInit runs init on every slot at construction. Use it to
// preallocate slice-carrying elements so Push never allocates.
func WithSlotInit[T any](init func(*T)) Option[T] {
	return func(c *config[T]) {
		c.init = init
	}
}

// WithCopy replaces plain assignment with a deep copy. It is required for
// elements that carry slices, otherwise producer and consumer would share
// backing arrays.
func WithCopy[T any](copyFn func(dst, src *T)) Option[T] {
	return func(c *config[T]) {
		c.copyFn = copyFn
	}
}

// New allocates a relay with capacity slots.
func New[T any](capacity int, opts ...Option[T]) *Relay[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	var cfg config[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	r := &Relay[T]{
		slots:  make([]T, capacity),
		copyFn: cfg.copyFn,
	}
	if r.copyFn == nil {
		r.copyFn = assign[T]
	}
	if cfg.init != nil {
		for i := range r.slots {
			cfg.init(&r.slots[i])
		}
	}

	return r
}

func assign[T any](dst, src *T) {
	*dst = *src
}

// Push copies v into the next free slot. It returns false without side
// effects on the contents when the relay is full; the rejection is counted
// in Dropped.
func (r *Relay[T]) Push(v *T) bool {
	w := r.write.Load()
	if w-r.read.Load() >= uint64(len(r.slots)) {
		r.dropped.Add(1)
		return false
	}

	r.copyFn(&r.slots[w%uint64(len(r.slots))], v)
	r.write.Store(w + 1)
	return true
}

// Pull copies the oldest element into dst and frees its slot. It returns
// false and leaves dst untouched when the relay is empty.
func (r *Relay[T]) Pull(dst *T) bool {
	rd := r.read.Load()
	if rd == r.write.Load() {
		return false
	}

	r.copyFn(dst, &r.slots[rd%uint64(len(r.slots))])
	r.read.Store(rd + 1)
	return true
}

// Latest drains the relay and leaves only the newest element in dst.
// It reports whether anything was pulled.
func (r *Relay[T]) Latest(dst *T) bool {
	rd := r.read.Load()
	w := r.write.Load()
	if rd == w {
		return false
	}

	r.copyFn(dst, &r.slots[(w-1)%uint64(len(r.slots))])
	r.read.Store(w)
	return true
}

// Reset discards every pending element. Consumer side only.
func (r *Relay[T]) Reset() {
	r.read.Store(r.write.Load())
}

// Len returns the number of pending elements. From a goroutine other than
// the producer or consumer it is only a snapshot.
func (r *Relay[T]) Len() int {
	rd := r.read.Load()
	return int(r.write.Load() - rd)
}

// Cap returns the slot count.
func (r *Relay[T]) Cap() int {
	return len(r.slots)
}

// Dropped returns how many pushes were rejected because the relay was full.
func (r *Relay[T]) Dropped() uint64 {
	return r.dropped.Load()
}
