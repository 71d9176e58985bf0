package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}

// ShiftAppend slides history left by len(tail) and writes tail at the end,
// keeping len(history) unchanged. When tail is at least as long as history
// only its newest len(history) samples are kept.
func ShiftAppend(history, tail []float64) {
	n, m := len(history), len(tail)
	if m >= n {
		copy(history, tail[m-n:])
		return
	}

	copy(history, history[m:])
	copy(history[n-m:], tail)
}
