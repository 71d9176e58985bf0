package eq

import (
	"errors"
	"fmt"
	"strings"
)

// Slope selects the roll-off of a cut filter.
type Slope int

// Cut-filter slopes, in the order the host presents them.
const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// ErrUnknownSlope is returned by ParseSlope for unrecognized labels.
var ErrUnknownSlope = errors.New("eq: unknown slope")

type slopeInfo struct {
	stages int
	label  string
}

// Each 12 dB/octave of roll-off is one second-order section.
var slopeTable = [...]slopeInfo{
	Slope12: {stages: 1, label: "12 db/Oct"},
	Slope24: {stages: 2, label: "24 db/Oct"},
	Slope36: {stages: 3, label: "36 db/Oct"},
	Slope48: {stages: 4, label: "48 db/Oct"},
}

// Slopes returns every slope in ascending order.
func Slopes() []Slope {
	return []Slope{Slope12, Slope24, Slope36, Slope48}
}

// Valid reports whether s is one of the defined slopes.
func (s Slope) Valid() bool {
	return s >= Slope12 && s <= Slope48
}

// Clamp maps out-of-range values onto the nearest defined slope.
func (s Slope) Clamp() Slope {
	return min(max(s, Slope12), Slope48)
}

// Stages returns the number of active biquad stages for s.
func (s Slope) Stages() int {
	return slopeTable[s.Clamp()].stages
}

// Order returns the Butterworth filter order for s.
func (s Slope) Order() int {
	return 2 * s.Stages()
}

// DBPerOctave returns the asymptotic roll-off of s.
func (s Slope) DBPerOctave() int {
	return 12 * s.Stages()
}

func (s Slope) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slope(%d)", int(s))
	}
	return slopeTable[s].label
}

// ParseSlope accepts a choice label ("24 db/Oct") or a bare dB figure ("24").
func ParseSlope(label string) (Slope, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	for _, s := range Slopes() {
		if norm == strings.ToLower(slopeTable[s].label) || norm == fmt.Sprint(s.DBPerOctave()) {
			return s, nil
		}
	}
	return Slope12, fmt.Errorf("%w: %q", ErrUnknownSlope, label)
}
