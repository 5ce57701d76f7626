package signal

import (
	"fmt"
	"math"
	"strings"
)

// Signal selects one of the operator waveforms.
type Signal int

const (
	Sine Signal = iota
	Square
	Saw
)

const (
	twoPi   = math.Pi * 2
	frac2Pi = 2 / math.Pi
)

// Generate returns the waveform value at sample index clock for the given
// frequency. It is a pure function of its arguments.
func (s Signal) Generate(sampleRate, frequency, clock float32) float32 {
	switch s {
	case Square:
		f := truncate(frequency)
		if f == 0 || truncate(clock/sampleRate)%f == 0 {
			return 1
		}
		return -1
	case Saw:
		x := float64(frequency) * (math.Pi * float64(clock)) / float64(sampleRate)
		return float32(math.Atan(1 / math.Tan(frac2Pi*x)))
	default:
		return float32(math.Sin(twoPi * float64(frequency) * (float64(clock) / float64(sampleRate))))
	}
}

func (s Signal) String() string {
	switch s {
	case Sine:
		return "Sine"
	case Square:
		return "Square"
	case Saw:
		return "Saw"
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

func Parse(name string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "saw":
		return Saw, nil
	}
	return Sine, fmt.Errorf("unknown signal %q (expected sine|square|saw)", name)
}

func (s Signal) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Signal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// truncate converts toward zero, saturating negative and NaN input at 0.
func truncate(v float32) uint64 {
	if !(v > 0) {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}
