package signal

import (
	"math"
	"testing"
)

func generate(s Signal, sampleRate, frequency float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = s.Generate(sampleRate, frequency, float32(i))
	}
	return out
}

func assertSamples(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Errorf("sample %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestSine(t *testing.T) {
	assertSamples(t, generate(Sine, 8, 1, 4), []float32{0, 0.70710677, 1, 0.70710677})
}

func TestSquare(t *testing.T) {
	assertSamples(t, generate(Square, 4, 2, 9), []float32{1, 1, 1, 1, -1, -1, -1, -1, 1})
}

func TestSaw(t *testing.T) {
	got := generate(Saw, 8, 1, 5)
	assertSamples(t, got, []float32{1.5707963, 1.3207964, 1.0707964, 0.8207963, 0.5707963})
	for i := 1; i < len(got); i++ {
		if got[i] >= got[i-1] {
			t.Fatalf("saw not strictly decreasing at %d: %f >= %f", i, got[i], got[i-1])
		}
	}
}

func TestSquareZeroFrequencyDoesNotPanic(t *testing.T) {
	for _, f := range []float32{0, 0.5, -3, float32(math.NaN())} {
		if got := Square.Generate(44100, f, 12345); got != 1 {
			t.Errorf("square at frequency %v = %f, want 1", f, got)
		}
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		s    Signal
		want string
	}{
		{Sine, "Sine"},
		{Square, "Square"},
		{Saw, "Saw"},
	} {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	var s Signal
	if err := s.UnmarshalText([]byte(" Square ")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != Square {
		t.Fatalf("signal = %v, want Square", s)
	}
	if err := s.UnmarshalText([]byte("triangle")); err == nil {
		t.Fatalf("expected error for unknown signal")
	}
}
