package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/cbegin/poly-go/internal/rng"
	"github.com/cbegin/poly-go/internal/signal"
)

func TestRandomOperatorDrawsFromPool(t *testing.T) {
	r := rng.New(0)
	pool := DefaultParams().Operators
	for i := 0; i < 200; i++ {
		op, err := RandomOperator(r, 1.0, pool)
		if err != nil {
			t.Fatalf("random operator: %v", err)
		}
		if op.sampleRate != 1.0 {
			t.Fatalf("sample rate = %v, want 1", op.sampleRate)
		}
		matched := false
		for _, spec := range pool {
			if spec.Signal == op.Signal() && op.Ratio() >= spec.Ratio.Min && op.Ratio() <= spec.Ratio.Max {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("operator %v does not match any pool entry", op)
		}
	}
}

func TestRandomOperatorEmptyPool(t *testing.T) {
	if _, err := RandomOperator(rng.New(0), 44100, nil); !errors.Is(err, rng.ErrEmpty) {
		t.Fatalf("err = %v, want rng.ErrEmpty", err)
	}
}

func TestOperatorSetFrequency(t *testing.T) {
	op := NewOperator(1.0, 0.2, signal.Sine)
	op.SetFrequency(440)
	if math.Abs(float64(op.Frequency())-88) > 1e-4 {
		t.Fatalf("frequency = %f, want 88", op.Frequency())
	}
}

func TestOperatorNextAdvancesBeforeGenerating(t *testing.T) {
	op := NewOperator(1.0, 1.0, signal.Sine)
	op.SetFrequency(math.Pi)
	want := []float32{
		0.77685404,
		0.97834,
		0.45523128,
		-0.40504146,
		-0.9653236,
		-0.8106515,
		-0.05557911,
		0.74065745,
	}
	for i, w := range want {
		if got := op.Next(); math.Abs(float64(got-w)) > 1e-3 {
			t.Errorf("sample %d: got %f, want %f", i, got, w)
		}
	}
}

func TestOperatorString(t *testing.T) {
	op := NewOperator(44100, 0.5, signal.Saw)
	if got := op.String(); got != "(Saw, 0.5)" {
		t.Fatalf("String() = %q, want %q", got, "(Saw, 0.5)")
	}
}
