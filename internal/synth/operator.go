package synth

import (
	"fmt"

	"github.com/cbegin/poly-go/internal/rng"
	"github.com/cbegin/poly-go/internal/signal"
)

// Operator is a single oscillator tuned to a ratio of the played note.
type Operator struct {
	sampleRate float32
	frequency  float32
	ratio      float32
	signal     signal.Signal
	clock      uint64
}

func NewOperator(sampleRate, ratio float32, sig signal.Signal) Operator {
	return Operator{
		sampleRate: sampleRate,
		ratio:      ratio,
		signal:     sig,
	}
}

// RandomOperator picks a configuration from pool and draws its ratio.
func RandomOperator(r *rng.Rand, sampleRate float32, pool []OperatorSpec) (Operator, error) {
	spec, err := rng.Choose(r, pool)
	if err != nil {
		return Operator{}, err
	}
	return NewOperator(sampleRate, r.Float32(spec.Ratio), spec.Signal), nil
}

func (o *Operator) SetFrequency(base float32) {
	o.frequency = base * o.ratio
}

// Next advances the operator by one sample and returns its output.
func (o *Operator) Next() float32 {
	o.clock++
	return o.signal.Generate(o.sampleRate, o.frequency, float32(o.clock))
}

func (o Operator) Frequency() float32    { return o.frequency }
func (o Operator) Ratio() float32        { return o.ratio }
func (o Operator) Signal() signal.Signal { return o.signal }

func (o Operator) String() string {
	return fmt.Sprintf("(%v, %v)", o.signal, o.ratio)
}
