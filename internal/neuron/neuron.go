// Package neuron models single units that aggregate weighted inputs and
// apply one of several activation policies. Neurons are independent of one
// another; wiring them into layers is up to the caller.
package neuron

import (
	"fmt"
	"math/rand"

	"ann/internal/activation"
)

// Sigmoid-style kinds remap the total input onto this range before
// squashing so the logistic output covers (0, 1).
const (
	squashMin = -10.0
	squashMax = 10.0
)

// Synapse is one weighted input. Weight is expected to lie in [0, 1]; this
// is not enforced.
type Synapse struct {
	Input  float64
	Weight float64
}

// Source supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// InputCountError is returned when SetInputs receives the wrong number of
// inputs.
type InputCountError struct {
	Expected int
	Got      int
}

func (e *InputCountError) Error() string {
	return fmt.Sprintf("neuron: the number of inputs (%d) must match the number of synapses (%d)", e.Got, e.Expected)
}

// Neuron is a tagged unit: Kind picks the policy, threshold is only read by
// the thresholded kinds.
type Neuron struct {
	kind      Kind
	threshold float64
	synapses  []Synapse
}

// New builds a neuron with one zero-input synapse per weight.
func New(kind Kind, threshold float64, weights []float64) *Neuron {
	syn := make([]Synapse, len(weights))
	for i, w := range weights {
		syn[i].Weight = w
	}
	return &Neuron{kind: kind, threshold: threshold, synapses: syn}
}

// NewRandom builds a neuron with n weights drawn from src. A nil src uses a
// fixed-seed generator.
func NewRandom(kind Kind, threshold float64, n int, src Source) *Neuron {
	if src == nil {
		src = rand.New(rand.NewSource(1))
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = src.Float64()
	}
	return New(kind, threshold, weights)
}

func NewLinear(weights ...float64) *Neuron { return New(Linear, 0, weights) }

func NewBinaryThreshold(threshold float64, weights ...float64) *Neuron {
	return New(BinaryThreshold, threshold, weights)
}

func NewRectifiedLinear(threshold float64, weights ...float64) *Neuron {
	return New(RectifiedLinear, threshold, weights)
}

func NewSigmoid(weights ...float64) *Neuron { return New(Sigmoid, 0, weights) }

func NewStochasticBinary(weights ...float64) *Neuron { return New(StochasticBinary, 0, weights) }

func (n *Neuron) Kind() Kind { return n.kind }

func (n *Neuron) Threshold() float64 { return n.threshold }

// Len is the fixed synapse count.
func (n *Neuron) Len() int { return len(n.synapses) }

// Synapses returns a copy of the neuron's synapses.
func (n *Neuron) Synapses() []Synapse {
	return append([]Synapse(nil), n.synapses...)
}

// SetInput sets the input of synapse i.
func (n *Neuron) SetInput(i int, v float64) { n.synapses[i].Input = v }

// SetWeight sets the weight of synapse i.
func (n *Neuron) SetWeight(i int, w float64) { n.synapses[i].Weight = w }

// SetInputs assigns inputs to the synapses positionally. The slice must
// have exactly one value per synapse; otherwise nothing is changed and an
// *InputCountError is returned.
func (n *Neuron) SetInputs(inputs []float64) error {
	if len(inputs) != len(n.synapses) {
		return &InputCountError{Expected: len(n.synapses), Got: len(inputs)}
	}
	for i, v := range inputs {
		n.synapses[i].Input = v
	}
	return nil
}

// MustSetInputs is SetInputs that panics on a length mismatch.
func (n *Neuron) MustSetInputs(inputs []float64) {
	if err := n.SetInputs(inputs); err != nil {
		panic(err.Error())
	}
}

func (n *Neuron) totalInput() float64 {
	total := 0.0
	for _, s := range n.synapses {
		total += s.Input * s.Weight
	}
	return total
}

func (n *Neuron) meanInput() float64 {
	return n.totalInput() / float64(len(n.synapses))
}

func (n *Neuron) squashed() float64 {
	mapped := activation.MapRange(n.totalInput(), 0, float64(len(n.synapses)), squashMin, squashMax)
	return activation.Logistic(mapped)
}

// Evaluate computes the neuron's output from the current synapse state.
func (n *Neuron) Evaluate() Output {
	switch n.kind {
	case Linear:
		return realOutput(n.kind, n.meanInput())
	case BinaryThreshold:
		return boolOutput(n.kind, n.meanInput() > n.threshold)
	case RectifiedLinear:
		mean := n.meanInput()
		if mean > n.threshold {
			return realOutput(n.kind, activation.MapRange(mean, n.threshold, 1.0, 0.0, 1.0))
		}
		return Output{kind: n.kind}
	case Sigmoid:
		return realOutput(n.kind, n.squashed())
	case StochasticBinary:
		return boolOutput(n.kind, n.squashed() > 0.5)
	default:
		panic(fmt.Sprintf("neuron: unknown kind %d", int(n.kind)))
	}
}
