package neuron

import "strconv"

// Output is the result of Evaluate. Which accessor is meaningful depends on
// the kind that produced it: Linear and Sigmoid are real valued, the binary
// kinds are boolean, and RectifiedLinear is real valued but may be absent.
type Output struct {
	kind    Kind
	value   float64
	fired   bool
	present bool
}

func realOutput(k Kind, v float64) Output {
	return Output{kind: k, value: v, present: true}
}

func boolOutput(k Kind, b bool) Output {
	return Output{kind: k, fired: b, present: true}
}

// Kind is the kind of neuron that produced the output.
func (o Output) Kind() Kind { return o.kind }

// Real returns the real value and whether one is present. Binary kinds
// never carry a real value.
func (o Output) Real() (float64, bool) {
	if !o.present || o.kind == BinaryThreshold || o.kind == StochasticBinary {
		return 0, false
	}
	return o.value, true
}

// Bool returns the firing state of the binary kinds and false otherwise.
func (o Output) Bool() bool { return o.fired }

// Present is false only for a RectifiedLinear neuron below its threshold.
func (o Output) Present() bool { return o.present }

// Float collapses the output to a number: 1 or 0 for the binary kinds, 0
// for an absent value.
func (o Output) Float() float64 {
	switch o.kind {
	case BinaryThreshold, StochasticBinary:
		if o.fired {
			return 1
		}
		return 0
	}
	if !o.present {
		return 0
	}
	return o.value
}

func (o Output) String() string {
	switch o.kind {
	case BinaryThreshold, StochasticBinary:
		return strconv.FormatBool(o.fired)
	}
	if !o.present {
		return "none"
	}
	return strconv.FormatFloat(o.value, 'g', 6, 64)
}
