package neuron

import (
	"fmt"
	"strings"
)

// Kind selects a neuron's activation policy.
type Kind int

const (
	// Linear outputs the mean weighted input.
	Linear Kind = iota
	// BinaryThreshold fires when the mean weighted input exceeds its threshold.
	BinaryThreshold
	// RectifiedLinear is silent up to its threshold and rescales above it.
	RectifiedLinear
	// Sigmoid squashes the total input through the logistic function.
	Sigmoid
	// StochasticBinary fires when the Sigmoid output exceeds 0.5.
	StochasticBinary
)

// Aliases kept for callers that use the older names.
const (
	LinearThreshold = RectifiedLinear
	Logistic        = Sigmoid
)

var kindNames = map[Kind]string{
	Linear:           "linear",
	BinaryThreshold:  "binary_threshold",
	RectifiedLinear:  "rectified_linear",
	Sigmoid:          "sigmoid",
	StochasticBinary: "stochastic_binary",
}

var kindAliases = map[string]Kind{
	"linear_threshold": RectifiedLinear,
	"logistic":         Sigmoid,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Thresholded reports whether the kind reads its threshold.
func (k Kind) Thresholded() bool {
	return k == BinaryThreshold || k == RectifiedLinear
}

// ParseKind accepts the names printed by String plus the aliases, case
// insensitively, with '-' or ' ' in place of '_'.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for k, name := range kindNames {
		if name == norm {
			return k, nil
		}
	}
	if k, ok := kindAliases[norm]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("neuron: unknown kind %q", s)
}

// UnmarshalText lets config files name kinds directly.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("neuron: unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}
