// Package activation holds the scalar functions shared by the network and
// neuron models.
package activation

import (
	"log"
	"math"
	"os"
	"sync/atomic"
)

// Number is any value MapRange can convert through float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Epsilon is the float64 machine epsilon used by the MapRange guard.
const Epsilon = 2.220446049250313e-16

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(os.Stderr, "", log.LstdFlags))
}

// SetLogger redirects MapRange diagnostics. A nil logger restores stderr.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stderr, "", log.LstdFlags)
	}
	logger.Store(l)
}

// Logistic returns 1 / (1 + e^-z).
func Logistic(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// MapRange linearly maps value from [inMin, inMax] onto [outMin, outMax].
// When the input interval is narrower than Epsilon it logs a warning and
// returns outMin.
func MapRange[X, Y Number](value, inMin, inMax X, outMin, outMax Y) Y {
	v, lo, hi := float64(value), float64(inMin), float64(inMax)
	oLo, oHi := float64(outMin), float64(outMax)
	if math.Abs(lo-hi) < Epsilon {
		logger.Load().Printf("activation: map_range avoiding divide by zero in_min=%v in_max=%v", lo, hi)
		return outMin
	}
	return Y((v-lo)/(hi-lo)*(oHi-oLo) + oLo)
}
