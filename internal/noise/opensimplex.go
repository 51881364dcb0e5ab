// Package noise provides deterministic one-dimensional gradient noise.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Simplex samples OpenSimplex noise along the x axis. It is immutable
// after construction.
type Simplex struct {
	src opensimplex.Noise
}

var std = New(0)

// New returns a noise source. Equal seeds give equal noise.
func New(seed int64) *Simplex {
	return &Simplex{src: opensimplex.New(seed)}
}

// Signed evaluates the seed 0 noise at x.
func Signed(x float64) float64 { return std.Eval(x) }

// Eval returns the noise value at x, in [-1, 1], varying smoothly with x.
func (s *Simplex) Eval(x float64) float64 {
	return math.Max(-1, math.Min(1, s.src.Eval2(x, 0)))
}
