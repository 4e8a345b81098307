// Package params holds the parameter bookkeeping for the transport solver:
// the scattering/absorption cross-section coefficients, the box-shaped
// parameter space they range over, and the affine coefficient functionals of
// the right-hand-side decomposition.
package params

import (
	"fmt"
	"math/rand/v2"
)

// Dim is the number of scalar parameters.
const Dim = 4

// Sigma is the cross-section coefficient set of the right-hand-side
// operator. Named fields replace the positional 4-tuple the native solver
// takes: sigma_s in the scattering and absorbing regions, then sigma_t in
// the scattering and absorbing regions.
type Sigma struct {
	SScattering float64 `json:"sigma_s_scattering"`
	SAbsorbing  float64 `json:"sigma_s_absorbing"`
	TScattering float64 `json:"sigma_t_scattering"`
	TAbsorbing  float64 `json:"sigma_t_absorbing"`
}

// Default returns the solver's default coefficients.
func Default() Sigma {
	return Sigma{
		SScattering: 1,
		SAbsorbing:  0,
		TScattering: 1,
		TAbsorbing:  10,
	}
}

// FromValues builds a Sigma from the positional order the native solver
// expects.
func FromValues(v [Dim]float64) Sigma {
	return Sigma{
		SScattering: v[0],
		SAbsorbing:  v[1],
		TScattering: v[2],
		TAbsorbing:  v[3],
	}
}

// Values returns the coefficients in the positional order the native solver
// expects.
func (s Sigma) Values() [Dim]float64 {
	return [Dim]float64{s.SScattering, s.SAbsorbing, s.TScattering, s.TAbsorbing}
}

// String returns a compact representation.
func (s Sigma) String() string {
	return fmt.Sprintf("sigma(s_s=%g, s_a=%g, t_s=%g, t_a=%g)",
		s.SScattering, s.SAbsorbing, s.TScattering, s.TAbsorbing)
}

// CubicSpace is the box [Low, High]^4 the coefficients range over.
type CubicSpace struct {
	Low  float64
	High float64
}

// DefaultSpace returns the training box [0, 10]^4.
func DefaultSpace() CubicSpace {
	return CubicSpace{Low: 0, High: 10}
}

// NewCubicSpace constructs a box with the given bounds.
func NewCubicSpace(low, high float64) (CubicSpace, error) {
	if low > high {
		return CubicSpace{}, fmt.Errorf("invalid parameter box: low %g > high %g", low, high)
	}
	return CubicSpace{Low: low, High: high}, nil
}

// Contains reports whether every coefficient lies inside the box.
func (cs CubicSpace) Contains(s Sigma) bool {
	for _, v := range s.Values() {
		if v < cs.Low || v > cs.High {
			return false
		}
	}
	return true
}

// Sample draws a uniformly distributed coefficient set from the box.
func (cs CubicSpace) Sample(rng *rand.Rand) Sigma {
	var v [Dim]float64
	for i := range v {
		v[i] = cs.Low + rng.Float64()*(cs.High-cs.Low)
	}
	return FromValues(v)
}

// NumAffineComponents is the number of terms in the affine decomposition of
// the right-hand-side operator.
const NumAffineComponents = 5

// AffineCoefficients evaluates the coefficient functionals of the affine
// right-hand-side decomposition at s. The components correspond to the
// operator fixed at the parameter snapshots (0,0,0,0), (1,0,0,0), (0,1,0,0),
// (1,0,1,0) and (0,1,0,1).
func AffineCoefficients(s Sigma) [NumAffineComponents]float64 {
	v := s.Values()
	return [NumAffineComponents]float64{
		1 - v[0] - v[1],
		v[0] - v[2],
		v[1] - v[3],
		v[2],
		v[3],
	}
}
