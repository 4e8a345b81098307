package params

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, [Dim]float64{1, 0, 1, 10}, s.Values())
}

func TestValuesRoundTrip(t *testing.T) {
	v := [Dim]float64{0.5, 1.5, 2.5, 3.5}
	assert.Equal(t, v, FromValues(v).Values())
}

func TestCubicSpace(t *testing.T) {
	cs, err := NewCubicSpace(0, 10)
	require.NoError(t, err)

	tests := []struct {
		name  string
		sigma Sigma
		want  bool
	}{
		{"Inside", Sigma{1, 2, 3, 4}, true},
		{"LowEdge", Sigma{0, 0, 0, 0}, true},
		{"HighEdge", Sigma{10, 10, 10, 10}, true},
		{"Below", Sigma{-0.1, 0, 0, 0}, false},
		{"Above", Sigma{0, 0, 0, 10.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cs.Contains(tt.sigma))
		})
	}
}

func TestCubicSpaceInvalid(t *testing.T) {
	_, err := NewCubicSpace(5, 1)
	require.Error(t, err)
}

func TestSampleInBox(t *testing.T) {
	cs := DefaultSpace()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 100; i++ {
		assert.True(t, cs.Contains(cs.Sample(rng)))
	}
}

func TestAffineCoefficients(t *testing.T) {
	tests := []struct {
		name  string
		sigma Sigma
		want  [NumAffineComponents]float64
	}{
		{"Origin", Sigma{0, 0, 0, 0}, [NumAffineComponents]float64{1, 0, 0, 0, 0}},
		{"FirstUnit", Sigma{1, 0, 0, 0}, [NumAffineComponents]float64{0, 1, 0, 0, 0}},
		{"SecondUnit", Sigma{0, 1, 0, 0}, [NumAffineComponents]float64{0, 0, 1, 0, 0}},
		{"Mixed", Sigma{1, 0, 1, 0}, [NumAffineComponents]float64{0, 0, 0, 1, 0}},
		{"Last", Sigma{0, 1, 0, 1}, [NumAffineComponents]float64{0, 0, 0, 0, 1}},
		{"General", Sigma{2, 3, 4, 5}, [NumAffineComponents]float64{-4, -2, -2, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AffineCoefficients(tt.sigma)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestAffineCoefficientsInterpolate(t *testing.T) {
	// At the parameter snapshots the decomposition reduces to the matching
	// fixed operator, so the coefficients must sum to one there.
	for _, s := range []Sigma{{0, 0, 0, 0}, {1, 0, 0, 0}, {0, 1, 0, 0}, {1, 0, 1, 0}, {0, 1, 0, 1}} {
		c := AffineCoefficients(s)
		sum := 0.0
		for _, v := range c {
			sum += v
		}
		assert.InDelta(t, 1, sum, 1e-12)
	}
}
