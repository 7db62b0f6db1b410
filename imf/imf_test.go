package imf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKroupaBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	imf := Kroupa(0.5, 100)

	for i := 0; i < 10000; i++ {
		m := imf.Next(rng)
		assert.True(t, m >= 0.5, "mass %g below lower limit", m)
		assert.True(t, m <= 100, "mass %g above upper limit", m)
	}
}

func TestKroupaFavorsLowMasses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	imf := Kroupa(0.08, 100)

	low, high := 0, 0
	for i := 0; i < 10000; i++ {
		if imf.Next(rng) < 0.5 {
			low++
		} else {
			high++
		}
	}
	assert.Greater(t, low, high, "IMF should be dominated by low masses")
}

func TestKroupaDegenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	imf := Kroupa(1, 1)
	assert.Equal(t, 1.0, imf.Next(rng))
}

func TestKroupaExtendedUpperLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	imf := Kroupa(0.5, 150)
	for i := 0; i < 10000; i++ {
		assert.LessOrEqual(t, imf.Next(rng), 150.0)
	}
}

func TestNewMassesRespectsBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	imf := Kroupa(0.5, 100)

	for _, budget := range []float64{0, 0.3, 1, 10, 300} {
		masses := imf.NewMasses(budget, rng)
		total := 0.0
		for _, m := range masses {
			total += m
		}
		assert.LessOrEqual(t, total, budget, "budget %g exceeded", budget)
	}
}

func TestNewMassesEmptyBelowLowerLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	imf := Kroupa(0.5, 100)

	// No single star fits in a budget below the lower mass limit.
	assert.Len(t, imf.NewMasses(0.4, rng), 0)
}

func TestNewMassesDeterministic(t *testing.T) {
	imf := Kroupa(0.5, 100)
	a := imf.NewMasses(50, rand.New(rand.NewSource(6)))
	b := imf.NewMasses(50, rand.New(rand.NewSource(6)))
	assert.Equal(t, a, b)
}
