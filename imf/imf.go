/*package imf samples stellar masses from broken power law initial mass
functions. Masses are in MSun throughout.*/
package imf

import (
	"math"
	"math/rand"
)

// Break masses and segment slopes of the Kroupa (2001) IMF.
var (
	kroupaBreaks = []float64{0.01, 0.08, 0.5, 100}
	kroupaAlphas = []float64{-0.3, -1.3, -2.3}
)

// MultiplePartIMF is a piecewise power law mass distribution truncated to
// a mass range.
type MultiplePartIMF struct {
	bounds []float64 // One more element than alphas.
	alphas []float64
	cum    []float64 // cum[0] = 0, cum[len(alphas)] = 1.
	total  float64
}

// NewMultiplePartIMF creates a piecewise power law distribution with the
// given break masses and slopes, truncated to [min, max]. breaks must be
// increasing and must contain one more element than alphas. If max is
// larger than the last break mass the top segment is extended to max with
// its own slope.
func NewMultiplePartIMF(breaks, alphas []float64, min, max float64) *MultiplePartIMF {
	n := len(alphas)
	bounds := make([]float64, n+1)
	copy(bounds, breaks[:n+1])

	if min < bounds[0] {
		min = bounds[0]
	}
	if max > bounds[n] {
		bounds[n] = max
	}
	for i := range bounds {
		if bounds[i] < min {
			bounds[i] = min
		}
		if bounds[i] > max {
			bounds[i] = max
		}
	}

	imf := &MultiplePartIMF{bounds: bounds, alphas: alphas}
	imf.cum = make([]float64, n+1)
	for i := 0; i < n; i++ {
		imf.total += powerIntegral(bounds[i], bounds[i+1], alphas[i])
		imf.cum[i+1] = imf.total
	}
	for i := range imf.cum {
		imf.cum[i] /= imf.total
	}
	imf.cum[n] = 1

	return imf
}

// Kroupa returns the Kroupa IMF truncated to [min, max].
func Kroupa(min, max float64) *MultiplePartIMF {
	return NewMultiplePartIMF(kroupaBreaks, kroupaAlphas, min, max)
}

// powerIntegral integrates m^alpha from lo to hi.
func powerIntegral(lo, hi, alpha float64) float64 {
	if hi <= lo {
		return 0
	}
	b := alpha + 1
	if b == 0 {
		return math.Log(hi / lo)
	}
	return (math.Pow(hi, b) - math.Pow(lo, b)) / b
}

// Next draws a single mass.
func (imf *MultiplePartIMF) Next(rng *rand.Rand) float64 {
	n := len(imf.alphas)
	if imf.total <= 0 {
		// Degenerate range: every bound is the same mass.
		return imf.bounds[n]
	}

	u := rng.Float64()
	i := 0
	for i < n-1 && u > imf.cum[i+1] {
		i++
	}

	lo, hi := imf.bounds[i], imf.bounds[i+1]
	b := imf.alphas[i] + 1
	v := rng.Float64()
	if b == 0 {
		return lo * math.Pow(hi/lo, v)
	}
	lob, hib := math.Pow(lo, b), math.Pow(hi, b)
	return math.Pow(lob+v*(hib-lob), 1/b)
}

// NewMasses draws masses until drawing another would push their total over
// budget. The returned slice may be empty.
func (imf *MultiplePartIMF) NewMasses(budget float64, rng *rand.Rand) []float64 {
	masses := []float64{}
	total := 0.0
	for {
		m := imf.Next(rng)
		if total+m > budget {
			return masses
		}
		total += m
		masses = append(masses, m)
	}
}
