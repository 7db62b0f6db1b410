package greta

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Length returns the norm of v.
func (v *Vec) Length() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Dist returns the distance between v and u.
func (v *Vec) Dist(u *Vec) float64 {
	dx := v[0] - u[0]
	dy := v[1] - u[1]
	dz := v[2] - u[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SphereVec converts the spherical coordinates (r, theta, phi) to a
// cartesian vector. theta is the azimuthal angle and phi the polar angle.
func SphereVec(r, theta, phi float64) Vec {
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return Vec{
		r * sinPhi * cosTheta,
		r * sinPhi * sinTheta,
		r * cosPhi,
	}
}
