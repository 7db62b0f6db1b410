/*package starform turns groups of sink particles into stars.

Stellar masses are drawn from a Kroupa IMF against each group's mass
budget, stars are placed around the group's sinks, and the mass that went
into stars is removed from the sinks. The algorithm follows Liow et al.
(2022, MNRAS 510, 2657) and Rieder et al. (2022, MNRAS 509, 6155).*/
package starform

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/kyliow/greta"
	"github.com/kyliow/greta/imf"
)

// Former forms stars from sink groups. It owns the pending primary mass of
// every group: the mass of the next star the group will form, reserved
// until the group has accreted enough mass to form it. The cache makes
// star formation resumable, so a later call never double-draws a star the
// group could not yet afford.
type Former struct {
	// IMF is the mass distribution stars are drawn from.
	IMF *imf.MultiplePartIMF
	// LocalSoundSpeed, in km/s, sets the velocity dispersion of new stars
	// around sinks which do not carry an internal energy.
	LocalSoundSpeed float64
	// MinimumSinkMass is the floor, in MSun, that removing star mass from
	// a single sink may not push it below.
	MinimumSinkMass float64
	// ShrinkSinks recomputes sink radii from their reduced masses at
	// constant density. Sinks without an initial density keep their radii.
	ShrinkSinks bool

	rng     *rand.Rand
	pending map[int]float64
}

// NewFormer creates a Former drawing from a Kroupa IMF truncated to
// [lowerMassLimit, upperMassLimit]. All randomness flows through rng.
func NewFormer(lowerMassLimit, upperMassLimit float64, rng *rand.Rand) *Former {
	return &Former{
		IMF:             imf.Kroupa(lowerMassLimit, upperMassLimit),
		LocalSoundSpeed: 0.3,
		MinimumSinkMass: 0.01,
		rng:             rng,
		pending:         map[int]float64{},
	}
}

// Pending returns the cached mass of the next star the given group will
// form, or 0 if none has been drawn yet.
func (f *Former) Pending(group int) float64 {
	return f.pending[group]
}

// FormStars forms stars from the sinks in the given group. It returns
// (nil, nil) when the group cannot form stars this round: either its mass
// is below its pending primary mass, or the leftover budget was too small
// for even one more star. Both leave the pending mass cached for a later
// call. An empty group is a group assignment defect and returns an error.
func (f *Former) FormStars(group int, sinks greta.Sinks) ([]greta.Star, error) {
	members := sinks.Group(group)
	if len(members) == 0 {
		return nil, fmt.Errorf(
			"There is no sink in group %d! Check group assignment.", group,
		)
	}

	groupMass := members.TotalMass()

	nextMass := f.pending[group]
	if nextMass == 0 {
		nextMass = f.IMF.Next(f.rng)
		f.pending[group] = nextMass
	}

	if groupMass < nextMass {
		// The group is not massive enough for the next star.
		return nil, nil
	}

	// Form stars from the leftover group sink mass.
	masses := f.IMF.NewMasses(groupMass-nextMass, f.rng)
	if len(masses) == 0 {
		return nil, nil
	}

	// The smallest drawn mass is not formed this round. It becomes the
	// group's next primary, so a later call continues the same sequence.
	sort.Sort(sort.Reverse(sort.Float64Slice(masses)))
	starMasses := append([]float64{nextMass}, masses[:len(masses)-1]...)
	f.pending[group] = masses[len(masses)-1]
	sort.Sort(sort.Reverse(sort.Float64Slice(starMasses)))

	stars := f.placeStars(group, members, starMasses)
	f.reduceSinks(members, stars)

	return stars, nil
}

// placeStars builds the star particles for the given masses. Each star is
// placed in and around a sink of the group chosen with probability
// proportional to the sink's share of the group mass.
func (f *Former) placeStars(
	group int, members greta.Sinks, masses []float64,
) []greta.Star {
	probs := make([]float64, len(members))
	total := members.TotalMass()
	sum := 0.0
	for i, s := range members {
		probs[i] = s.Mass / total
		sum += probs[i]
	}
	// Ensure the sum is exactly 1.
	for i := range probs {
		probs[i] /= sum
	}

	stars := make([]greta.Star, len(masses))
	for i, m := range masses {
		parent := members[f.choose(probs)]
		u := parent.U
		if u <= 0 {
			u = f.LocalSoundSpeed * f.LocalSoundSpeed
		}

		// Random position within the radius of the sink the star is
		// assigned to.
		rho := f.rng.Float64() * parent.Radius
		dx := greta.SphereVec(
			rho, 2*math.Pi*f.rng.Float64(), math.Pi*f.rng.Float64(),
		)

		// Random velocity: the magnitude is gaussian with the sink's sound
		// speed as its scale, as in Wall et al. (2019), and the direction
		// is uniform. The sink's own velocity is already included.
		v := f.rng.NormFloat64() * math.Sqrt(u)
		dv := greta.SphereVec(
			v, 2*math.Pi*f.rng.Float64(), math.Pi*f.rng.Float64(),
		)

		star := greta.Star{
			Mass:        m,
			Age:         0,
			Radius:      greta.StarRadius,
			Group:       group,
			OriginCloud: parent.ID,
		}
		for k := 0; k < 3; k++ {
			star.Pos[k] = parent.Pos[k] + dx[k]
			star.Vel[k] = parent.Vel[k] + dv[k]
		}
		stars[i] = star
	}

	return stars
}

// choose draws an index from the given probability distribution.
func (f *Former) choose(probs []float64) int {
	u := f.rng.Float64()
	c := 0.0
	for i, p := range probs {
		c += p
		if u < c {
			return i
		}
	}
	return len(probs) - 1
}

// reduceSinks removes the mass of the new stars from the sinks they formed
// around. A sink is never pushed below MinimumSinkMass by its own stars;
// mass which could not be taken from a star's own sink is spread over the
// whole group instead, so the group as a whole always loses exactly the
// formed star mass.
func (f *Former) reduceSinks(members greta.Sinks, stars []greta.Star) {
	excess := 0.0
	for _, s := range members {
		nearby := 0.0
		for i := range stars {
			if stars[i].OriginCloud == s.ID {
				nearby += stars[i].Mass
			}
		}

		if s.Mass > f.MinimumSinkMass {
			if s.Mass-nearby <= f.MinimumSinkMass {
				excess += nearby - s.Mass + f.MinimumSinkMass
				s.Mass = f.MinimumSinkMass
			} else {
				s.Mass -= nearby
			}
		} else {
			excess += nearby
		}
	}

	// Reduce all sinks in the group equally by the excess star mass.
	ratio := 1 - excess/members.TotalMass()
	for _, s := range members {
		s.Mass *= ratio
	}

	if f.ShrinkSinks {
		for _, s := range members {
			if s.InitialDensity > 0 {
				s.Radius = math.Cbrt(
					s.Mass / s.InitialDensity / (4.0 / 3.0 * math.Pi),
				)
			}
		}
	}
}
