package greta

import (
	"sort"
)

// Sinks is a collection of sink particles. Aggregate quantities are
// computed on demand and never cached.
type Sinks []*Sink

func (s Sinks) Len() int           { return len(s) }
func (s Sinks) Less(i, j int) bool { return s[i].Mass < s[j].Mass }
func (s Sinks) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SortByMass sorts the sinks from most to least massive.
func (s Sinks) SortByMass() {
	sort.Sort(sort.Reverse(s))
}

// TotalMass returns the summed mass of the sinks.
func (s Sinks) TotalMass() float64 {
	sum := 0.0
	for _, sink := range s {
		sum += sink.Mass
	}
	return sum
}

// CenterOfMass returns the mass-weighted mean position of the sinks.
func (s Sinks) CenterOfMass() Vec {
	com, m := Vec{}, s.TotalMass()
	for _, sink := range s {
		for k := 0; k < 3; k++ {
			com[k] += sink.Mass * sink.Pos[k]
		}
	}
	for k := 0; k < 3; k++ {
		com[k] /= m
	}
	return com
}

// CenterOfMassVelocity returns the mass-weighted mean velocity of the
// sinks.
func (s Sinks) CenterOfMassVelocity() Vec {
	comv, m := Vec{}, s.TotalMass()
	for _, sink := range s {
		for k := 0; k < 3; k++ {
			comv[k] += sink.Mass * sink.Vel[k]
		}
	}
	for k := 0; k < 3; k++ {
		comv[k] /= m
	}
	return comv
}

// MinBirthTime returns the birth time of the earliest formed sink.
func (s Sinks) MinBirthTime() float64 {
	min := s[0].BirthTime
	for _, sink := range s[1:] {
		if sink.BirthTime < min {
			min = sink.BirthTime
		}
	}
	return min
}

// KineticEnergy returns the summed kinetic energy of the sinks in
// MSun (km/s)^2.
func (s Sinks) KineticEnergy() float64 {
	sum := 0.0
	for _, sink := range s {
		v2 := sink.Vel[0]*sink.Vel[0] +
			sink.Vel[1]*sink.Vel[1] +
			sink.Vel[2]*sink.Vel[2]
		sum += 0.5 * sink.Mass * v2
	}
	return sum
}

// PotentialEnergy returns the pairwise gravitational potential energy of
// the sinks in MSun (km/s)^2.
func (s Sinks) PotentialEnergy() float64 {
	sum := 0.0
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			r := s[i].Pos.Dist(&s[j].Pos)
			sum -= G * s[i].Mass * s[j].Mass / r
		}
	}
	return sum
}

// MaxGroup returns the highest group index among the sinks, which is the
// number of groups once assignment has finished.
func (s Sinks) MaxGroup() int {
	max := 0
	for _, sink := range s {
		if sink.Group > max {
			max = sink.Group
		}
	}
	return max
}

// Group returns the sinks belonging to the group with the given index.
func (s Sinks) Group(i int) Sinks {
	group := Sinks{}
	for _, sink := range s {
		if sink.Group == i {
			group = append(group, sink)
		}
	}
	return group
}
