package greta

import (
	"math"
	"testing"
)

func almostEq(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

func TestAggregates(t *testing.T) {
	sinks := Sinks{
		{ID: 0, Pos: Vec{0, 0, 0}, Vel: Vec{1, 0, 0}, Mass: 1, BirthTime: 2},
		{ID: 1, Pos: Vec{4, 0, 0}, Vel: Vec{0, 0, 0}, Mass: 3, BirthTime: 1},
	}

	if m := sinks.TotalMass(); !almostEq(m, 4, 1e-10) {
		t.Errorf("TotalMass() = %g instead of 4", m)
	}

	com := sinks.CenterOfMass()
	if !almostEq(com[0], 3, 1e-10) || com[1] != 0 || com[2] != 0 {
		t.Errorf("CenterOfMass() = %v instead of {3 0 0}", com)
	}

	comv := sinks.CenterOfMassVelocity()
	if !almostEq(comv[0], 0.25, 1e-10) {
		t.Errorf("CenterOfMassVelocity() = %v instead of {0.25 0 0}", comv)
	}

	if bt := sinks.MinBirthTime(); bt != 1 {
		t.Errorf("MinBirthTime() = %g instead of 1", bt)
	}
}

func TestEnergies(t *testing.T) {
	sinks := Sinks{
		{Pos: Vec{0, 0, 0}, Vel: Vec{2, 0, 0}, Mass: 2},
		{Pos: Vec{0, 2, 0}, Vel: Vec{0, 0, 0}, Mass: 3},
	}

	// 0.5 * 2 * 2^2
	if ke := sinks.KineticEnergy(); !almostEq(ke, 4, 1e-10) {
		t.Errorf("KineticEnergy() = %g instead of 4", ke)
	}

	// -G * 2 * 3 / 2
	if pe := sinks.PotentialEnergy(); !almostEq(pe, -3*G, 1e-12) {
		t.Errorf("PotentialEnergy() = %g instead of %g", pe, -3*G)
	}
}

func TestSortByMass(t *testing.T) {
	sinks := Sinks{{Mass: 1}, {Mass: 5}, {Mass: 3}}
	sinks.SortByMass()
	for i := 1; i < len(sinks); i++ {
		if sinks[i].Mass > sinks[i-1].Mass {
			t.Errorf(
				"sinks not sorted in descending mass order: %g before %g",
				sinks[i-1].Mass, sinks[i].Mass,
			)
		}
	}
}

func TestGroupSelection(t *testing.T) {
	sinks := Sinks{{Group: 1}, {Group: 2}, {Group: 1}, {Group: 3}}

	if n := sinks.MaxGroup(); n != 3 {
		t.Errorf("MaxGroup() = %d instead of 3", n)
	}
	if g := sinks.Group(1); len(g) != 2 {
		t.Errorf("len(Group(1)) = %d instead of 2", len(g))
	}
	if g := sinks.Group(4); len(g) != 0 {
		t.Errorf("len(Group(4)) = %d instead of 0", len(g))
	}
}

func TestSphereVec(t *testing.T) {
	v := SphereVec(2, 0, 0)
	if !almostEq(v[2], 2, 1e-10) || !almostEq(v[0], 0, 1e-10) {
		t.Errorf("SphereVec(2, 0, 0) = %v instead of {0 0 2}", v)
	}

	v = SphereVec(3, 0, math.Pi/2)
	if !almostEq(v[0], 3, 1e-10) || !almostEq(v[2], 0, 1e-10) {
		t.Errorf("SphereVec(3, 0, pi/2) = %v instead of {3 0 0}", v)
	}

	if l := v.Length(); !almostEq(l, 3, 1e-10) {
		t.Errorf("Length() = %g instead of 3", l)
	}
}
