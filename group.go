package greta

import (
	"math"
)

// AssignGroup assigns a group index to sink. The sink is compared against
// every existing group in sinks and joins the one it is most bound to,
// among those it is close to, co-moving with and coeval with. If no group
// passes all three checks the sink opens a new group, so every initialized
// sink has a group index >= 1.
//
// Sinks should be fed to AssignGroup in descending-mass order so that the
// dominant group cores form before their satellites are evaluated.
func AssignGroup(sink *Sink, sinks Sinks, groupRadius, groupSpeed, groupAge float64) {
	if sink.Initialized {
		return
	}

	groups := sinks.MaxGroup()
	bestEtot := math.Inf(+1)
	for i := 1; i <= groups; i++ {
		group := sinks.Group(i)

		// Check 1: the sink is within the sampling radius from the center
		// of mass of the i-th group.
		com := group.CenterOfMass()
		if sink.Pos.Dist(&com) > groupRadius {
			continue
		}

		// Check 2: the sink is within the sampling speed from the
		// center-of-mass velocity of the group.
		comv := group.CenterOfMassVelocity()
		if sink.Vel.Dist(&comv) > groupSpeed {
			continue
		}

		// Check 3: the sink is similar in age to the group. The difference
		// is signed: a sink born before the group's earliest member always
		// passes.
		if sink.BirthTime-group.MinBirthTime() > groupAge {
			continue
		}

		// Check 4: the group the sink is most bound to wins. Ties keep the
		// lowest group index.
		trial := append(append(Sinks{}, group...), sink)
		etot := trial.KineticEnergy() + trial.PotentialEnergy()
		if etot < bestEtot {
			bestEtot = etot
			sink.Group = i
		}
	}

	// The sink is not bound to any of the existing groups, so it starts
	// its own.
	if sink.Group == 0 {
		sink.Group = groups + 1
	}

	sink.Initialized = true
}
