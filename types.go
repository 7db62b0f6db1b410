package greta

// Units used throughout: lengths in pc, speeds in km/s, masses in MSun and
// times in Myr.
const (
	// G is the gravitational constant in pc MSun^-1 (km/s)^2.
	G = 4.30091e-3

	// StarRadius is the radius assigned to every new star, in pc. For
	// Pentacle this is the PP radius.
	StarRadius = 0.05
)

// Sink is a sink particle: a reservoir of collapsed gas which stars are
// later extracted from. Optional attributes which were absent from the
// input catalog are filled with defaults at read time.
type Sink struct {
	ID       int64
	Pos, Vel Vec
	Mass     float64
	Radius   float64
	// BirthTime is the simulation time the sink formed at.
	BirthTime float64

	// U is the sink's specific internal energy in (km/s)^2. Values <= 0
	// mean the input catalog did not carry one and the local sound speed
	// is used instead.
	U float64
	// InitialDensity is the sink's density at creation in MSun/pc^3. It is
	// only used when sink shrinking is enabled. Values <= 0 mean unset.
	InitialDensity float64

	// Group is the 1-based index of the group the sink belongs to. 0 means
	// unassigned.
	Group       int
	Initialized bool
}

// Star is a stellar particle formed out of a sink group. Stars are never
// mutated after creation.
type Star struct {
	Mass     float64
	Age      float64
	Pos, Vel Vec
	Radius   float64
	Group    int
	// OriginCloud is the ID of the sink the star was placed around.
	OriginCloud int64
}
