package io

const (
	// ExampleGretaFile is printed by the -ExampleConfig mode of the main
	// binary.
	ExampleGretaFile = `[Greta]

#######################
# Required Parameters #
#######################

# Input sink particle catalog: a whitespace separated text table with one
# sink per row. The column layout is set by the *Column parameters below.
Input = path/to/sinks.txt

# Output name for the star particle catalog.
Output = stars.txt

#######################
# Optional Parameters #
#######################

# Grouping thresholds. A sink joins an existing group only if it is within
# GroupingDistance (pc) of the group's center of mass, within GroupingSpeed
# (km/s) of its center-of-mass velocity, and formed no more than
# GroupingAge (Myr) after the group's earliest member. With the defaults
# every sink forms its own group unless it coincides with one exactly.
# GroupingDistance = 0
# GroupingSpeed = 0
# GroupingAge = 0

# Stellar mass limits of the Kroupa IMF, in MSun.
# LowerMassLimit = 0.5
# UpperMassLimit = 100

# Velocity dispersion of new stars around sinks which carry no internal
# energy column, in km/s.
# LocalSoundSpeed = 0.3

# Star formation never removes more mass from a single sink than would
# leave it below this floor, in MSun.
# MinimumSinkMass = 0.01

# Recompute sink radii from their reduced masses at constant density.
# Requires a DensityColumn.
# ShrinkSinks = false

# Seed for the random number generator. Negative means derive a seed from
# the clock.
# Seed = -1

# Zero-based column layout of the input catalog. Position columns are
# required; x, y, z must be consecutive starting at PositionStartColumn,
# and likewise for velocities. Set a column to -1 if the catalog does not
# carry it: velocities default to 0 km/s, radii to 0.1 pc, birth times to
# 0 Myr, and IDs to the row index. UColumn is the specific internal energy
# in (km/s)^2 and DensityColumn the formation density in MSun/pc^3.
# IDColumn = 0
# MassColumn = 1
# PositionStartColumn = 2
# VelocityStartColumn = 5
# RadiusColumn = 8
# BirthTimeColumn = 9
# UColumn = -1
# DensityColumn = -1`
)

// GretaConfig is the [Greta] section of a configuration file.
type GretaConfig struct {
	// Required
	Input, Output string

	// Optional
	GroupingDistance float64
	GroupingSpeed    float64
	GroupingAge      float64

	LowerMassLimit, UpperMassLimit float64

	LocalSoundSpeed float64
	MinimumSinkMass float64
	ShrinkSinks     bool

	Seed int64

	ColumnConfig
}

// ColumnConfig gives the zero-based column layout of the input sink
// catalog. A negative index means the catalog does not carry that column
// and the documented default is used instead.
type ColumnConfig struct {
	IDColumn            int
	MassColumn          int
	PositionStartColumn int
	VelocityStartColumn int
	RadiusColumn        int
	BirthTimeColumn     int
	UColumn             int
	DensityColumn       int
}

// GretaWrapper is the gcfg target for files containing a [Greta] section.
type GretaWrapper struct {
	Greta GretaConfig
}

// DefaultGretaWrapper returns a GretaWrapper with every optional parameter
// set to its default.
func DefaultGretaWrapper() *GretaWrapper {
	con := GretaConfig{}
	con.LowerMassLimit = 0.5
	con.UpperMassLimit = 100
	con.LocalSoundSpeed = 0.3
	con.MinimumSinkMass = 0.01
	con.Seed = -1
	con.IDColumn = 0
	con.MassColumn = 1
	con.PositionStartColumn = 2
	con.VelocityStartColumn = 5
	con.RadiusColumn = 8
	con.BirthTimeColumn = 9
	con.UColumn = -1
	con.DensityColumn = -1
	return &GretaWrapper{con}
}

func (con *GretaConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *GretaConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *GretaConfig) ValidMassLimits() bool {
	return con.LowerMassLimit > 0 &&
		con.UpperMassLimit > con.LowerMassLimit
}
func (con *GretaConfig) ValidMinimumSinkMass() bool {
	return con.MinimumSinkMass > 0
}
