package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"gopkg.in/gcfg.v1"

	"github.com/kyliow/greta"
	"github.com/kyliow/greta/io"
	"github.com/kyliow/greta/starform"
)

func main() {
	var gretaStr, exampleConfig string

	flag.StringVar(
		&gretaStr, "Greta", "",
		"Configuration file for [Greta] mode: group the sinks in a "+
			"catalog and form stars from the groups.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Greta'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		switch exampleConfig {
		case "Greta":
			fmt.Println(io.ExampleGretaFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Greta'.",
			)
		}

	case gretaStr != "":
		wrap := io.DefaultGretaWrapper()
		err := gcfg.ReadFileInto(wrap, gretaStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Greta

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidMassLimits() {
			log.Fatal(
				"Invalid mass limits: 'LowerMassLimit' must be positive " +
					"and below 'UpperMassLimit'.",
			)
		} else if !con.ValidMinimumSinkMass() {
			log.Fatal("Invalid 'MinimumSinkMass' value.")
		}

		gretaMain(con)

	default:
		log.Fatal("Either the 'Greta' or 'ExampleConfig' flag must be set.")
	}
}

func gretaMain(con *io.GretaConfig) {
	sinks, err := io.ReadSinks(con.Input, &con.ColumnConfig)
	if err != nil {
		log.Fatal(err.Error())
	}

	seed := con.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fmt.Println("Assigning groups to the sink particles...")
	sinks.SortByMass()
	nSinks := len(sinks)
	mSinks := sinks.TotalMass()
	fmt.Printf("Number of sinks: %d\n", nSinks)
	fmt.Printf("Total sink mass: %g MSun\n", mSinks)

	for i, sink := range sinks {
		if i%progressStep(nSinks) == 0 {
			fmt.Printf("Progress: %d/%d\n", i, nSinks)
		}
		greta.AssignGroup(
			sink, sinks,
			con.GroupingDistance, con.GroupingSpeed, con.GroupingAge,
		)
	}

	nGroups := sinks.MaxGroup()
	fmt.Printf("Number of groups: %d\n", nGroups)

	// Sanity check: each sink particle must be in a group.
	for _, sink := range sinks {
		if sink.Group <= 0 {
			log.Fatal("There exist ungrouped sinks! Check group assignment.")
		}
	}

	fmt.Println("Forming stars from sink groups...")
	former := starform.NewFormer(con.LowerMassLimit, con.UpperMassLimit, rng)
	former.LocalSoundSpeed = con.LocalSoundSpeed
	former.MinimumSinkMass = con.MinimumSinkMass
	former.ShrinkSinks = con.ShrinkSinks

	stars := []greta.Star{}
	for i := 1; i <= nGroups; i++ {
		if (i-1)%progressStep(nGroups) == 0 {
			fmt.Printf("Progress: %d/%d\n", i-1, nGroups)
		}
		newStars, err := former.FormStars(i, sinks)
		if err != nil {
			log.Fatal(err.Error())
		}
		stars = append(stars, newStars...)
	}

	if len(stars) > 0 {
		mStars, maxMass := 0.0, 0.0
		for i := range stars {
			mStars += stars[i].Mass
			if stars[i].Mass > maxMass {
				maxMass = stars[i].Mass
			}
		}
		fmt.Printf("Number of stars: %d\n", len(stars))
		fmt.Printf("Total star mass: %g MSun\n", mStars)
		fmt.Printf("Most massive star: %g MSun\n", maxMass)
		fmt.Printf("Average star mass: %g MSun\n", mStars/float64(len(stars)))
		fmt.Printf("Mstars/Msinks fraction: %.4f\n", mStars/mSinks)
	} else {
		fmt.Println("Number of stars: 0")
	}

	if err = io.WriteStars(con.Output, stars); err != nil {
		log.Fatal(err.Error())
	}
	fmt.Printf("Star file written as %s\n", con.Output)
}

// progressStep spaces the progress lines so that about five are printed.
func progressStep(n int) int {
	if n < 5 {
		return 1
	}
	return n / 5
}
