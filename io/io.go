/*package io reads sink particle catalogs and writes star catalogs.
Catalogs are whitespace separated text tables with one particle per row;
lines starting with # are ignored.*/
package io

import (
	"fmt"
	"log"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/kyliow/greta"
)

// DefaultRadius is the radius given to sinks read from a catalog without a
// radius column, in pc.
const DefaultRadius = 0.1

// ReadSinks reads the sink catalog in the given file using the column
// layout in cols. Positions and masses are required. Missing optional
// columns are filled with defaults and warned about: velocities with
// 0 km/s, radii with 0.1 pc, birth times with 0 Myr and IDs with the row
// index.
func ReadSinks(file string, cols *ColumnConfig) (greta.Sinks, error) {
	if cols.PositionStartColumn < 0 {
		return nil, fmt.Errorf("Sink particles have no positions!")
	}
	if cols.MassColumn < 0 {
		return nil, fmt.Errorf("Sink particles have no masses!")
	}

	colIdxs := []int{}
	add := func(c int) int {
		if c < 0 {
			return -1
		}
		colIdxs = append(colIdxs, c)
		return len(colIdxs) - 1
	}

	px := add(cols.PositionStartColumn)
	add(cols.PositionStartColumn + 1)
	add(cols.PositionStartColumn + 2)
	m := add(cols.MassColumn)
	id := add(cols.IDColumn)
	vx := add(cols.VelocityStartColumn)
	if vx >= 0 {
		add(cols.VelocityStartColumn + 1)
		add(cols.VelocityStartColumn + 2)
	}
	r := add(cols.RadiusColumn)
	bt := add(cols.BirthTimeColumn)
	u := add(cols.UColumn)
	rho := add(cols.DensityColumn)

	outCols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	n := len(outCols[0])
	sinks := make(greta.Sinks, n)
	for i := 0; i < n; i++ {
		sink := &greta.Sink{}
		for k := 0; k < 3; k++ {
			sink.Pos[k] = outCols[px+k][i]
		}
		sink.Mass = outCols[m][i]
		if id >= 0 {
			sink.ID = int64(outCols[id][i])
		} else {
			sink.ID = int64(i)
		}
		if vx >= 0 {
			for k := 0; k < 3; k++ {
				sink.Vel[k] = outCols[vx+k][i]
			}
		}
		if r >= 0 {
			sink.Radius = outCols[r][i]
		} else {
			sink.Radius = DefaultRadius
		}
		if bt >= 0 {
			sink.BirthTime = outCols[bt][i]
		}
		if u >= 0 {
			sink.U = outCols[u][i]
		}
		if rho >= 0 {
			sink.InitialDensity = outCols[rho][i]
		}
		sinks[i] = sink
	}

	if cols.VelocityStartColumn < 0 {
		log.Println(
			"WARNING: Sink particles have no velocities! Assuming they " +
				"are stationary.",
		)
	}
	if cols.RadiusColumn < 0 {
		log.Println(
			"WARNING: Sink particles have no attribute 'radius', setting " +
				"to 0.1 pc. This does not matter because this program is " +
				"not supposed to be used to generate initial conditions.",
		)
	}
	if cols.BirthTimeColumn < 0 {
		log.Println(
			"WARNING: Sink particles have no attribute 'birth_time', " +
				"setting to 0 Myr, i.e. assuming that all sink particles " +
				"have zero age.",
		)
	}

	return sinks, nil
}

// starHeader is the header line of star catalogs written by WriteStars.
const starHeader = "# mass age x y z vx vy vz radius group origin_cloud"

// WriteStars writes the star catalog to the given file. The columns are
// mass [MSun], age [Myr], position [pc], velocity [km/s], radius [pc],
// group index and the ID of the sink the star formed around.
func WriteStars(file string, stars []greta.Star) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = fmt.Fprintln(f, starHeader); err != nil {
		return err
	}
	for i := range stars {
		s := &stars[i]
		_, err = fmt.Fprintf(
			f, "%.10g %.10g %.10g %.10g %.10g %.10g %.10g %.10g %.10g %d %d\n",
			s.Mass, s.Age, s.Pos[0], s.Pos[1], s.Pos[2],
			s.Vel[0], s.Vel[1], s.Vel[2], s.Radius, s.Group, s.OriginCloud,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadStars reads a star catalog written by WriteStars.
func ReadStars(file string) ([]greta.Star, error) {
	cols, err := table.ReadTable(
		file, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil,
	)
	if err != nil {
		return nil, err
	}

	stars := make([]greta.Star, len(cols[0]))
	for i := range stars {
		s := &stars[i]
		s.Mass, s.Age = cols[0][i], cols[1][i]
		for k := 0; k < 3; k++ {
			s.Pos[k] = cols[2+k][i]
			s.Vel[k] = cols[5+k][i]
		}
		s.Radius = cols[8][i]
		s.Group = int(cols[9][i])
		s.OriginCloud = int64(cols[10][i])
	}
	return stars, nil
}
