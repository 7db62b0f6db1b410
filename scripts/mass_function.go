package main

import (
	"log"
	"math"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/kyliow/greta/io"
)

const bins = 40

// Plots the log-binned mass function of a star catalog written by greta.
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s star_file out_file", os.Args[0])
	}
	starFile, outFile := os.Args[1], os.Args[2]

	stars, err := io.ReadStars(starFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(stars) == 0 {
		log.Fatal("No stars in catalog.")
	}

	lowest, highest := stars[0].Mass, stars[0].Mass
	for i := range stars {
		if stars[i].Mass < lowest {
			lowest = stars[i].Mass
		}
		if stars[i].Mass > highest {
			highest = stars[i].Mass
		}
	}

	lowLog := math.Log10(lowest)
	dLog := (math.Log10(highest) - lowLog) / bins
	centers, counts := make([]float64, bins), make([]float64, bins)
	for i := range centers {
		centers[i] = math.Pow(10, lowLog+dLog*(float64(i)+0.5))
	}
	for i := range stars {
		j := int((math.Log10(stars[i].Mass) - lowLog) / dLog)
		if j == bins {
			j--
		}
		counts[j]++
	}

	plt.Figure()
	plt.Plot(centers, counts, "k", plt.LW(2))
	plt.XLabel(`$M$ $[M_\odot]$`, plt.FontSize(16))
	plt.YLabel(`$dN$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.SaveFig(outFile)
	plt.Execute()
}
