package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seisview/gridmap/pkg/gridmap"
)

func main() {
	// Load the grid and boundary datasets
	gridFile, err := os.Open("grid.json")
	if err != nil {
		log.Fatal(err)
	}
	defer gridFile.Close()

	grid, err := gridmap.DecodeGrid(gridFile)
	if err != nil {
		log.Fatal(err)
	}

	boundaryFile, err := os.Open("boundary.json")
	if err != nil {
		log.Fatal(err)
	}
	defer boundaryFile.Close()

	boundary, err := gridmap.DecodeBoundary(boundaryFile)
	if err != nil {
		log.Fatal(err)
	}

	// Create the engine and load the data
	engine := gridmap.NewEngine(gridmap.DefaultOptions())
	engine.SetGrid(*grid)
	engine.SetBoundary(*boundary)
	engine.SetEdgeIndex(engine.ComputeEdgeIndex(0))

	// Render one snapshot
	snap := engine.Snapshot()
	fmt.Printf("Traces: %d\n", len(snap.Traces))
	fmt.Printf("Annotations: %d\n", len(snap.Annotations))

	// Survey metrics
	metrics, err := engine.Metrics(boundary.AllInlines, boundary.AllXlines)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Area: %.2f sq km\n", metrics.AreaSqKm)
	fmt.Printf("Orientation: %.2f deg\n", metrics.OrientationDegrees)
	fmt.Printf("Inlines: %s\n", metrics.InlineRange)
	fmt.Printf("Xlines: %s\n", metrics.XlineRange)
}
