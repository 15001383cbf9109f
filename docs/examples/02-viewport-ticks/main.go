package main

import (
	"fmt"

	"github.com/seisview/gridmap/pkg/gridmap"
)

// Demonstrates viewport tracking: coordinate tick annotations follow the
// visible range as the view pans and zooms.
func main() {
	engine := gridmap.NewEngine(gridmap.DefaultOptions())
	engine.SetGrid(demoGrid())

	// Persist viewport changes, e.g. to restore the view on reload
	engine.OnViewport(func(vp gridmap.Viewport) {
		fmt.Printf("viewport: x=[%.0f,%.0f] y=[%.0f,%.0f]\n",
			vp.XMin, vp.XMax, vp.YMin, vp.YMax)
	})

	// Full survey extent
	engine.SetViewport(gridmap.Viewport{XMin: 0, XMax: 5000, YMin: 0, YMax: 3000})
	printTicks(engine.Snapshot())

	// Zoom into one corner; tick values follow the new range
	engine.SetViewport(gridmap.Viewport{XMin: 0, XMax: 800, YMin: 0, YMax: 600})
	printTicks(engine.Snapshot())
}

func printTicks(snap gridmap.Snapshot) {
	fmt.Println("--- ticks ---")
	for _, ann := range snap.Annotations {
		if ann.Paper || ann.Style.Background != "" {
			continue // captions, compass, edge labels
		}
		fmt.Printf("  %s at (%.0f, %.0f)\n", ann.Text, ann.X, ann.Y)
	}
}

func demoGrid() gridmap.Grid {
	var grid gridmap.Grid
	for i := 0; i < 20; i++ {
		y := float64(i) * 150
		grid.Inlines = append(grid.Inlines, gridmap.Line{
			ID:     100 + i*10,
			Points: []gridmap.Point{{X: 0, Y: y}, {X: 5000, Y: y}},
		})
	}
	for i := 0; i < 25; i++ {
		x := float64(i) * 200
		grid.Xlines = append(grid.Xlines, gridmap.Line{
			ID:     500 + i*10,
			Points: []gridmap.Point{{X: x, Y: 0}, {X: x, Y: 3000}},
		})
	}
	return grid
}
