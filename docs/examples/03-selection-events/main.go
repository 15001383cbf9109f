package main

import (
	"fmt"

	"github.com/seisview/gridmap/pkg/gridmap"
)

// Demonstrates the selection model: clicks resolve to grid lines and raise
// events that synchronized views (a seismic cross-section display, say)
// subscribe to.
func main() {
	opts := gridmap.DefaultOptions()
	opts.ClickTolerance = 15
	engine := gridmap.NewEngine(opts)
	engine.SetGrid(demoGrid())

	engine.OnSelection(func(ev *gridmap.SelectionEvent) {
		if ev == nil {
			fmt.Println("selection cleared")
			return
		}
		fmt.Printf("selected %s at (%.0f, %.0f)\n", ev.SourceName, ev.X, ev.Y)
	})

	// Click on xline 520 (x=400)
	if err := engine.Click(402, 250); err != nil {
		fmt.Println("click:", err)
	}

	// Click on inline 110 (y=150); the previous selection is replaced
	if err := engine.Click(1250, 148); err != nil {
		fmt.Println("click:", err)
	}

	// Click on empty space; selection is unchanged, no event fires
	if err := engine.Click(3000, 3000); err != nil {
		fmt.Println("click:", err)
	}
	if ref, ok := engine.Selected(); ok {
		fmt.Println("still selected:", ref)
	}

	// External selection from another view, then clear
	engine.Select(gridmap.LineRef{Kind: gridmap.Xline, ID: 540})
	engine.ClearSelection()
}

func demoGrid() gridmap.Grid {
	var grid gridmap.Grid
	for i := 0; i < 10; i++ {
		y := float64(i) * 150
		grid.Inlines = append(grid.Inlines, gridmap.Line{
			ID:     100 + i*10,
			Points: []gridmap.Point{{X: 0, Y: y}, {X: 2000, Y: y}},
		})
	}
	for i := 0; i < 10; i++ {
		x := float64(i) * 200
		grid.Xlines = append(grid.Xlines, gridmap.Line{
			ID:     500 + i*10,
			Points: []gridmap.Point{{X: x, Y: 0}, {X: x, Y: 1350}},
		})
	}
	return grid
}
