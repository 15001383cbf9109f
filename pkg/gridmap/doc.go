// Package gridmap renders 2-D seismic survey grid maps as trace and
// annotation lists for plotting front ends.
//
// This package is designed for interactive map applications. It provides a
// stateful engine that turns dataset, viewport, and pointer events into
// deterministic snapshots: grid line traces with selection highlighting,
// boundary-edge line number labels, viewport coordinate ticks, and a
// compass marker.
//
// # Basic Usage
//
//	engine := gridmap.NewEngine(gridmap.DefaultOptions())
//
//	grid, err := gridmap.DecodeGrid(gridFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	boundary, err := gridmap.DecodeBoundary(boundaryFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine.SetGrid(*grid)
//	engine.SetBoundary(*boundary)
//	engine.SetEdgeIndex(engine.ComputeEdgeIndex(0))
//
// # Rendering Workflow
//
// The engine recomputes the full scene on every snapshot; render the result
// wholesale rather than patching the previous frame:
//
//	engine.SetViewport(gridmap.Viewport{XMin: 0, XMax: 5000, YMin: 0, YMax: 3000})
//
//	snap := engine.Snapshot()
//	for _, trace := range snap.Traces {
//	    drawPolyline(trace.Points, trace.Style)
//	}
//	for _, ann := range snap.Annotations {
//	    drawLabel(ann)
//	}
//
// # Pointer Interaction
//
// Clicks and hovers are resolved against the displayed lines through a
// spatial index; positions that hit nothing leave state unchanged:
//
//	if err := engine.Click(x, y); err == nil {
//	    snap = engine.Snapshot() // selected line now highlighted
//	}
//
//	engine.Hover(x, y)
//	engine.Unhover()
//
// # Selection Events
//
// Register a listener to synchronize other views with the map selection. A
// nil event signals that the selection was cleared:
//
//	engine.OnSelection(func(ev *gridmap.SelectionEvent) {
//	    if ev == nil {
//	        crossSection.Clear()
//	        return
//	    }
//	    crossSection.Load(ev.Kind, ev.ID)
//	})
//
// # Performance
//
// - Hit testing uses an R-tree over line segments, rebuilt on dataset change
// - Snapshots for repeated identical state are served from an LRU cache
// - Recompute is pure: the same state always yields the same snapshot
package gridmap
