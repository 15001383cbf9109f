package gridmap

import (
	"fmt"
	"sync"

	"github.com/seisview/gridmap/internal/plan"
)

// Engine owns the single mutable copy of the map state: grid dataset,
// boundary, edge index, viewport, and selection. External events (dataset
// refresh, pan/zoom, pointer interaction, external selection requests)
// mutate that state through Engine methods; every mutation triggers a
// synchronous recompute producing a fresh immutable Snapshot.
//
// All mutations are serialized through an internal mutex, preserving the
// "last event wins, recompute from scratch" model for multi-goroutine
// callers. Listener callbacks are invoked synchronously on the calling
// goroutine, outside the engine lock.
//
// Example:
//
//	engine := gridmap.NewEngine(gridmap.DefaultOptions())
//	engine.SetGrid(grid)
//	engine.SetBoundary(boundary)
//	engine.SetEdgeIndex(engine.ComputeEdgeIndex(0))
//	engine.SetViewport(gridmap.Viewport{XMin: 0, XMax: 1000, YMin: 0, YMax: 500})
//
//	snap := engine.Snapshot()
//	render(snap.Traces, snap.Annotations)
type Engine struct {
	mu   sync.RWMutex
	opts Options

	scene     plan.Scene
	viewport  plan.Viewport
	selection plan.SelectionState

	index *traceIndex
	cache *snapshotCache

	// rev increments on every dataset mutation and keys the snapshot cache
	// together with viewport and selection.
	rev uint64

	selectionListeners []func(*SelectionEvent)
	viewportListeners  []func(Viewport)
}

// NewEngine creates an engine with no data loaded. The initial selection
// state is idle and the viewport is degenerate until SetViewport is called.
func NewEngine(opts Options) *Engine {
	return &Engine{
		opts:  opts,
		index: newTraceIndex(),
		cache: newSnapshotCache(opts.SnapshotCacheSize),
	}
}

// OnSelection registers a listener for selection events. A nil event means
// the selection was cleared.
func (e *Engine) OnSelection(fn func(*SelectionEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectionListeners = append(e.selectionListeners, fn)
}

// OnViewport registers a listener invoked with the new range after every
// pan/zoom, for callers that persist viewport state across views.
func (e *Engine) OnViewport(fn func(Viewport)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewportListeners = append(e.viewportListeners, fn)
}

// SetGrid replaces the grid dataset. Traces are recreated wholesale; the
// hit-testing index is rebuilt over the density-filtered display set.
func (e *Engine) SetGrid(grid Grid) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.scene.Inlines = linesToInternal(grid.Inlines, plan.KindInline)
	e.scene.Xlines = linesToInternal(grid.Xlines, plan.KindXline)
	e.rebuildIndex()
	e.rev++
}

// SetBoundary replaces the survey boundary dataset.
func (e *Engine) SetBoundary(boundary Boundary) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.scene.Boundary = pointsToInternal(boundary.Ring)
	e.scene.IlineCoords = boundary.IlineCoords
	e.scene.XlineCoords = boundary.XlineCoords
	e.rev++
}

// SetEdgeIndex replaces the boundary-edge index used for edge label
// placement.
func (e *Engine) SetEdgeIndex(entries []EdgeEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.scene.EdgeIndex = edgeIndexToInternal(entries)
	e.rev++
}

// SetDensity changes the display density and rebuilds the display set.
func (e *Engine) SetDensity(density int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Density = density
	e.rebuildIndex()
	e.rev++
}

// SetViewport applies a pan/zoom and re-emits the new range to viewport
// listeners.
func (e *Engine) SetViewport(vp Viewport) {
	e.mu.Lock()
	e.viewport = vp.internal()
	listeners := e.viewportListeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(vp)
	}
}

// Viewport returns the current viewport range.
func (e *Engine) Viewport() Viewport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Viewport{XMin: e.viewport.XMin, XMax: e.viewport.XMax, YMin: e.viewport.YMin, YMax: e.viewport.YMax}
}

// Click resolves a pointer click to a displayed grid line, selects it, and
// raises a selection event carrying the line identity and the click
// coordinates.
//
// A click that resolves to no line within the click tolerance leaves the
// selection unchanged, suppresses the event, and returns an error wrapping
// the unresolved position.
func (e *Engine) Click(x, y float64) error {
	e.mu.Lock()
	ref, ok := e.index.Nearest(plan.Point2D{X: x, Y: y}, e.opts.ClickTolerance)
	if !ok {
		e.mu.Unlock()
		err := &plan.ErrUnresolvedLine{X: x, Y: y}
		e.logf("click ignored: %v", err)
		return fmt.Errorf("resolve click: %w", err)
	}
	e.selection.Click(ref)
	listeners := e.selectionListeners
	e.mu.Unlock()

	event := &SelectionEvent{
		Kind:       kindFromInternal(ref.Kind),
		ID:         ref.ID,
		X:          x,
		Y:          y,
		SourceName: ref.String(),
	}
	for _, fn := range listeners {
		fn(event)
	}
	return nil
}

// Hover marks the line under the pointer as hovered. Unresolved positions
// leave hover state unchanged.
func (e *Engine) Hover(x, y float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ref, ok := e.index.Nearest(plan.Point2D{X: x, Y: y}, e.opts.ClickTolerance)
	if !ok {
		return fmt.Errorf("resolve hover: %w", &plan.ErrUnresolvedLine{X: x, Y: y})
	}
	e.selection.Hover(ref)
	return nil
}

// Unhover clears the transient hover flag on pointer leave.
func (e *Engine) Unhover() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection.Unhover()
}

// Select applies an external selection request (e.g. from a synchronized
// cross-section view) without coordinates and without re-emitting an event.
func (e *Engine) Select(ref LineRef) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection.ExternalSelect(ref.internal())
}

// ClearSelection returns to the idle state and raises a nil selection event.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	e.selection.Clear()
	listeners := e.selectionListeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}

// Selected returns the currently selected line, if any.
func (e *Engine) Selected() (LineRef, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.selection.Selected == nil {
		return LineRef{}, false
	}
	return refFromInternal(*e.selection.Selected), true
}

// Snapshot runs a recompute cycle and returns the trace and annotation
// lists for the current state. Identical state always yields an identical
// snapshot; results are memoized when the snapshot cache is enabled.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := e.cacheKey()
	if snap, ok := e.cache.get(key); ok {
		return snap
	}

	traces, annotations := plan.Compose(e.scene, e.viewport, e.selection, e.opts.composeConfig())
	snap := convertSnapshot(traces, annotations, e.viewport)
	e.cache.add(key, snap)
	return snap
}

// ComputeEdgeIndex derives the boundary-edge index from the currently
// loaded grid and boundary. A tolerance of 0 uses the default on-edge
// distance. Use SetEdgeIndex to apply the result, or substitute an index
// supplied by the backend.
func (e *Engine) ComputeEdgeIndex(tolerance float64) []EdgeEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	index := plan.BuildEdgeIndex(e.scene.Boundary, e.scene.Inlines, e.scene.Xlines, tolerance)
	return edgeIndexFromInternal(index)
}

// Metrics computes survey acquisition metrics from the loaded boundary and
// the full identifier lists.
func (e *Engine) Metrics(allInlines, allXlines []int) (SurveyMetrics, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	m, err := plan.ComputeSurveyMetrics(e.scene.Boundary, allInlines, allXlines)
	if err != nil {
		return SurveyMetrics{}, fmt.Errorf("survey metrics: %w", err)
	}
	return metricsFromInternal(m), nil
}

// CacheStats reports snapshot cache hits and misses.
func (e *Engine) CacheStats() (hits, misses int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cache.stats()
}

// rebuildIndex re-indexes the density-filtered display set. Pointer events
// only ever resolve to lines that are actually displayed.
func (e *Engine) rebuildIndex() {
	e.index = newTraceIndex(
		plan.FilterByDensity(e.scene.Inlines, e.opts.Density),
		plan.FilterByDensity(e.scene.Xlines, e.opts.Density),
	)
}

// cacheKey captures every recompute input: dataset revision, viewport, and
// selection/hover state.
func (e *Engine) cacheKey() string {
	sel, hov := "-", "-"
	if e.selection.Selected != nil {
		sel = e.selection.Selected.String()
	}
	if e.selection.Hovered != nil {
		hov = e.selection.Hovered.String()
	}
	return fmt.Sprintf("r%d|%g,%g,%g,%g|%s|%s",
		e.rev, e.viewport.XMin, e.viewport.XMax, e.viewport.YMin, e.viewport.YMax, sel, hov)
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.opts.ErrorLog != nil {
		fmt.Fprintf(e.opts.ErrorLog, format+"\n", args...)
	}
}
