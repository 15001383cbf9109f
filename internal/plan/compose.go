package plan

// Scene bundles the raw reference data a recompute cycle consumes: the grid
// line families, the boundary ring (open by convention), the boundary-edge
// index, and the optional vertex-aligned corner identifier arrays.
type Scene struct {
	Inlines  []LineTrace
	Xlines   []LineTrace
	Boundary []Point2D

	EdgeIndex EdgeIndex

	// Vertex-aligned corner identifiers for the secondary labeling mode.
	// Empty slices disable it.
	IlineCoords []int
	XlineCoords []int
}

// ComposeConfig tunes a recompute cycle.
type ComposeConfig struct {
	Density       int
	Labels        EdgeLabelConfig
	Palette       StylePalette
	BoundaryColor string
	BoundaryWidth float64
	ShowCompass   bool
	CornerLabels  bool
}

// DefaultComposeConfig returns the engine defaults.
func DefaultComposeConfig() ComposeConfig {
	return ComposeConfig{
		Density:       1,
		Labels:        DefaultEdgeLabelConfig(),
		Palette:       DefaultPalette(),
		BoundaryColor: ColorBoundary,
		BoundaryWidth: 2,
		ShowCompass:   true,
	}
}

// Trace is a renderable polyline handed to the plotting surface. Ref is nil
// for the boundary ring.
type Trace struct {
	Ref         *LineRef
	Name        string
	Points      []Point2D
	HoverLabels []string
	Style       LineStyle
}

// Compose runs one full recompute cycle: density filtering, highlight
// styling, boundary closure, and annotation assembly.
//
// Annotations are ordered compass marker, viewport ticks, then edge labels;
// later entries draw on top. The computation is pure: identical inputs
// always produce an identical snapshot, and no input is mutated.
func Compose(scene Scene, vp Viewport, sel SelectionState, cfg ComposeConfig) ([]Trace, []Annotation) {
	inlines := FilterByDensity(scene.Inlines, cfg.Density)
	xlines := FilterByDensity(scene.Xlines, cfg.Density)

	traces := make([]Trace, 0, len(inlines)+len(xlines)+1)
	for i := range inlines {
		traces = append(traces, lineTrace(&inlines[i], sel, cfg.Palette))
	}
	for i := range xlines {
		traces = append(traces, lineTrace(&xlines[i], sel, cfg.Palette))
	}
	if b := boundaryTrace(scene.Boundary, cfg); b != nil {
		traces = append(traces, *b)
	}

	var annotations []Annotation
	if cfg.ShowCompass {
		annotations = append(annotations, compassMarker())
	}
	annotations = append(annotations, PlanViewportTicks(vp)...)
	annotations = append(annotations, PlanEdgeLabels(scene.Boundary, scene.EdgeIndex, inlines, xlines, cfg.Labels)...)
	if cfg.CornerLabels {
		annotations = append(annotations, PlanCornerLabels(scene.Boundary, scene.IlineCoords, scene.XlineCoords, cfg.Labels)...)
	}

	return traces, annotations
}

func lineTrace(line *LineTrace, sel SelectionState, pal StylePalette) Trace {
	ref := line.Ref()
	hover := line.HoverLabels
	if len(hover) == 0 {
		hover = line.DefaultHoverLabels()
	}
	return Trace{
		Ref:         &ref,
		Name:        ref.String(),
		Points:      line.Points,
		HoverLabels: hover,
		Style:       sel.StyleFor(ref, pal),
	}
}

// boundaryTrace closes the open boundary ring by re-appending its first
// vertex. Returns nil when no boundary is loaded.
func boundaryTrace(boundary []Point2D, cfg ComposeConfig) *Trace {
	if len(boundary) == 0 {
		return nil
	}
	ring := make([]Point2D, 0, len(boundary)+1)
	ring = append(ring, boundary...)
	ring = append(ring, boundary[0])
	return &Trace{
		Name:   "Survey Boundary",
		Points: ring,
		Style:  LineStyle{Color: cfg.BoundaryColor, Width: cfg.BoundaryWidth},
	}
}

// compassMarker is the constant north marker, pinned near the top-right of
// the viewport in paper coordinates.
func compassMarker() Annotation {
	return Annotation{
		X:     0.97,
		Y:     0.95,
		Paper: true,
		Text:  "N ↑",
		Style: Style{
			Color:      ColorCompass,
			Size:       14,
			Background: ColorLabelBackground,
			Border:     ColorCompass,
		},
		Anchor: AnchorCenter(),
	}
}
