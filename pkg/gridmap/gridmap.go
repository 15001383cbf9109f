// Package gridmap provides the map engine for 2-D seismic survey grid
// displays: trace assembly, annotation placement, and selection handling.
package gridmap

import (
	"github.com/seisview/gridmap/internal/plan"
)

// LineKind distinguishes the two orthogonal families of survey lines.
type LineKind int

const (
	// Inline identifies a line from the inline family.
	Inline LineKind = iota

	// Xline identifies a line from the crossline family.
	Xline
)

// String returns "INLINE" or "XLINE".
func (k LineKind) String() string {
	return k.internal().String()
}

func (k LineKind) internal() plan.LineKind {
	if k == Xline {
		return plan.KindXline
	}
	return plan.KindInline
}

func kindFromInternal(k plan.LineKind) LineKind {
	if k == plan.KindXline {
		return Xline
	}
	return Inline
}

// LineRef identifies a single grid line by kind and numeric identifier.
type LineRef struct {
	Kind LineKind
	ID   int
}

// String returns "INLINE 123" / "XLINE 250".
func (r LineRef) String() string {
	return r.internal().String()
}

func (r LineRef) internal() plan.LineRef {
	return plan.LineRef{Kind: r.Kind.internal(), ID: r.ID}
}

func refFromInternal(r plan.LineRef) LineRef {
	return LineRef{Kind: kindFromInternal(r.Kind), ID: r.ID}
}

// Point is a position in the survey's planar coordinate system.
type Point struct {
	X, Y float64
}

// Line is one sampled grid line as supplied by the grid dataset.
//
// HoverLabels, when present, must run parallel to Points.
type Line struct {
	ID          int
	Points      []Point
	HoverLabels []string
}

// Grid is the full grid dataset: both line families, recreated wholesale on
// every data refresh.
type Grid struct {
	Inlines []Line
	Xlines  []Line
}

// Boundary is the survey boundary dataset. Ring is open by convention (the
// closing vertex is not duplicated); the optional identifier arrays align
// positionally with ring vertices for the corner-labeling mode.
type Boundary struct {
	Ring        []Point
	IlineCoords []int
	XlineCoords []int

	// Full identifier lists, used for survey metrics.
	AllInlines []int
	AllXlines  []int
}

// EdgeEntry lists the line identifiers terminating on one boundary edge.
type EdgeEntry struct {
	Inlines []int
	Xlines  []int
}

// Viewport is the visible rectangular coordinate range.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (v Viewport) internal() plan.Viewport {
	return plan.Viewport{XMin: v.XMin, XMax: v.XMax, YMin: v.YMin, YMax: v.YMax}
}

// TraceStyle is the derived styling of a rendered trace.
type TraceStyle struct {
	Color string
	Width float64
}

// Trace is a renderable polyline. Ref is nil for the boundary ring.
type Trace struct {
	Ref         *LineRef
	Name        string
	Points      []Point
	HoverLabels []string
	Style       TraceStyle
}

// Anchor positions annotation text relative to its position.
type Anchor struct {
	Horizontal string
	Vertical   string
}

// AnnotationStyle is the visual styling of an annotation.
type AnnotationStyle struct {
	Color      string
	Size       float64
	Background string
	Border     string
	Angle      float64
}

// Annotation is one piece of text placed on the map, either in data space
// or, when Paper is true, in normalized 0..1 viewport space.
type Annotation struct {
	X, Y   float64
	Paper  bool
	Text   string
	Style  AnnotationStyle
	Anchor Anchor
}

// Snapshot is one immutable recompute result: the full trace and annotation
// lists plus the viewport they were computed for, in the schema expected by
// the rendering surface.
type Snapshot struct {
	Traces      []Trace
	Annotations []Annotation
	Viewport    Viewport
}

// SelectionEvent describes a resolved click or an external selection, for
// consumption by synchronized views. A nil event signals a cleared
// selection.
type SelectionEvent struct {
	Kind       LineKind
	ID         int
	X, Y       float64
	SourceName string
}

// SurveyMetrics summarizes the survey's acquisition geometry.
type SurveyMetrics struct {
	XMin, XMax float64
	YMin, YMax float64

	AreaSqKm           float64
	OrientationDegrees float64

	BinSizeInline float64
	BinSizeXline  float64

	InlineRange string
	XlineRange  string

	XCoordinateRange string
	YCoordinateRange string
}

// Conversions between the public data model and the internal planner types.

func pointsToInternal(points []Point) []plan.Point2D {
	out := make([]plan.Point2D, len(points))
	for i, p := range points {
		out[i] = plan.Point2D{X: p.X, Y: p.Y}
	}
	return out
}

func linesToInternal(lines []Line, kind plan.LineKind) []plan.LineTrace {
	out := make([]plan.LineTrace, len(lines))
	for i, l := range lines {
		out[i] = plan.LineTrace{
			ID:          l.ID,
			Kind:        kind,
			Points:      pointsToInternal(l.Points),
			HoverLabels: l.HoverLabels,
		}
	}
	return out
}

func edgeIndexToInternal(entries []EdgeEntry) plan.EdgeIndex {
	out := make(plan.EdgeIndex, len(entries))
	for i, e := range entries {
		out[i] = plan.EdgeIndexEntry{Inlines: e.Inlines, Xlines: e.Xlines}
	}
	return out
}

func edgeIndexFromInternal(index plan.EdgeIndex) []EdgeEntry {
	out := make([]EdgeEntry, len(index))
	for i, e := range index {
		out[i] = EdgeEntry{Inlines: e.Inlines, Xlines: e.Xlines}
	}
	return out
}

func convertSnapshot(traces []plan.Trace, annotations []plan.Annotation, vp plan.Viewport) Snapshot {
	snap := Snapshot{
		Traces:      make([]Trace, len(traces)),
		Annotations: make([]Annotation, len(annotations)),
		Viewport:    Viewport{XMin: vp.XMin, XMax: vp.XMax, YMin: vp.YMin, YMax: vp.YMax},
	}

	for i, t := range traces {
		points := make([]Point, len(t.Points))
		for j, p := range t.Points {
			points[j] = Point{X: p.X, Y: p.Y}
		}
		var ref *LineRef
		if t.Ref != nil {
			r := refFromInternal(*t.Ref)
			ref = &r
		}
		snap.Traces[i] = Trace{
			Ref:         ref,
			Name:        t.Name,
			Points:      points,
			HoverLabels: t.HoverLabels,
			Style:       TraceStyle{Color: t.Style.Color, Width: t.Style.Width},
		}
	}

	for i, a := range annotations {
		snap.Annotations[i] = Annotation{
			X:     a.X,
			Y:     a.Y,
			Paper: a.Paper,
			Text:  a.Text,
			Style: AnnotationStyle{
				Color:      a.Style.Color,
				Size:       a.Style.Size,
				Background: a.Style.Background,
				Border:     a.Style.Border,
				Angle:      a.Style.Angle,
			},
			Anchor: Anchor{Horizontal: a.Anchor.Horizontal, Vertical: a.Anchor.Vertical},
		}
	}

	return snap
}

func metricsFromInternal(m plan.SurveyMetrics) SurveyMetrics {
	return SurveyMetrics{
		XMin:               m.XMin,
		XMax:               m.XMax,
		YMin:               m.YMin,
		YMax:               m.YMax,
		AreaSqKm:           m.AreaSqKm,
		OrientationDegrees: m.OrientationDegrees,
		BinSizeInline:      m.BinSizeInline,
		BinSizeXline:       m.BinSizeXline,
		InlineRange:        m.InlineRange,
		XlineRange:         m.XlineRange,
		XCoordinateRange:   m.XCoordinateRange,
		YCoordinateRange:   m.YCoordinateRange,
	}
}
