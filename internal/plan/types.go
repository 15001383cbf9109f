// Package plan computes display traces and annotation placements for a 2-D
// seismic survey grid map: which inline/crossline traces to show at a given
// density, where boundary-edge identifier labels go, where viewport-tracking
// axis ticks go, and how selection and hover state style each line.
//
// All computation is pure and deterministic. The package never renders
// anything; its output is the trace/annotation contract consumed by an
// external plotting surface.
package plan

import (
	"fmt"
)

// LineKind distinguishes the two orthogonal families of survey lines.
type LineKind int

const (
	// KindInline identifies a line from the inline family.
	KindInline LineKind = iota

	// KindXline identifies a line from the crossline family.
	KindXline
)

// String returns the display name used in annotation text and trace names.
func (k LineKind) String() string {
	switch k {
	case KindInline:
		return "INLINE"
	case KindXline:
		return "XLINE"
	default:
		return "UNKNOWN"
	}
}

// LineRef identifies a single grid line by kind and numeric identifier.
//
// A LineRef is carried alongside trace and annotation data; it is never
// reconstructed by parsing display text.
type LineRef struct {
	Kind LineKind
	ID   int
}

// String returns "INLINE 123" / "XLINE 250".
func (r LineRef) String() string {
	return fmt.Sprintf("%s %d", r.Kind, r.ID)
}

// LineTrace is one inline or crossline sampled as an ordered point sequence.
//
// HoverLabels, when present, is parallel to Points (one label per point).
// Traces are recreated wholesale on every dataset refresh; they are never
// mutated incrementally.
type LineTrace struct {
	ID          int
	Kind        LineKind
	Points      []Point2D
	HoverLabels []string
}

// Ref returns the line's identity.
func (t *LineTrace) Ref() LineRef {
	return LineRef{Kind: t.Kind, ID: t.ID}
}

// DefaultHoverLabels synthesizes per-point hover text when the dataset did
// not supply any. The format matches the backend's hover_info strings.
func (t *LineTrace) DefaultHoverLabels() []string {
	labels := make([]string, len(t.Points))
	for i, p := range t.Points {
		labels[i] = fmt.Sprintf("%s: %d<br>X: %.2f<br>Y: %.2f", t.Kind, t.ID, p.X, p.Y)
	}
	return labels
}

// Viewport is the currently visible rectangular coordinate range, distinct
// from the full dataset extent. It is non-degenerate when max exceeds min on
// both axes; planners defensively emit empty output otherwise.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Valid reports whether both axis ranges are finite and non-degenerate.
func (v Viewport) Valid() bool {
	if !isFinite(v.XMin) || !isFinite(v.XMax) || !isFinite(v.YMin) || !isFinite(v.YMax) {
		return false
	}
	return v.XMax > v.XMin && v.YMax > v.YMin
}

// XSpan returns the visible width in world units.
func (v Viewport) XSpan() float64 { return v.XMax - v.XMin }

// YSpan returns the visible height in world units.
func (v Viewport) YSpan() float64 { return v.YMax - v.YMin }

// Anchor positions annotation text relative to its position.
type Anchor struct {
	Horizontal string // "left", "center", "right"
	Vertical   string // "top", "middle", "bottom"
}

// AnchorCenter anchors text centered on its position.
func AnchorCenter() Anchor {
	return Anchor{Horizontal: "center", Vertical: "middle"}
}

// Style is the visual styling of an annotation.
type Style struct {
	Color      string
	Size       float64
	Background string
	Border     string
	Angle      float64 // text rotation in degrees, clockwise
}

// Annotation is a single piece of text placed on the map. Position is either
// in data space or, when Paper is true, in normalized 0..1 viewport space.
//
// Annotations are derived output: never mutated after creation, regenerated
// on every recompute cycle.
type Annotation struct {
	X, Y   float64
	Paper  bool
	Text   string
	Style  Style
	Anchor Anchor
}

// LineStyle is the derived styling of a rendered trace.
type LineStyle struct {
	Color string
	Width float64
}

// EdgeIndexEntry lists the identifiers whose trace touches one boundary edge.
type EdgeIndexEntry struct {
	Inlines []int
	Xlines  []int
}

// EdgeIndex associates boundary edges with the inline/crossline identifiers
// terminating on them, keyed by edge index. Treated as read-only reference
// data by the planners.
type EdgeIndex []EdgeIndexEntry
