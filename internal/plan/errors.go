package plan

import (
	"fmt"
)

// ErrInvalidGeometry indicates a polygon that is too small or malformed
// to be used as a survey boundary.
type ErrInvalidGeometry struct {
	VertexCount int
	Reason      string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid boundary geometry (%d vertices): %s", e.VertexCount, e.Reason)
}

// ErrDegenerateEdge indicates a zero-length boundary edge. Callers skip the
// edge's labels and continue with the remaining edges.
type ErrDegenerateEdge struct {
	At Point2D
}

func (e *ErrDegenerateEdge) Error() string {
	return fmt.Sprintf("degenerate boundary edge at (%f, %f)", e.At.X, e.At.Y)
}

// ErrMalformedViewport indicates a non-numeric or inverted viewport range.
// Planners treat it as non-fatal and emit empty output.
type ErrMalformedViewport struct {
	Viewport Viewport
}

func (e *ErrMalformedViewport) Error() string {
	return fmt.Sprintf("malformed viewport: x=[%f,%f] y=[%f,%f] (max must exceed min)",
		e.Viewport.XMin, e.Viewport.XMax, e.Viewport.YMin, e.Viewport.YMax)
}

// ErrUnresolvedLine indicates a pointer event that resolved to no known
// grid line. Selection and hover state are left unchanged.
type ErrUnresolvedLine struct {
	X, Y float64
}

func (e *ErrUnresolvedLine) Error() string {
	return fmt.Sprintf("no grid line near (%f, %f)", e.X, e.Y)
}
