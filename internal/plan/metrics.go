package plan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SurveyMetrics summarizes the acquisition geometry of a survey: its extent,
// area, orientation, and bin spacing. Values derive from the boundary
// quadrilateral and the full (unfiltered) identifier lists.
type SurveyMetrics struct {
	XMin, XMax float64
	YMin, YMax float64

	// AreaSqKm is the survey area in square kilometres, from the product of
	// the two adjacent boundary edge lengths.
	AreaSqKm float64

	// OrientationDegrees is the acquisition azimuth of the first boundary
	// edge as a compass bearing (0 = north, clockwise).
	OrientationDegrees float64

	// Bin sizes are the spacing between adjacent lines of each family, in
	// world units. Zero when a family has fewer than two lines.
	BinSizeInline float64
	BinSizeXline  float64

	InlineRange string
	XlineRange  string

	XCoordinateRange string
	YCoordinateRange string
}

// ComputeSurveyMetrics derives metrics from the boundary ring (open, first
// four vertices are the survey corners in ring order) and the sorted-or-not
// full identifier lists of both families.
//
// Returns ErrInvalidGeometry when the boundary has fewer than four vertices.
func ComputeSurveyMetrics(boundary []Point2D, inlineIDs, xlineIDs []int) (SurveyMetrics, error) {
	if len(boundary) < BoundaryCornerCount {
		return SurveyMetrics{}, &ErrInvalidGeometry{
			VertexCount: len(boundary),
			Reason:      "survey metrics require the four corner vertices",
		}
	}

	xs := make([]float64, len(boundary))
	ys := make([]float64, len(boundary))
	for i, p := range boundary {
		xs[i] = p.X
		ys[i] = p.Y
	}

	// Ring order is corner 0, its crossline-direction neighbor, the opposite
	// corner, then its inline-direction neighbor.
	xlineEdge := boundary[0].Distance(boundary[1])
	inlineEdge := boundary[0].Distance(boundary[3])

	m := SurveyMetrics{
		XMin:               floats.Min(xs),
		XMax:               floats.Max(xs),
		YMin:               floats.Min(ys),
		YMax:               floats.Max(ys),
		AreaSqKm:           round2(xlineEdge * inlineEdge / 1e6),
		OrientationDegrees: round2(compassBearing(boundary[0], boundary[1])),
		BinSizeInline:      binSize(inlineEdge, len(inlineIDs)),
		BinSizeXline:       binSize(xlineEdge, len(xlineIDs)),
		InlineRange:        idRange(inlineIDs),
		XlineRange:         idRange(xlineIDs),
	}
	m.XCoordinateRange = fmt.Sprintf("%.2f - %.2f", m.XMin, m.XMax)
	m.YCoordinateRange = fmt.Sprintf("%.2f - %.2f", m.YMin, m.YMax)
	return m, nil
}

// compassBearing converts the direction from a to b into compass degrees.
func compassBearing(a, b Point2D) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	switch {
	case deg < 0:
		return 270 + deg
	case deg <= 90:
		return 90 - deg
	default:
		return 450 - deg
	}
}

func binSize(edgeLength float64, lineCount int) float64 {
	if lineCount <= 1 {
		return 0
	}
	return round2(edgeLength / float64(lineCount-1))
}

func idRange(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	lo, hi := ids[0], ids[0]
	for _, id := range ids[1:] {
		if id < lo {
			lo = id
		}
		if id > hi {
			hi = id
		}
	}
	return fmt.Sprintf("%d - %d", lo, hi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
