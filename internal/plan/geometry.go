package plan

import (
	"math"
)

// Point2D is an immutable point (or vector) in the survey's planar Cartesian
// coordinate system.
type Point2D struct {
	X, Y float64
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Dot returns the dot product of two vectors.
func (p Point2D) Dot(other Point2D) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Edge is a directed boundary segment from Start to End.
type Edge struct {
	Start, End Point2D
}

// Midpoint returns the edge's midpoint.
func (e Edge) Midpoint() Point2D {
	return Point2D{X: (e.Start.X + e.End.X) / 2, Y: (e.Start.Y + e.End.Y) / 2}
}

// Length returns the edge's length.
func (e Edge) Length() float64 {
	return e.Start.Distance(e.End)
}

// EdgesOf pairs consecutive polygon vertices into edges with wraparound, so
// the edge count equals the vertex count. The ring is open by convention (the
// last vertex is not a duplicate of the first).
//
// Returns ErrInvalidGeometry if the polygon has fewer than 2 vertices.
func EdgesOf(polygon []Point2D) ([]Edge, error) {
	if len(polygon) < 2 {
		return nil, &ErrInvalidGeometry{
			VertexCount: len(polygon),
			Reason:      "at least 2 vertices required to form edges",
		}
	}

	edges := make([]Edge, len(polygon))
	for i := range polygon {
		edges[i] = Edge{
			Start: polygon[i],
			End:   polygon[(i+1)%len(polygon)],
		}
	}
	return edges, nil
}

// Centroid returns the average position of a set of points. Returns the
// origin for an empty set.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point2D{X: sumX / n, Y: sumY / n}
}

// OutwardNormal returns the edge's unit normal, sign-corrected to point away
// from the centroid and scaled by magnitude. Labels offset along this vector
// always land outside a convex polygon.
//
// Returns ErrDegenerateEdge for a zero-length edge; the caller is expected to
// skip that edge.
func OutwardNormal(e Edge, magnitude float64, centroid Point2D) (Point2D, error) {
	d := e.End.Sub(e.Start)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return Point2D{}, &ErrDegenerateEdge{At: e.Start}
	}

	// Unit perpendicular of the edge direction.
	normal := Point2D{X: -d.Y / length, Y: d.X / length}

	// Flip if it points toward the centroid.
	toMid := e.Midpoint().Sub(centroid)
	if toMid.Dot(normal) < 0 {
		normal = normal.Scale(-1)
	}

	return normal.Scale(magnitude), nil
}

// DistancePointToSegment returns the distance from a point to the segment
// [segStart, segEnd]. The projected parameter is clamped to the segment; a
// zero-length segment degrades to point-to-point distance.
func DistancePointToSegment(p, segStart, segEnd Point2D) float64 {
	d := segEnd.Sub(segStart)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Distance(segStart)
	}

	t := p.Sub(segStart).Dot(d) / lenSq
	switch {
	case t < 0:
		return p.Distance(segStart)
	case t > 1:
		return p.Distance(segEnd)
	default:
		return p.Distance(segStart.Add(d.Scale(t)))
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
