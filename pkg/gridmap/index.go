package gridmap

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/seisview/gridmap/internal/plan"
)

// traceIndex resolves pointer positions to grid lines. Each displayed line
// is indexed per segment in an R-tree, so hit-testing is O(log n) in the
// segment count instead of a linear scan over every sample of every line.
type traceIndex struct {
	rtree    *rtreego.Rtree
	segments []*indexedSegment // linear fallback when rtree is nil
}

// indexedSegment wraps one line segment for R-tree storage.
type indexedSegment struct {
	ref  plan.LineRef
	a, b plan.Point2D
}

// Bounds implements rtreego.Spatial.
func (s *indexedSegment) Bounds() rtreego.Rect {
	minX := math.Min(s.a.X, s.b.X)
	minY := math.Min(s.a.Y, s.b.Y)
	lenX := math.Abs(s.a.X - s.b.X)
	lenY := math.Abs(s.a.Y - s.b.Y)

	// R-tree rectangles need non-zero extents; axis-aligned segments get a
	// small epsilon pad.
	const epsilon = 0.0001
	if lenX < epsilon {
		lenX = epsilon
	}
	if lenY < epsilon {
		lenY = epsilon
	}

	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{lenX, lenY})
	return rect
}

// newTraceIndex indexes the displayed line families.
func newTraceIndex(families ...[]plan.LineTrace) *traceIndex {
	idx := &traceIndex{}
	for _, lines := range families {
		for i := range lines {
			line := &lines[i]
			ref := line.Ref()
			for j := 0; j+1 < len(line.Points); j++ {
				idx.segments = append(idx.segments, &indexedSegment{
					ref: ref,
					a:   line.Points[j],
					b:   line.Points[j+1],
				})
			}
		}
	}

	if len(idx.segments) == 0 {
		return idx
	}

	idx.rtree = rtreego.NewTree(2, 25, 50)
	for _, seg := range idx.segments {
		idx.rtree.Insert(seg)
	}
	return idx
}

// Nearest resolves a pointer position to the closest indexed line within
// tolerance. Returns false when nothing is close enough.
func (idx *traceIndex) Nearest(p plan.Point2D, tolerance float64) (plan.LineRef, bool) {
	candidates := idx.candidates(p, tolerance)

	best := plan.LineRef{}
	bestDist := math.Inf(1)
	found := false
	for _, seg := range candidates {
		d := plan.DistancePointToSegment(p, seg.a, seg.b)
		if d <= tolerance && d < bestDist {
			best = seg.ref
			bestDist = d
			found = true
		}
	}
	return best, found
}

// candidates returns segments whose bounding box intersects the tolerance
// square around p.
func (idx *traceIndex) candidates(p plan.Point2D, tolerance float64) []*indexedSegment {
	if idx.rtree == nil {
		return idx.segments
	}

	queryRect, err := rtreego.NewRect(
		rtreego.Point{p.X - tolerance, p.Y - tolerance},
		[]float64{2 * tolerance, 2 * tolerance},
	)
	if err != nil {
		return idx.segments
	}

	spatials := idx.rtree.SearchIntersect(queryRect)
	segments := make([]*indexedSegment, 0, len(spatials))
	for _, spatial := range spatials {
		segments = append(segments, spatial.(*indexedSegment))
	}
	return segments
}
