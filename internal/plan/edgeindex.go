package plan

import (
	"sort"
)

// DefaultEdgeTolerance is the distance, in world units, within which a trace
// sample counts as lying on a boundary edge when building the edge index.
const DefaultEdgeTolerance = 50.0

// BuildEdgeIndex determines which inlines and crosslines intersect each of
// the four survey boundary edges. The result drives edge label placement.
//
// The four edges are defined by the first four boundary vertices in ring
// order. A line is associated with an edge when any of its sample points
// lies within tolerance of the edge segment; scanning of a line's points
// stops at its first hit per edge, and a line may appear on several edges.
// Per-edge identifier lists are deduplicated and sorted ascending.
//
// Boundaries with fewer than four vertices produce an empty index.
func BuildEdgeIndex(boundary []Point2D, inlines, xlines []LineTrace, tolerance float64) EdgeIndex {
	if len(boundary) < BoundaryCornerCount {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultEdgeTolerance
	}

	corners := boundary[:BoundaryCornerCount]
	edges := make([]Edge, BoundaryCornerCount)
	for i := range corners {
		edges[i] = Edge{
			Start: corners[i],
			End:   corners[(i+1)%BoundaryCornerCount],
		}
	}

	index := make(EdgeIndex, len(edges))
	for i, edge := range edges {
		index[i] = EdgeIndexEntry{
			Inlines: lineIDsOnEdge(inlines, edge, tolerance),
			Xlines:  lineIDsOnEdge(xlines, edge, tolerance),
		}
	}
	return index
}

func lineIDsOnEdge(lines []LineTrace, edge Edge, tolerance float64) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, line := range lines {
		if seen[line.ID] {
			continue
		}
		for _, p := range line.Points {
			if DistancePointToSegment(p, edge.Start, edge.End) < tolerance {
				seen[line.ID] = true
				ids = append(ids, line.ID)
				break
			}
		}
	}
	sort.Ints(ids)
	return ids
}
