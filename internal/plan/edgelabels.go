package plan

// BoundaryCornerCount is the number of leading boundary vertices treated as
// survey corners. Seismic survey boundaries are quadrilaterals in practice;
// labels are never placed at these vertices and the boundary-edge index is
// keyed to the four edges they define. Polygons with more vertices are
// accepted, but only the first four are corner-excluded.
const BoundaryCornerCount = 4

// DefaultLabelOffset is the outward offset, in world units, between a label
// and the boundary edge it annotates.
const DefaultLabelOffset = 60.0

// DefaultCornerTolerance is the corner-exclusion radius in world units. A
// line whose boundary intersection falls within this distance of a survey
// corner gets no label on that edge, keeping corner markers readable.
const DefaultCornerTolerance = 1.0

// EdgeLabelConfig tunes boundary-edge label placement.
type EdgeLabelConfig struct {
	LabelOffset     float64
	CornerTolerance float64
	InlineColor     string
	XlineColor      string
	FontSize        float64
	Background      string
}

// DefaultEdgeLabelConfig returns the placement defaults used by the engine.
func DefaultEdgeLabelConfig() EdgeLabelConfig {
	return EdgeLabelConfig{
		LabelOffset:     DefaultLabelOffset,
		CornerTolerance: DefaultCornerTolerance,
		InlineColor:     ColorInline,
		XlineColor:      ColorXline,
		FontSize:        10,
		Background:      ColorLabelBackground,
	}
}

// PlanEdgeLabels computes one identifier label per displayed line per
// boundary edge it terminates on, per the edge index.
//
// For each edge, the index's identifier sets are intersected with the
// density-filtered display set. Each qualifying line's endpoint closer to the
// edge is its intersection point; points within the corner-exclusion
// tolerance of any survey corner are skipped, the rest are offset outward
// along the edge normal. Degenerate edges are skipped without aborting the
// rest of the computation.
//
// Labels come out in edge order, then in display-set order. No deduplication
// is performed: labels are per-edge, not per-line.
func PlanEdgeLabels(boundary []Point2D, index EdgeIndex, inlines, xlines []LineTrace, cfg EdgeLabelConfig) []Annotation {
	edges, err := EdgesOf(boundary)
	if err != nil {
		return nil
	}
	centroid := Centroid(boundary)
	corners := surveyCorners(boundary)

	inlineByID := tracesByID(inlines)
	xlineByID := tracesByID(xlines)

	var labels []Annotation
	for i, edge := range edges {
		if i >= len(index) {
			break
		}

		normal, err := OutwardNormal(edge, cfg.LabelOffset, centroid)
		if err != nil {
			continue // zero-length edge carries no labels
		}

		for _, id := range index[i].Inlines {
			if trace, ok := inlineByID[id]; ok {
				if a, ok := edgeLabel(trace, edge, normal, corners, cfg); ok {
					labels = append(labels, a)
				}
			}
		}
		for _, id := range index[i].Xlines {
			if trace, ok := xlineByID[id]; ok {
				if a, ok := edgeLabel(trace, edge, normal, corners, cfg); ok {
					labels = append(labels, a)
				}
			}
		}
	}
	return labels
}

// edgeLabel places a single line's label along one boundary edge.
func edgeLabel(trace *LineTrace, edge Edge, normal Point2D, corners []Point2D, cfg EdgeLabelConfig) (Annotation, bool) {
	if len(trace.Points) == 0 {
		return Annotation{}, false
	}

	// The endpoint closer to the edge is where the line meets the boundary.
	first := trace.Points[0]
	last := trace.Points[len(trace.Points)-1]
	intersection := first
	if DistancePointToSegment(last, edge.Start, edge.End) < DistancePointToSegment(first, edge.Start, edge.End) {
		intersection = last
	}

	for _, corner := range corners {
		if intersection.Distance(corner) <= cfg.CornerTolerance {
			return Annotation{}, false
		}
	}

	pos := intersection.Add(normal)
	return Annotation{
		X:      pos.X,
		Y:      pos.Y,
		Text:   trace.Ref().String(),
		Style:  labelStyle(trace.Kind, cfg),
		Anchor: AnchorCenter(),
	}, true
}

// PlanCornerLabels is the secondary, vertex-keyed labeling mode: the
// identifier arrays align positionally with boundary vertices, and each
// vertex gets its inline and crossline identifiers placed outward along the
// centroid-to-vertex direction. Identifier arrays shorter than the boundary
// simply label fewer vertices.
func PlanCornerLabels(boundary []Point2D, ilineCoords, xlineCoords []int, cfg EdgeLabelConfig) []Annotation {
	if len(boundary) < 3 {
		return nil
	}
	centroid := Centroid(boundary)

	var labels []Annotation
	for i, vertex := range boundary {
		dir := vertex.Sub(centroid)
		length := dir.Distance(Point2D{})
		if length == 0 {
			continue
		}
		dir = dir.Scale(1 / length)

		if i < len(ilineCoords) {
			pos := vertex.Add(dir.Scale(cfg.LabelOffset))
			labels = append(labels, Annotation{
				X:      pos.X,
				Y:      pos.Y,
				Text:   LineRef{Kind: KindInline, ID: ilineCoords[i]}.String(),
				Style:  labelStyle(KindInline, cfg),
				Anchor: AnchorCenter(),
			})
		}
		if i < len(xlineCoords) {
			// Stacked further out so the pair never overlaps.
			pos := vertex.Add(dir.Scale(cfg.LabelOffset * 1.6))
			labels = append(labels, Annotation{
				X:      pos.X,
				Y:      pos.Y,
				Text:   LineRef{Kind: KindXline, ID: xlineCoords[i]}.String(),
				Style:  labelStyle(KindXline, cfg),
				Anchor: AnchorCenter(),
			})
		}
	}
	return labels
}

func labelStyle(kind LineKind, cfg EdgeLabelConfig) Style {
	color := cfg.InlineColor
	if kind == KindXline {
		color = cfg.XlineColor
	}
	return Style{
		Color:      color,
		Size:       cfg.FontSize,
		Background: cfg.Background,
		Border:     color,
	}
}

func surveyCorners(boundary []Point2D) []Point2D {
	if len(boundary) < BoundaryCornerCount {
		return boundary
	}
	return boundary[:BoundaryCornerCount]
}

func tracesByID(lines []LineTrace) map[int]*LineTrace {
	byID := make(map[int]*LineTrace, len(lines))
	for i := range lines {
		byID[lines[i].ID] = &lines[i]
	}
	return byID
}
