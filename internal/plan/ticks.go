package plan

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tick density constants. The tick count scales with the visible span so
// label density stays roughly constant in world units across zoom levels.
const (
	minTickCount = 3
	maxTickCount = 8

	// tickWorldSpacing is the span, in world units, budgeted per tick when
	// deriving the count.
	tickWorldSpacing = 100.0

	// tickRounding rounds tick values to the nearest multiple of 10 for
	// readability. Exact dataset values are not guaranteed to land on ticks,
	// and for extreme coordinate magnitudes rounded values may repeat; that
	// matches the source behavior and is not guarded against here.
	tickRounding = 10.0
)

// PlanViewportTicks computes axis-reference labels tracking the visible
// range, so coordinates stay readable after pan and zoom.
//
// Each X tick appears twice, above and below the visible area; Y ticks
// mirror on the left and right. Ticks pushed outside the range by rounding
// are dropped. Four axis captions are emitted regardless of tick count. A
// malformed (inverted or non-finite) viewport yields an empty list.
func PlanViewportTicks(vp Viewport) []Annotation {
	if !vp.Valid() {
		return nil
	}

	count := tickCount(vp)
	xs := floats.Span(make([]float64, count), vp.XMin, vp.XMax)
	ys := floats.Span(make([]float64, count), vp.YMin, vp.YMax)

	annotations := make([]Annotation, 0, 4*count+4)
	for _, v := range xs {
		r := math.Round(v/tickRounding) * tickRounding
		if r < vp.XMin || r > vp.XMax {
			continue
		}
		annotations = append(annotations,
			tickAnnotation(r, vp.YMax, r),
			tickAnnotation(r, vp.YMin, r),
		)
	}
	for _, v := range ys {
		r := math.Round(v/tickRounding) * tickRounding
		if r < vp.YMin || r > vp.YMax {
			continue
		}
		annotations = append(annotations,
			tickAnnotation(vp.XMin, r, r),
			tickAnnotation(vp.XMax, r, r),
		)
	}

	return append(annotations, axisCaptions()...)
}

// tickCount clamps floor(maxSpan/100) into [3, 8].
func tickCount(vp Viewport) int {
	span := math.Max(vp.XSpan(), vp.YSpan())
	count := int(span / tickWorldSpacing)
	if count < minTickCount {
		return minTickCount
	}
	if count > maxTickCount {
		return maxTickCount
	}
	return count
}

func tickAnnotation(x, y, value float64) Annotation {
	return Annotation{
		X:    x,
		Y:    y,
		Text: fmt.Sprintf("%.0f", value),
		Style: Style{
			Color: ColorTick,
			Size:  9,
		},
		Anchor: AnchorCenter(),
	}
}

// axisCaptions returns the four fixed captions, one per viewport side, in
// normalized paper coordinates so they stay put while the data pans.
func axisCaptions() []Annotation {
	caption := func(x, y float64, text string, angle float64) Annotation {
		return Annotation{
			X:     x,
			Y:     y,
			Paper: true,
			Text:  text,
			Style: Style{
				Color: ColorTick,
				Size:  11,
				Angle: angle,
			},
			Anchor: AnchorCenter(),
		}
	}
	return []Annotation{
		caption(0.5, 1.06, "X Coordinate", 0),
		caption(0.5, -0.06, "X Coordinate", 0),
		caption(-0.06, 0.5, "Y Coordinate", -90),
		caption(1.06, 0.5, "Y Coordinate", 90),
	}
}
